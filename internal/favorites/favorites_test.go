package favorites

import (
	"reflect"
	"testing"
)

func TestAddRemoveHas(t *testing.T) {
	r := NewRegistry()
	r.Add("s1", "p1")
	r.Add("s1", "p2")
	r.Add("s1", "p1") // idempotent

	if !r.Has("s1", "p1") || !r.Has("s1", "p2") {
		t.Fatalf("expected both products marked")
	}
	if got := r.List("s1"); !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Fatalf("unexpected list: %v", got)
	}

	r.Remove("s1", "p1")
	if r.Has("s1", "p1") {
		t.Fatalf("expected p1 removed")
	}
}

func TestSessionsIsolated(t *testing.T) {
	r := NewRegistry()
	r.Add("s1", "p1")

	if r.Has("s2", "p1") {
		t.Fatalf("favorite leaked across sessions")
	}
	if got := r.List("s2"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Remove("s1", "p1") // no session yet
	if got := r.List("s1"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}
