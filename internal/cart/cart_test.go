package cart

import (
	"reflect"
	"testing"

	"aura/internal/domain"
)

func product(id string, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Chemise " + id,
		Price:    price,
		Category: domain.CategoryMen,
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"red", "blue"},
	}
}

func add(p domain.Product, size, color string) Action {
	return Action{Type: ActionAdd, Product: p, Size: size, Color: color}
}

func sumTotal(s State) int64 {
	var sum int64
	for _, it := range s.Items {
		sum += it.Subtotal()
	}
	return sum
}

func TestAdd_MergesSameVariant(t *testing.T) {
	p := product("a", 1000)
	s := State{}
	s = Apply(s, add(p, "M", "red"))
	s = Apply(s, add(p, "M", "red"))

	if len(s.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(s.Items))
	}
	if s.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", s.Items[0].Quantity)
	}
	if s.Total != 2000 {
		t.Fatalf("expected total 2000, got %d", s.Total)
	}
}

func TestAdd_DifferentVariantsStaySeparate(t *testing.T) {
	p := product("a", 1000)
	s := State{}
	s = Apply(s, add(p, "M", "red"))
	s = Apply(s, add(p, "L", "red"))
	s = Apply(s, add(p, "M", "blue"))

	if len(s.Items) != 3 {
		t.Fatalf("expected three lines, got %d", len(s.Items))
	}
	if s.Total != 3000 {
		t.Fatalf("expected total 3000, got %d", s.Total)
	}
	if s.Total != sumTotal(s) {
		t.Fatalf("total %d diverged from line sum %d", s.Total, sumTotal(s))
	}
}

func TestAdd_TotalMatchesLineSum(t *testing.T) {
	// repeated adds over a mix of triples keep the invariant
	a, b := product("a", 700), product("b", 1300)
	s := State{}
	for i := 0; i < 4; i++ {
		s = Apply(s, add(a, "M", "red"))
	}
	s = Apply(s, add(a, "S", "red"))
	s = Apply(s, add(b, "L", "blue"))
	s = Apply(s, add(b, "L", "blue"))

	if s.Total != sumTotal(s) {
		t.Fatalf("total %d diverged from line sum %d", s.Total, sumTotal(s))
	}
	if s.Items[0].Quantity != 4 {
		t.Fatalf("expected 4 merged adds, got %d", s.Items[0].Quantity)
	}
}

func TestRemove_OnlyItemEmptiesCart(t *testing.T) {
	p := product("a", 1000)
	s := Apply(State{}, add(p, "M", "red"))
	s = Apply(s, Action{Type: ActionRemove, ProductID: "a"})

	if len(s.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(s.Items))
	}
	if s.Total != 0 {
		t.Fatalf("expected total 0, got %d", s.Total)
	}
}

func TestRemove_ByIDDropsAllVariants(t *testing.T) {
	// removal matches by product id only: both lines of the product go,
	// the total is adjusted by the first line's subtotal
	p := product("a", 1000)
	s := State{}
	s = Apply(s, add(p, "M", "red"))
	s = Apply(s, add(p, "M", "red"))
	s = Apply(s, add(p, "L", "blue"))
	s = Apply(s, Action{Type: ActionRemove, ProductID: "a"})

	if len(s.Items) != 0 {
		t.Fatalf("expected all variant lines removed, got %d", len(s.Items))
	}
	if s.Total != 1000 {
		t.Fatalf("expected remaining total 1000 (first line only subtracted), got %d", s.Total)
	}
}

func TestUpdateQuantity(t *testing.T) {
	p := product("a", 500)
	s := Apply(State{}, add(p, "M", "red"))
	s = Apply(s, Action{Type: ActionUpdateQuantity, ProductID: "a", Quantity: 4})

	if s.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", s.Items[0].Quantity)
	}
	if s.Total != 2000 {
		t.Fatalf("expected total 2000, got %d", s.Total)
	}

	s = Apply(s, Action{Type: ActionUpdateQuantity, ProductID: "a", Quantity: 1})
	if s.Total != 500 {
		t.Fatalf("expected total 500 after decrease, got %d", s.Total)
	}
}

func TestUpdateQuantity_BelowOneIsNoop(t *testing.T) {
	p := product("a", 500)
	before := Apply(State{}, add(p, "M", "red"))
	after := Apply(before, Action{Type: ActionUpdateQuantity, ProductID: "a", Quantity: 0})

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected unchanged state, got %+v", after)
	}
}

func TestUpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	p := product("a", 500)
	before := Apply(State{}, add(p, "M", "red"))
	after := Apply(before, Action{Type: ActionUpdateQuantity, ProductID: "zzz", Quantity: 3})

	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected unchanged state, got %+v", after)
	}
}

func TestUpdateItem_ReplacesVariant(t *testing.T) {
	p := product("a", 1000)
	s := Apply(State{}, add(p, "M", "red"))
	s = Apply(s, Action{Type: ActionUpdateItem, ProductID: "a", Size: "L", Color: "blue", Quantity: 3})

	it := s.Items[0]
	if it.SelectedSize != "L" || it.SelectedColor != "blue" || it.Quantity != 3 {
		t.Fatalf("variant not replaced: %+v", it)
	}
	if s.Total != 3000 {
		t.Fatalf("expected total 3000, got %d", s.Total)
	}
}

func TestUpdateItem_DoesNotRemerge(t *testing.T) {
	// rewriting a line into an already occupied variant keeps two lines
	p := product("a", 1000)
	s := State{}
	s = Apply(s, add(p, "M", "red"))
	s = Apply(s, add(p, "L", "blue"))
	s = Apply(s, Action{Type: ActionUpdateItem, ProductID: "a", Size: "M", Color: "red", Quantity: 1})

	if len(s.Items) != 2 {
		t.Fatalf("expected duplicate lines preserved, got %d", len(s.Items))
	}
}

func TestClear(t *testing.T) {
	p := product("a", 1000)
	s := State{}
	s = Apply(s, add(p, "M", "red"))
	s = Apply(s, add(p, "L", "blue"))
	s = Apply(s, Action{Type: ActionClear})

	if len(s.Items) != 0 || s.Total != 0 {
		t.Fatalf("expected empty state, got %+v", s)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	p := product("a", 1000)
	before := Apply(State{}, add(p, "M", "red"))
	snapshot := State{Items: append([]domain.CartItem(nil), before.Items...), Total: before.Total}

	_ = Apply(before, add(p, "M", "red"))
	_ = Apply(before, Action{Type: ActionUpdateQuantity, ProductID: "a", Quantity: 5})

	if !reflect.DeepEqual(before, snapshot) {
		t.Fatalf("input state mutated: %+v", before)
	}
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	st := NewStore()
	p := product("a", 1000)
	st.Dispatch("s1", add(p, "M", "red"))

	if got := st.Get("s1").Total; got != 1000 {
		t.Fatalf("expected 1000 in s1, got %d", got)
	}
	if got := st.Get("s2").Total; got != 0 {
		t.Fatalf("expected empty cart in s2, got %d", got)
	}

	st.Clear("s1")
	if got := st.Get("s1").Total; got != 0 {
		t.Fatalf("expected cleared cart, got %d", got)
	}
}
