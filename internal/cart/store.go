package cart

import (
	"sync"

	"aura/internal/domain"
)

// Store держит корзины активных сессий. Создаётся один раз в main и
// передаётся хендлерам явно
type Store struct {
	mu    sync.RWMutex
	carts map[string]State
}

func NewStore() *Store {
	return &Store{carts: make(map[string]State)}
}

// Get возвращает текущее состояние корзины сессии (пустое, если её нет)
func (st *Store) Get(sessionID string) State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.carts[sessionID]
	if !ok {
		return State{Items: []domain.CartItem{}, Total: 0}
	}
	return s
}

// Dispatch применяет команду к корзине сессии и возвращает новое состояние
func (st *Store) Dispatch(sessionID string, a Action) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	next := Apply(st.carts[sessionID], a)
	st.carts[sessionID] = next
	return next
}

// Clear сбрасывает корзину сессии
func (st *Store) Clear(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.carts, sessionID)
}
