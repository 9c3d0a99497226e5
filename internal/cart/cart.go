package cart

import "aura/internal/domain"

// State состояние корзины: список позиций и итоговая сумма.
// Инвариант: Total всегда равен сумме Price*Quantity по позициям
type State struct {
	Items []domain.CartItem `json:"items"`
	Total int64             `json:"total"`
}

// ActionType вид команды над корзиной
type ActionType int

const (
	ActionAdd ActionType = iota
	ActionRemove
	ActionUpdateQuantity
	ActionUpdateItem
	ActionClear
)

// Action команда над корзиной. Используемые поля зависят от типа:
// добавление несёт товар и выбранный вариант, остальные команды
// адресуют позицию по ProductID
type Action struct {
	Type      ActionType
	Product   domain.Product
	ProductID string
	Size      string
	Color     string
	Quantity  int64
}

// Apply чистая функция перехода: не изменяет входное состояние.
// Слияние при добавлении идёт по тройке (id, размер, цвет); удаление и
// оба обновления адресуются по id товара — если один товар лежит в
// корзине двумя вариантами, эти команды задевают все его строки, а
// сумма корректируется по первой совпавшей
func Apply(s State, a Action) State {
	switch a.Type {
	case ActionAdd:
		return applyAdd(s, a)
	case ActionRemove:
		return applyRemove(s, a)
	case ActionUpdateQuantity:
		return applyUpdateQuantity(s, a)
	case ActionUpdateItem:
		return applyUpdateItem(s, a)
	case ActionClear:
		return State{Items: []domain.CartItem{}, Total: 0}
	default:
		return s
	}
}

func applyAdd(s State, a Action) State {
	for i, it := range s.Items {
		if it.ID == a.Product.ID && it.SelectedSize == a.Size && it.SelectedColor == a.Color {
			items := copyItems(s.Items)
			items[i].Quantity++
			return State{Items: items, Total: s.Total + a.Product.Price}
		}
	}
	items := copyItems(s.Items)
	items = append(items, domain.CartItem{
		Product:       a.Product,
		SelectedSize:  a.Size,
		SelectedColor: a.Color,
		Quantity:      1,
	})
	return State{Items: items, Total: s.Total + a.Product.Price}
}

func applyRemove(s State, a Action) State {
	var removed *domain.CartItem
	items := make([]domain.CartItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ID == a.ProductID {
			if removed == nil {
				cp := it
				removed = &cp
			}
			continue
		}
		items = append(items, it)
	}
	total := s.Total
	if removed != nil {
		total -= removed.Subtotal()
	}
	return State{Items: items, Total: total}
}

func applyUpdateQuantity(s State, a Action) State {
	if a.Quantity < 1 {
		return s
	}
	prev, ok := findByID(s.Items, a.ProductID)
	if !ok {
		return s
	}
	diff := a.Quantity - prev.Quantity
	items := copyItems(s.Items)
	for i := range items {
		if items[i].ID == a.ProductID {
			items[i].Quantity = a.Quantity
		}
	}
	return State{Items: items, Total: s.Total + prev.Price*diff}
}

func applyUpdateItem(s State, a Action) State {
	prev, ok := findByID(s.Items, a.ProductID)
	if !ok {
		return s
	}
	// no re-merge: a line rewritten into an already occupied variant
	// stays a separate line
	items := copyItems(s.Items)
	for i := range items {
		if items[i].ID == a.ProductID {
			items[i].SelectedSize = a.Size
			items[i].SelectedColor = a.Color
			items[i].Quantity = a.Quantity
		}
	}
	return State{Items: items, Total: s.Total + prev.Price*(a.Quantity-prev.Quantity)}
}

func findByID(items []domain.CartItem, id string) (domain.CartItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.CartItem{}, false
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	cp := make([]domain.CartItem, len(items))
	copy(cp, items)
	return cp
}
