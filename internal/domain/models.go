package domain

import "time"

// Category категория товара в каталоге
type Category string

const (
	CategoryMen      Category = "men"
	CategoryWomen    Category = "women"
	CategoryChildren Category = "children"
)

// ValidCategory проверяет, что категория из допустимого набора
func ValidCategory(c Category) bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryChildren:
		return true
	}
	return false
}

// Product представляет товар магазина одежды
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Price       int64     `json:"price" bson:"price"`
	Description string    `json:"description" bson:"description"`
	Category    Category  `json:"category" bson:"category"`
	Sizes       []string  `json:"sizes" bson:"sizes"`
	Colors      []string  `json:"colors" bson:"colors"`
	Images      []string  `json:"images" bson:"images"`
	Featured    bool      `json:"featured,omitempty" bson:"featured,omitempty"`
	Popularity  int64     `json:"popularity,omitempty" bson:"popularity,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
}

// CartItem позиция корзины: снимок товара с выбранным вариантом
type CartItem struct {
	Product
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
	Quantity      int64  `json:"quantity"`
}

// Subtotal цена позиции с учётом количества
func (it CartItem) Subtotal() int64 {
	return it.Price * it.Quantity
}

// CustomerInfo контактные данные покупателя, встраиваются в заказ
type CustomerInfo struct {
	FullName string `json:"full_name" bson:"fullName"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone" bson:"phone"`
	District string `json:"district" bson:"district"`
	Comment  string `json:"comment,omitempty" bson:"comment,omitempty"`
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
)

// ValidStatus проверяет принадлежность статуса набору; переходы между
// статусами не ограничены
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted:
		return true
	}
	return false
}

// Order сущность заказа. Items хранится готовым текстовым блоком,
// не структурированным списком
type Order struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	CustomerInfo CustomerInfo `json:"customer_info" bson:"customerInfo"`
	Items        string       `json:"items" bson:"items"`
	Total        int64        `json:"total" bson:"total"`
	Status       OrderStatus  `json:"status" bson:"status"`
	CreatedAt    time.Time    `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updatedAt"`
}
