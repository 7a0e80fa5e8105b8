package entities

import (
	"errors"
	"time"
)

// ErrMenuItemNotFound возвращается, когда позиция меню не существует.
var ErrMenuItemNotFound = errors.New("menu item not found")

// Categories - фиксированный перечень категорий меню. Категория позиции
// всегда либо пустая строка, либо элемент этого перечня.
var Categories = []string{"Appetizers", "Main Course", "Desserts", "Beverages", "Sides"}

// IsValidCategory сообщает, входит ли категория в фиксированный перечень.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MenuItem представляет позицию меню ресторана.
type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
