package entities

// MenuFilter - структурное описание ограничений выборки позиций меню,
// не привязанное к синтаксису конкретного хранилища. Нулевые значения
// не накладывают ограничений. Границы цены могут содержать NaN -
// сентинел "не совпадает ни с чем" для нечисловых параметров запроса.
type MenuFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// MenuItemChange - нормализованный набор полей для создания или обновления
// позиции меню. Пустой указатель означает "поле не затрагивается":
// при частичном обновлении такие поля сохраняют прежние значения.
type MenuItemChange struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
}
