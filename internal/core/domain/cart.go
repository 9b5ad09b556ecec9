package domain

// CartItem is a menu item a customer has put in their cart but not paid for.
type CartItem struct {
	ID     string  `json:"_id"`
	MenuID string  `json:"menuId"`
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
}
