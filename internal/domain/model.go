package domain

import "time"

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// Order is one line of a finalized checkout. All lines of one checkout
// share OrderNumber.
type Order struct {
	ID          int
	OrderNumber string
	MenuItemID  int
	Status      string
	Quantity    int
	TotalPrice  float64
	CreatedAt   time.Time
}

// StatusPreparing is the status every order row starts with.
const StatusPreparing = "Preparing in Kitchen"
