package domain

// KitchenOrderMessage is published to the kitchen exchange once a checkout
// is durably committed.

type KitchenItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type KitchenOrderMessage struct {
	OrderNumber string        `json:"order_number"`
	Items       []KitchenItem `json:"items"`
	TotalAmount float64       `json:"total_amount"`
	Priority    int           `json:"priority"`
}
