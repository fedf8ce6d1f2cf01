package domain

// Dialogflow fulfillment envelope. Only the fields the webhook actually
// reads are modelled; the rest of the payload is ignored on decode.

type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
}

type QueryResult struct {
	Intent         IntentInfo      `json:"intent"`
	Parameters     Parameters      `json:"parameters"`
	OutputContexts []OutputContext `json:"outputContexts"`
}

type IntentInfo struct {
	DisplayName string `json:"displayName"`
}

// Parameters carries the slots extracted upstream. food_item and number are
// parallel lists; order_id arrives as either a string or a number depending
// on how the agent captured it, hence the any.
type Parameters struct {
	FoodItems  []string  `json:"food_item"`
	Quantities []float64 `json:"number"`
	OrderID    any       `json:"order_id"`
}

type OutputContext struct {
	Name string `json:"name"`
}

type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

type MenuResponse struct {
	FoodItems []MenuItem `json:"food_items"`
}
