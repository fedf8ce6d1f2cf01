package domain

// Intent is the closed set of conversation intents the webhook handles.
// Display names are matched exactly; anything else is IntentUnknown.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentAddItems
	IntentRemoveItems
	IntentShowCart
	IntentTrackOrder
	IntentCompleteOrder
)

// Display-name labels as configured in the upstream agent.
const (
	labelAdd      = "order.add_context: ongoing_order"
	labelRemove   = "order.remove_context: ongoing_order"
	labelComplete = "order_complete_context: ongoing_order"
	labelTrack    = "track.order_context: ongoing-tracking"
	labelShow     = "cart.show_context: ongoing-tracking"
)

func ParseIntent(displayName string) Intent {
	switch displayName {
	case labelAdd:
		return IntentAddItems
	case labelRemove:
		return IntentRemoveItems
	case labelComplete:
		return IntentCompleteOrder
	case labelTrack:
		return IntentTrackOrder
	case labelShow:
		return IntentShowCart
	default:
		return IntentUnknown
	}
}

func (i Intent) String() string {
	switch i {
	case IntentAddItems:
		return "add_items"
	case IntentRemoveItems:
		return "remove_items"
	case IntentShowCart:
		return "show_cart"
	case IntentTrackOrder:
		return "track_order"
	case IntentCompleteOrder:
		return "complete_order"
	default:
		return "unknown"
	}
}
