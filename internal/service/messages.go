package service

import (
	"fmt"
	"strings"

	"food-agent/internal/sessions"
)

// Fulfillment texts relayed back to the user. Kept close to the agent's
// original wording so existing conversation flows read the same.

const (
	FallbackMessage = "oops! I didn't understand it. Please say New Order or Track Order."

	QuantityMismatchMessage = "oops! Please provide correct quantities with each food item. e.g. (1 mango lassi and 2 chole bhature)"

	NoActiveOrderMessage = "oops! Seems like your order does not exist. Please say New Order to start placing a new order."

	EmptyCartMessage = "oops! Your cart looks empty. Please add items by saying New Order."

	CartNotFoundMessage = "I am having trouble finding your order. Sorry for this inconvenience. Please add your order again by saying New Order"

	InvalidOrderIDMessage = "Sorry this Order Id is invalid. Please provide correct Order Id (e.g. 234567)"

	UnavailableMessage = "Sorry, our ordering service is temporarily unavailable. Please try again in a moment."
)

func UnknownItemMessage(name string) string {
	return fmt.Sprintf("%s is not available in our menu. Please add a valid item.", name)
}

func AddedMessage(cart []sessions.Line) string {
	return fmt.Sprintf("Added items. Anything else? If you are done you can say done and I will place your order. So far you have added - %s.", itemList(cart))
}

func RemovedMessage(removed, missing []string) string {
	var parts []string
	if len(removed) > 0 {
		parts = append(parts, fmt.Sprintf("I have removed %s.", strings.Join(removed, ", ")))
	}
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("I could not find %s.", strings.Join(missing, ", ")))
	}
	parts = append(parts, "Do you want to add anything else? If you are done you can say done and I will place your order.")
	return strings.Join(parts, " ")
}

func ShowCartMessage(cart []sessions.Line) string {
	return fmt.Sprintf("You have added these items in your cart: %s", itemList(cart))
}

func OrderPlacedMessage(order CompletedOrder) string {
	return fmt.Sprintf("Your order has been placed successfully. Thank you! Here is your Order ID # %s. Your total bill amount is ₹%.2f and you have ordered: %s.",
		order.OrderNumber, order.Total, itemList(order.Items))
}

func TrackStatusMessage(status string) string {
	return fmt.Sprintf("Your order is %s. Please keep patience, our chefs are preparing delicious food for you. Thanks for availing our services.", status)
}

func itemList(cart []sessions.Line) string {
	parts := make([]string, 0, len(cart))
	for _, line := range cart {
		parts = append(parts, fmt.Sprintf("%s (x%d)", line.Name, line.Quantity))
	}
	return strings.Join(parts, ", ")
}
