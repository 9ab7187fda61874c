package models

// Typed request bodies for the create endpoints. Decoding and validation
// happen at the handler boundary before any store access.

type OrderItemRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	Quantity     int64   `json:"quantity" validate:"required,min=1"`
	PriceAtOrder float64 `json:"priceAtOrder" validate:"min=0"`
}

type CreateOrderRequest struct {
	UserID string             `json:"userId" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Status string             `json:"status" validate:"omitempty,eq=pending|eq=paid|eq=shipped|eq=cancelled"`
	// Accepted but never trusted; the server recomputes the total from items.
	TotalAmount float64 `json:"totalAmount"`
}

type CreateInvoiceRequest struct {
	OrderID       string `json:"orderId" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,eq=card|eq=cash|eq=paypal|eq=bank_transfer|eq=none"`
	MarkAsPaid    bool   `json:"markAsPaid"`
}

type CreateReviewRequest struct {
	UserID    string   `json:"userId" validate:"required"`
	ProductID string   `json:"productId" validate:"required"`
	Rating    *float64 `json:"rating" validate:"required,min=1,max=5"`
	Comment   string   `json:"comment"`
}

// ImportFailure reports a single record that could not be inserted during
// a bulk user import.
type ImportFailure struct {
	Index int    `json:"index"`
	Email string `json:"email,omitempty"`
	Error string `json:"error"`
}
