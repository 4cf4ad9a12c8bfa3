package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	cart "snack-store/internal/features/cart/domain"
	catalog "snack-store/internal/features/catalog/domain"

	"github.com/google/uuid"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderNotFound is returned when an order id or number does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidPaymentMethod is returned for a payment method outside the enumeration.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrInvalidStatus is returned for a status value outside the enumeration.
	ErrInvalidStatus = errors.New("invalid order status")
)

// Status represents the current state of an order.
// Any status may follow any other; only membership in the enumeration is
// enforced.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether the status is a member of the enumeration.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod enumerates the accepted payment methods.
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentDebitCard      PaymentMethod = "debit_card"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
)

// IsValid reports whether the payment method is a member of the enumeration.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCreditCard, PaymentDebitCard, PaymentCashOnDelivery, PaymentBankTransfer:
		return true
	}
	return false
}

// ShippingAddress is the validated destination captured at checkout.
// The checkout form validates it before it reaches the order factory.
type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes,omitempty"`
}

// Item is an order line frozen at creation time. Price is the effective
// price captured at that exact moment and is never recalculated, no matter
// what the catalog does later.
type Item struct {
	ID       string          `json:"id"`
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
	Subtotal float64         `json:"subtotal"`
}

// Order is the immutable record produced at checkout. After creation only
// Status and UpdatedAt ever change.
type Order struct {
	// ID is the internal order identifier.
	ID string `json:"id"`
	// OrderNumber is the human-readable identifier shown to the customer.
	OrderNumber string `json:"orderNumber"`
	// UserID is the owning user.
	UserID string `json:"userId"`
	// Items are the frozen order lines.
	Items []Item `json:"items"`
	// ShippingAddress is the destination snapshot.
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	// PaymentMethod is how the customer chose to pay.
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	// Subtotal is the sum of line subtotals.
	Subtotal float64 `json:"subtotal"`
	// Shipping is the shipping cost charged.
	Shipping float64 `json:"shipping"`
	// Total is always Subtotal + Shipping.
	Total float64 `json:"total"`
	// Status is the only mutable attribute.
	Status Status `json:"status"`
	// CreatedAt is when the order was placed.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt changes with every status transition.
	UpdatedAt time.Time `json:"updatedAt"`
}

const orderNumberSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds a human-readable order number in the form
// ORD-YYYY-MMDD-HHMMSS-XXX, where XXX is a random suffix that keeps numbers
// distinct under same-second creation.
func GenerateOrderNumber(now time.Time) string {
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = orderNumberSuffixAlphabet[rand.Intn(len(orderNumberSuffixAlphabet))]
	}

	return fmt.Sprintf("ORD-%04d-%02d%02d-%02d%02d%02d-%s",
		now.Year(), int(now.Month()), now.Day(),
		now.Hour(), now.Minute(), now.Second(),
		suffix)
}

// NewOrder snapshots cart line items into an immutable order.
// Each line's price is the product's effective price at this moment.
// Subtotal, shipping and total come from the caller, which derived them from
// the same cart moments earlier.
func NewOrder(cartItems []cart.Item, address ShippingAddress, paymentMethod PaymentMethod, subtotal, shipping, total float64, userID string) (*Order, error) {
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	now := time.Now()

	items := make([]Item, 0, len(cartItems))
	for i := range cartItems {
		price := cartItems[i].Product.EffectivePrice()
		items = append(items, Item{
			ID:       uuid.NewString(),
			Product:  cartItems[i].Product,
			Quantity: cartItems[i].Quantity,
			Price:    price,
			Subtotal: price * float64(cartItems[i].Quantity),
		})
	}

	return &Order{
		ID:              uuid.NewString(),
		OrderNumber:     GenerateOrderNumber(now),
		UserID:          userID,
		Items:           items,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           total,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
