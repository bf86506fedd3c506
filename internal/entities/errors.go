package entities

import "errors"

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrSellerNotFound   = errors.New("seller not found")
	ErrSaleItemNotFound = errors.New("sale item not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrSelfPurchase - покупатель пытается купить собственный товар.
	ErrSelfPurchase = errors.New("cannot purchase own sale item")
	// ErrNotParticipant - пользователь не покупатель и не продавец заказа.
	ErrNotParticipant = errors.New("user is not a participant of the order")

	ErrEmptyOrder  = errors.New("order items are empty")
	ErrInvalidPage = errors.New("page must be non-negative")
	ErrInvalidSort = errors.New("unknown sort field")
	ErrOutOfStock  = errors.New("insufficient stock")

	ErrInvalidOrderDetail = errors.New("invalid order detail payload")
)
