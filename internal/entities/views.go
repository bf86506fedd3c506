package entities

import (
	"bytes"
	"encoding/gob"
	"time"
)

// SellerSummary - краткая карточка продавца для списков заказов.
type SellerSummary struct {
	ID   int
	Name string
}

// SellerContact - контактные данные продавца для детального просмотра заказа.
type SellerContact struct {
	ID       int
	Name     string
	FullName string
	Email    string
	Mobile   string
}

type OrderLineView struct {
	SaleItemID  int
	Quantity    int
	PriceEach   int
	Description string
}

// OrderResult - результат оформления для одного продавца внутри чекаута.
type OrderResult struct {
	OrderID         int
	BuyerID         int
	Seller          SellerSummary
	Status          OrderStatus
	ShippingAddress string
	Note            string
	CreatedOn       time.Time
	Lines           []OrderLineView
}

type OrderDetail struct {
	OrderID         int
	BuyerID         int
	Status          OrderStatus
	ShippingAddress string
	Note            string
	CreatedOn       time.Time
	PaymentDate     *time.Time
	Sellers         []SellerContact
	Lines           []OrderLineView

	// Для проверки доступа после чтения из кэша.
	LineSellerIDs []int
}

type OrderSummary struct {
	OrderID         int
	BuyerID         int
	Status          OrderStatus
	ShippingAddress string
	Note            string
	CreatedOn       time.Time
	PaymentDate     *time.Time
	Sellers         []SellerSummary
	Lines           []OrderLineView
}

type OrderPage struct {
	Content       []OrderSummary
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
	Sort          string
}

// VisibleTo проверяет право пользователя смотреть детальный просмотр.
func (d OrderDetail) VisibleTo(userID int) bool {
	if d.BuyerID == userID {
		return true
	}
	for _, id := range d.LineSellerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (d *OrderDetail) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *OrderDetail) Unmarshal(data []byte) error {
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(d); err != nil {
		return ErrInvalidOrderDetail
	}
	return nil
}

func init() {
	gob.Register(OrderDetail{})
	gob.Register(SellerContact{})
	gob.Register(OrderLineView{})
}
