package entities

import "time"

// OrderStatus присваивается один раз при создании заказа и больше не меняется.
type OrderStatus string

const (
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID              int
	BuyerID         int
	Status          OrderStatus
	Note            string
	ShippingAddress string
	CreatedOn       time.Time
	PaymentDate     *time.Time

	Lines []OrderLine
}

// OrderLine хранит снапшот цены и описания на момент покупки,
// чтобы правки каталога не меняли историю заказов.
type OrderLine struct {
	ID          int
	OrderID     int
	SaleItemID  int
	SellerID    int
	Quantity    int
	PriceEach   int
	Description string
}

// SellerIDs возвращает продавцов заказа без дубликатов, в порядке строк.
func (o Order) SellerIDs() []int {
	seen := make(map[int]struct{}, len(o.Lines))
	ids := make([]int, 0, len(o.Lines))
	for _, line := range o.Lines {
		if _, ok := seen[line.SellerID]; ok {
			continue
		}
		seen[line.SellerID] = struct{}{}
		ids = append(ids, line.SellerID)
	}
	return ids
}

// IsParticipant сообщает, является ли пользователь покупателем заказа
// или продавцом хотя бы одной его позиции.
func (o Order) IsParticipant(userID int) bool {
	if o.BuyerID == userID {
		return true
	}
	for _, line := range o.Lines {
		if line.SellerID == userID {
			return true
		}
	}
	return false
}
