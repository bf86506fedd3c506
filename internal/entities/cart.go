package entities

type CartEntry struct {
	ID         int
	BuyerID    int
	SaleItemID int
	Quantity   int
	Note       string
}

// CartItemView - запись корзины с производными полями для отображения.
type CartItemView struct {
	ID                int
	SaleItemID        int
	Quantity          int
	Note              string
	Description       string
	PriceEach         int
	AvailableQuantity int
	SellerName        string
}
