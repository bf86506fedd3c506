package handler

import (
	"time"

	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/internal/service"
)

// PlaceOrderRequest - тело запроса на оформление заказа
type PlaceOrderRequest struct {
	ShippingAddress string             `json:"shipping_address" validate:"required"`
	Note            string             `json:"note,omitempty"`
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderLineRequest - одна позиция чекаута
type OrderLineRequest struct {
	SaleItemID int `json:"sale_item_id" validate:"required,gt=0"`
	Quantity   int `json:"quantity" validate:"required,gt=0"`
	Price      int `json:"price" validate:"gte=0"`
}

// OrderLine - позиция заказа со снапшотом цены и описания
type OrderLine struct {
	SaleItemID  int    `json:"sale_item_id"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

// Seller - краткая карточка продавца
type Seller struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SellerContact - контакты продавца в детальном просмотре заказа
type SellerContact struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
}

// OrderResult - заказ одного продавца, созданный в рамках чекаута
type OrderResult struct {
	OrderID         int         `json:"order_id"`
	BuyerID         int         `json:"buyer_id"`
	Seller          Seller      `json:"seller"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	Note            string      `json:"note,omitempty"`
	CreatedOn       time.Time   `json:"created_on"`
	Items           []OrderLine `json:"items"`
}

// OrderDetail - детальный просмотр заказа
type OrderDetail struct {
	OrderID         int             `json:"order_id"`
	BuyerID         int             `json:"buyer_id"`
	Status          string          `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	Note            string          `json:"note,omitempty"`
	CreatedOn       time.Time       `json:"created_on"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	Sellers         []SellerContact `json:"sellers"`
	Items           []OrderLine     `json:"items"`
}

// OrderSummary - заказ в постраничном списке
type OrderSummary struct {
	OrderID         int         `json:"order_id"`
	BuyerID         int         `json:"buyer_id"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	Note            string      `json:"note,omitempty"`
	CreatedOn       time.Time   `json:"created_on"`
	PaymentDate     *time.Time  `json:"payment_date,omitempty"`
	Sellers         []Seller    `json:"sellers"`
	Items           []OrderLine `json:"items"`
}

// OrderPage - страница заказов
type OrderPage struct {
	Content       []OrderSummary `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int            `json:"total_pages"`
	First         bool           `json:"first"`
	Last          bool           `json:"last"`
	Sort          string         `json:"sort"`
}

// CartItem - запись корзины с данными товара
type CartItem struct {
	ID                int    `json:"id"`
	SaleItemID        int    `json:"sale_item_id"`
	Quantity          int    `json:"quantity"`
	Note              string `json:"note,omitempty"`
	Description       string `json:"description"`
	Price             int    `json:"price"`
	AvailableQuantity int    `json:"available_quantity"`
	SellerName        string `json:"seller_name"`
}

func PlaceOrderJSONToRequest(req PlaceOrderRequest) service.PlaceOrderRequest {
	items := make([]service.OrderLineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderLineRequest{
			SaleItemID: item.SaleItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	return service.PlaceOrderRequest{
		ShippingAddress: req.ShippingAddress,
		Note:            req.Note,
		Items:           items,
	}
}

func orderLinesToJSON(lines []entities.OrderLineView) []OrderLine {
	items := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderLine{
			SaleItemID:  line.SaleItemID,
			Quantity:    line.Quantity,
			Price:       line.PriceEach,
			Description: line.Description,
		})
	}
	return items
}

func OrderResultEntityToJSON(r entities.OrderResult) OrderResult {
	return OrderResult{
		OrderID:         r.OrderID,
		BuyerID:         r.BuyerID,
		Seller:          Seller{ID: r.Seller.ID, Name: r.Seller.Name},
		Status:          string(r.Status),
		ShippingAddress: r.ShippingAddress,
		Note:            r.Note,
		CreatedOn:       r.CreatedOn,
		Items:           orderLinesToJSON(r.Lines),
	}
}

func OrderDetailEntityToJSON(d entities.OrderDetail) OrderDetail {
	sellers := make([]SellerContact, 0, len(d.Sellers))
	for _, s := range d.Sellers {
		sellers = append(sellers, SellerContact{
			ID:       s.ID,
			Name:     s.Name,
			FullName: s.FullName,
			Email:    s.Email,
			Mobile:   s.Mobile,
		})
	}
	return OrderDetail{
		OrderID:         d.OrderID,
		BuyerID:         d.BuyerID,
		Status:          string(d.Status),
		ShippingAddress: d.ShippingAddress,
		Note:            d.Note,
		CreatedOn:       d.CreatedOn,
		PaymentDate:     d.PaymentDate,
		Sellers:         sellers,
		Items:           orderLinesToJSON(d.Lines),
	}
}

func OrderSummaryEntityToJSON(s entities.OrderSummary) OrderSummary {
	sellers := make([]Seller, 0, len(s.Sellers))
	for _, seller := range s.Sellers {
		sellers = append(sellers, Seller{ID: seller.ID, Name: seller.Name})
	}
	return OrderSummary{
		OrderID:         s.OrderID,
		BuyerID:         s.BuyerID,
		Status:          string(s.Status),
		ShippingAddress: s.ShippingAddress,
		Note:            s.Note,
		CreatedOn:       s.CreatedOn,
		PaymentDate:     s.PaymentDate,
		Sellers:         sellers,
		Items:           orderLinesToJSON(s.Lines),
	}
}

func OrderPageEntityToJSON(p entities.OrderPage) OrderPage {
	content := make([]OrderSummary, 0, len(p.Content))
	for _, s := range p.Content {
		content = append(content, OrderSummaryEntityToJSON(s))
	}
	return OrderPage{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
		Sort:          p.Sort,
	}
}

func CartItemEntityToJSON(v entities.CartItemView) CartItem {
	return CartItem{
		ID:                v.ID,
		SaleItemID:        v.SaleItemID,
		Quantity:          v.Quantity,
		Note:              v.Note,
		Description:       v.Description,
		Price:             v.PriceEach,
		AvailableQuantity: v.AvailableQuantity,
		SellerName:        v.SellerName,
	}
}
