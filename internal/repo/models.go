package repo

import (
	"database/sql"
	"time"

	"github.com/mshop-dev/order-service/internal/entities"
)

type Account struct {
	ID       int            `db:"id"`
	Nickname string         `db:"nickname"`
	Email    string         `db:"email"`
	FullName sql.NullString `db:"full_name"`
}

type Seller struct {
	AccountID int            `db:"account_id"`
	Nickname  string         `db:"nickname"`
	Email     string         `db:"email"`
	FullName  sql.NullString `db:"full_name"`
	Mobile    sql.NullString `db:"mobile"`
	BankName  sql.NullString `db:"bank_name"`
	BankAccNo sql.NullString `db:"bank_account_no"`
}

type SaleItem struct {
	ID          int            `db:"id"`
	SellerID    int            `db:"seller_id"`
	Brand       string         `db:"brand"`
	Model       string         `db:"model"`
	Description string         `db:"description"`
	Color       sql.NullString `db:"color"`
	StorageGB   sql.NullInt32  `db:"storage_gb"`
	RamGB       sql.NullInt32  `db:"ram_gb"`
	Price       int            `db:"price"`
	Quantity    int            `db:"quantity"`
	CreatedOn   time.Time      `db:"created_on"`
	UpdatedOn   time.Time      `db:"updated_on"`
}

type Order struct {
	ID              int            `db:"id"`
	CustomerID      int            `db:"customer_id"`
	Status          string         `db:"status"`
	Note            sql.NullString `db:"order_note"`
	ShippingAddress string         `db:"shipping_address"`
	CreatedOn       time.Time      `db:"created_on"`
	PaymentDate     sql.NullTime   `db:"payment_date"`
}

type OrderLine struct {
	ID          int    `db:"id"`
	OrderID     int    `db:"order_id"`
	SaleItemID  int    `db:"sale_item_id"`
	SellerID    int    `db:"seller_id"`
	Quantity    int    `db:"quantity"`
	PriceEach   int    `db:"price_each"`
	Description string `db:"description"`
}

type CartEntry struct {
	ID         int            `db:"id"`
	AccountID  int            `db:"account_id"`
	SaleItemID int            `db:"sale_item_id"`
	Quantity   int            `db:"quantity"`
	Note       sql.NullString `db:"note"`
}

func AccountToEntity(a Account) entities.Account {
	return entities.Account{
		ID:       a.ID,
		Nickname: a.Nickname,
		Email:    a.Email,
		FullName: nullStringToString(a.FullName),
	}
}

func SellerToEntity(s Seller) entities.Seller {
	return entities.Seller{
		AccountID: s.AccountID,
		Nickname:  s.Nickname,
		Email:     s.Email,
		FullName:  nullStringToString(s.FullName),
		Mobile:    nullStringToString(s.Mobile),
		BankName:  nullStringToString(s.BankName),
		BankAccNo: nullStringToString(s.BankAccNo),
	}
}

func SaleItemToEntity(s SaleItem) entities.SaleItem {
	return entities.SaleItem{
		ID:          s.ID,
		SellerID:    s.SellerID,
		Brand:       s.Brand,
		Model:       s.Model,
		Description: s.Description,
		Color:       nullStringToString(s.Color),
		StorageGB:   nullInt32ToInt(s.StorageGB),
		RamGB:       nullInt32ToInt(s.RamGB),
		Price:       s.Price,
		Quantity:    s.Quantity,
		CreatedOn:   s.CreatedOn,
		UpdatedOn:   s.UpdatedOn,
	}
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		BuyerID:         o.CustomerID,
		Status:          entities.OrderStatus(o.Status),
		Note:            nullStringToString(o.Note),
		ShippingAddress: o.ShippingAddress,
		CreatedOn:       o.CreatedOn,
	}
	if o.PaymentDate.Valid {
		paymentDate := o.PaymentDate.Time
		order.PaymentDate = &paymentDate
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, line := range lines {
			order.Lines = append(order.Lines, OrderLineToEntity(line))
		}
	}

	return order
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID:          l.ID,
		OrderID:     l.OrderID,
		SaleItemID:  l.SaleItemID,
		SellerID:    l.SellerID,
		Quantity:    l.Quantity,
		PriceEach:   l.PriceEach,
		Description: l.Description,
	}
}

func CartEntryToEntity(c CartEntry) entities.CartEntry {
	return entities.CartEntry{
		ID:         c.ID,
		BuyerID:    c.AccountID,
		SaleItemID: c.SaleItemID,
		Quantity:   c.Quantity,
		Note:       nullStringToString(c.Note),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}
