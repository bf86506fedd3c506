package entities

import (
	"fmt"
	"time"
)

type SaleItem struct {
	ID          int
	SellerID    int
	Brand       string
	Model       string
	Description string
	Color       string
	StorageGB   int
	RamGB       int
	Price       int
	Quantity    int
	CreatedOn   time.Time
	UpdatedOn   time.Time
}

// DisplayName возвращает отображаемое описание товара: "{brand} {model} ({storage} {color})".
// Отсутствующие характеристики заменяются на "-".
func (s SaleItem) DisplayName() string {
	storage := "-"
	if s.StorageGB > 0 {
		storage = fmt.Sprintf("%dGB", s.StorageGB)
	}
	color := s.Color
	if color == "" {
		color = "-"
	}
	return fmt.Sprintf("%s %s (%s %s)", s.Brand, s.Model, storage, color)
}
