package entities

import "strings"

// SortField - явный список полей, по которым можно сортировать заказы.
type SortField string

const (
	SortByCreatedOn   SortField = "createdOn"
	SortByID          SortField = "id"
	SortByStatus      SortField = "status"
	SortByPaymentDate SortField = "paymentDate"
)

const DefaultPageSize = 10

type PageQuery struct {
	Page int
	Size int
	Sort SortField
	Desc bool
}

// NewPageQuery нормализует параметры постраничного запроса.
// Пустое поле сортировки заменяется на createdOn, неизвестное - ошибка.
func NewPageQuery(page, size int, sortField, sortDirection string) (PageQuery, error) {
	if page < 0 {
		return PageQuery{}, ErrInvalidPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	sort := SortField(sortField)
	switch sort {
	case "":
		sort = SortByCreatedOn
	case SortByCreatedOn, SortByID, SortByStatus, SortByPaymentDate:
	default:
		return PageQuery{}, ErrInvalidSort
	}

	return PageQuery{
		Page: page,
		Size: size,
		Sort: sort,
		Desc: strings.EqualFold(sortDirection, "desc"),
	}, nil
}

// SortString - строка сортировки в ответе, например "createdOn:ASC".
func (q PageQuery) SortString() string {
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	return string(q.Sort) + ":" + dir
}
