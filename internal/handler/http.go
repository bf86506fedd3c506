package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/mshop-dev/order-service/internal/service"
	"github.com/mshop-dev/order-service/pkg/utils"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, buyerID int, req service.PlaceOrderRequest) ([]entities.OrderResult, error)
	GetOrderDetail(ctx context.Context, orderID, requesterID int) (entities.OrderDetail, error)
	ListOrders(ctx context.Context, userID, page, size int, sortField, sortDirection string) (entities.OrderPage, error)
}

type CartService interface {
	ListCart(ctx context.Context, buyerID int) ([]entities.CartItemView, error)
}

type EventPublisher interface {
	OrderPlaced(ctx context.Context, results []entities.OrderResult)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	orders    OrderService
	carts     CartService
	publisher EventPublisher
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, carts CartService, publisher EventPublisher) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		orders:    orders,
		carts:     carts,
		publisher: publisher,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/orders", h.PlaceOrder)
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{order_id}", h.GetOrderDetail)
	r.Get("/cart", h.ListCart)
}

// PlaceOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Группирует позиции чекаута по продавцам и создаёт заказ для каждого продавца
// @Tags         orders
// @Accept       json
// @Param        X-User-Id  header    int  true  "Идентификатор покупателя"
// @Param        request    body      PlaceOrderRequest  true  "Позиции чекаута"
// @Success      201  {array}   OrderResult
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет идентификатора пользователя"
// @Failure      403  {object}  utils.ErrorResponse "Покупка собственного товара"
// @Failure      404  {object}  utils.ErrorResponse "Покупатель или товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buyerID, ok := h.requesterID(w, r)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	results, err := h.orders.PlaceOrder(ctx, buyerID, PlaceOrderJSONToRequest(req))
	checkoutDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.writeOrderError(ctx, w, err, "failed to place order")
		return
	}

	checkoutsTotal.Inc()
	for _, result := range results {
		checkoutOrdersTotal.WithLabelValues(string(result.Status)).Inc()
	}
	h.publisher.OrderPlaced(ctx, results)

	resp := make([]OrderResult, 0, len(results))
	for _, result := range results {
		resp = append(resp, OrderResultEntityToJSON(result))
	}
	utils.WriteJSON(w, resp, http.StatusCreated)
}

// GetOrderDetail возвращает детальный просмотр заказа.
// @Summary      Получить заказ по ID
// @Description  Детальный просмотр доступен покупателю и продавцам позиций заказа
// @Tags         orders
// @Param        X-User-Id  header    int  true  "Идентификатор пользователя"
// @Param        order_id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  OrderDetail
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нет идентификатора пользователя"
// @Failure      403  {object}  utils.ErrorResponse "Пользователь не участник заказа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requesterID, ok := h.requesterID(w, r)
	if !ok {
		return
	}

	orderID, err := strconv.Atoi(chi.URLParam(r, "order_id"))
	if err != nil || orderID <= 0 {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	detail, err := h.orders.GetOrderDetail(ctx, orderID, requesterID)
	if err != nil {
		h.writeOrderError(ctx, w, err, "failed to get order detail")
		return
	}

	utils.WriteJSON(w, OrderDetailEntityToJSON(detail), http.StatusOK)
}

// ListOrders возвращает страницу заказов пользователя.
// @Summary      Список заказов
// @Description  Возвращает заказы, где пользователь - покупатель или продавец хотя бы одной позиции
// @Tags         orders
// @Param        X-User-Id  header    int     true   "Идентификатор пользователя"
// @Param        page       query     int     false  "Номер страницы (с нуля)"
// @Param        size       query     int     false  "Размер страницы"
// @Param        sort       query     string  false  "Поле сортировки (createdOn, id, status, paymentDate)"
// @Param        direction  query     string  false  "Направление сортировки (asc, desc)"
// @Success      200  {object}  OrderPage
// @Failure      400  {object}  utils.ErrorResponse "Некорректные параметры страницы"
// @Failure      401  {object}  utils.ErrorResponse "Нет идентификатора пользователя"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requesterID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	page, err := queryInt(query.Get("page"), 0)
	if err != nil {
		utils.WriteError(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := queryInt(query.Get("size"), 0)
	if err != nil {
		utils.WriteError(w, "invalid size", http.StatusBadRequest)
		return
	}

	result, err := h.orders.ListOrders(ctx, userID, page, size, query.Get("sort"), query.Get("direction"))
	if err != nil {
		h.writeOrderError(ctx, w, err, "failed to list orders")
		return
	}

	utils.WriteJSON(w, OrderPageEntityToJSON(result), http.StatusOK)
}

// ListCart возвращает корзину пользователя.
// @Summary      Корзина
// @Description  Возвращает записи корзины, попутно удаляя недоступные и уже купленные товары
// @Tags         cart
// @Param        X-User-Id  header    int  true  "Идентификатор покупателя"
// @Success      200  {array}   CartItem
// @Failure      401  {object}  utils.ErrorResponse "Нет идентификатора пользователя"
// @Failure      404  {object}  utils.ErrorResponse "Покупатель не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [get]
func (h *HTTPHandler) ListCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buyerID, ok := h.requesterID(w, r)
	if !ok {
		return
	}

	views, err := h.carts.ListCart(ctx, buyerID)
	if err != nil {
		h.writeOrderError(ctx, w, err, "failed to list cart")
		return
	}

	resp := make([]CartItem, 0, len(views))
	for _, v := range views {
		resp = append(resp, CartItemEntityToJSON(v))
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

// requesterID извлекает идентификатор пользователя из заголовка X-User-Id.
// Аутентификацией занимается gateway, сюда приходит уже проверенный id.
func (h *HTTPHandler) requesterID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.Header.Get("X-User-Id"))
	if err != nil || id <= 0 {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrEmptyOrder):
		utils.WriteError(w, "order must contain at least one item", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPage), errors.Is(err, entities.ErrInvalidSort):
		utils.WriteError(w, "invalid page parameters", http.StatusBadRequest)
	case errors.Is(err, entities.ErrSelfPurchase):
		utils.WriteError(w, "cannot buy your own item", http.StatusForbidden)
	case errors.Is(err, entities.ErrNotParticipant):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, entities.ErrAccountNotFound):
		utils.WriteError(w, "account not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSaleItemNotFound):
		utils.WriteError(w, "sale item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSellerNotFound):
		utils.WriteError(w, "seller not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
