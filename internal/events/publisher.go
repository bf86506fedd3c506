package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/mshop-dev/order-service/internal/config"
	"github.com/mshop-dev/order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

// OrderPlacedEvent публикуется для каждого заказа, созданного в рамках чекаута.
type OrderPlacedEvent struct {
	OrderID   int              `json:"order_id"`
	BuyerID   int              `json:"buyer_id"`
	SellerID  int              `json:"seller_id"`
	Status    string           `json:"status"`
	CreatedOn time.Time        `json:"created_on"`
	Items     []OrderPlacedLine `json:"items"`
}

type OrderPlacedLine struct {
	SaleItemID int `json:"sale_item_id"`
	Quantity   int `json:"quantity"`
	Price      int `json:"price"`
}

type publisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewPublisher(logger *slog.Logger, cfg config.Kafka) *publisher {
	return &publisher{
		logger: logger.With(slog.String("component", "events")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

// OrderPlaced отправляет события по принципу best-effort: чекаут уже
// закоммичен, ошибка брокера не должна ронять ответ покупателю.
func (p *publisher) OrderPlaced(ctx context.Context, results []entities.OrderResult) {
	msgs := make([]kafka.Message, 0, len(results))
	for _, r := range results {
		items := make([]OrderPlacedLine, 0, len(r.Lines))
		for _, line := range r.Lines {
			items = append(items, OrderPlacedLine{
				SaleItemID: line.SaleItemID,
				Quantity:   line.Quantity,
				Price:      line.PriceEach,
			})
		}

		value, err := json.Marshal(OrderPlacedEvent{
			OrderID:   r.OrderID,
			BuyerID:   r.BuyerID,
			SellerID:  r.Seller.ID,
			Status:    string(r.Status),
			CreatedOn: r.CreatedOn,
			Items:     items,
		})
		if err != nil {
			p.logger.Error("failed to marshal order event", slog.Int("order_id", r.OrderID), slog.Any("error", err))
			continue
		}

		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.Itoa(r.OrderID)),
			Value: value,
		})
	}
	if len(msgs) == 0 {
		return
	}

	// В библиотеке уже есть retry
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.Error("failed to publish order events", slog.Any("error", err))
	}
}

func (p *publisher) Close() error {
	return p.writer.Close()
}
