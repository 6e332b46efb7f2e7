package service

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/order"
)

const orderEventsQueue = "order_events"

// 订单事件类型
const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent 写入 MQ 的订单事件消息体
type OrderEvent struct {
	Event      string `json:"event"`
	OrderID    int64  `json:"order_id"`
	UserID     int64  `json:"user_id"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"total_price"`
}

// OrderEventPublisher 订单事件发布器。
// 发布失败只记录日志和计数，不影响请求本身。
type OrderEventPublisher struct {
	conn *amqp.Connection
}

// NewOrderEventPublisher 创建发布器，conn 为 nil 时返回 nil（调用方可安全持有）
func NewOrderEventPublisher(conn *amqp.Connection) *OrderEventPublisher {
	if conn == nil {
		return nil
	}
	return &OrderEventPublisher{conn: conn}
}

// Publish 发布一条订单事件
func (p *OrderEventPublisher) Publish(ctx context.Context, event string, o *order.Order) {
	if p == nil || p.conn == nil || o == nil {
		return
	}

	ch, err := p.conn.Channel()
	if err != nil {
		GetMonitor().RecordMQError()
		zap.L().Warn("open mq channel failed", zap.Error(err))
		return
	}
	defer ch.Close()

	if _, err = ch.QueueDeclare(orderEventsQueue, true, false, false, false, nil); err != nil {
		GetMonitor().RecordMQError()
		zap.L().Warn("declare order_events queue failed", zap.Error(err))
		return
	}

	body, err := json.Marshal(&OrderEvent{
		Event:      event,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
	})
	if err != nil {
		zap.L().Warn("marshal order event failed", zap.Error(err))
		return
	}

	err = ch.PublishWithContext(
		ctx,
		"",
		orderEventsQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		GetMonitor().RecordMQError()
		zap.L().Warn("publish order event failed",
			zap.String("event", event),
			zap.Int64("order_id", o.ID),
			zap.Error(err))
	}
}
