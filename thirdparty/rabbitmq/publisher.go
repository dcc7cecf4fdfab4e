package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	stockExchange   = "inventory_events_exchange"
	stockQueue      = "inventory_low_stock_queue"
	stockRoutingKey = "inventory.stock_changed"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// StockChangedMessage is published after a committed transaction changed balances.
type StockChangedMessage struct {
	WarehouseID uint64    `json:"warehouse_id"`
	ProductIDs  []uint64  `json:"product_ids"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		stockExchange, // name
		"direct",      // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	_, err = channel.QueueDeclare(
		stockQueue, // name
		true,       // durable
		false,      // auto-delete
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.QueueBind(
		stockQueue,      // queue name
		stockRoutingKey, // routing key
		stockExchange,   // exchange
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	return conn, channel, nil
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// PublishStockChanged is a no-op on a nil publisher (messaging disabled).
func (p *Publisher) PublishStockChanged(ctx context.Context, msg StockChangedMessage) error {
	if p == nil || p.channel == nil {
		return nil
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		stockExchange,   // exchange
		stockRoutingKey, // routing key
		false,           // mandatory
		false,           // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
