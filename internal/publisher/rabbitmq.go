package publisher

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const ActionCommentCreated = "comment.created"

const publishTimeout = 5 * time.Second

// channel é o subconjunto de *amqp.Channel usado na publicação
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQ publica os comentários novos para consumidores externos (atendimento, CRM)
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    channel
	exchange   string
	routingKey string
	now        func() time.Time
}

type CommentMessage struct {
	Action    string         `json:"action"`
	Comment   domain.Comment `json:"comment"`
	Timestamp time.Time      `json:"timestamp"`
}

func NewRabbitMQ(cfg config.RabbitMQ) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err = ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"exchange":    cfg.Exchange,
		"queue":       cfg.QueueName,
		"routing_key": cfg.RoutingKey,
	}).Info("Conectado ao RabbitMQ")

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		now:        time.Now,
	}, nil
}

// NewMessage monta o payload publicado para um comentário novo
func NewMessage(comment domain.Comment, at time.Time) CommentMessage {
	return CommentMessage{
		Action:    ActionCommentCreated,
		Comment:   comment,
		Timestamp: at.UTC(),
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, comment domain.Comment) error {
	now := r.now()

	body, err := json.Marshal(NewMessage(comment, now))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    comment.ID,
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"comment_id": comment.ID,
		"sentiment":  comment.Sentiment,
	}).Debug("Comentário publicado")

	return nil
}

// CommentHandler adapta Publish para assinatura no ingestor de comentários.
// Falhas de publicação só são logadas: o comentário já está no conjunto local.
func (r *RabbitMQ) CommentHandler(ctx context.Context) func(domain.Comment) {
	return func(comment domain.Comment) {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		if err := r.Publish(pubCtx, comment); err != nil {
			logrus.WithError(err).WithField("comment_id", comment.ID).
				Warn("Erro ao publicar comentário no RabbitMQ")
		}
	}
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
