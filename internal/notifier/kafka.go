package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-service/internal/config"
	"github.com/segmentio/kafka-go"
)

// Email письмо для сервиса рассылок.
type Email struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// kafkaNotifier публикует письма в топик уведомлений.
// Доставкой занимается отдельный сервис рассылок.
type kafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func New(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (n *kafkaNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(Email{Recipient: recipient, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipient),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish email: %w", err)
	}

	n.logger.DebugContext(ctx, "email published", slog.String("recipient", recipient))
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
