// Package sender собирает приложение отправки email-уведомлений.
// Читает сообщения из RabbitMQ и отправляет письма через SMTP.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/smartnotes-backend/internal/config"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/sl"
	"github.com/magabrotheeeer/smartnotes-backend/internal/lib/smtp"
	"github.com/magabrotheeeer/smartnotes-backend/internal/rabbitmq"
	senderservice "github.com/magabrotheeeer/smartnotes-backend/internal/services/sender"
)

// App инкапсулирует зависимости приложения-отправителя.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New создает приложение: подключается к RabbitMQ, объявляет очереди
// и настраивает SMTP-транспорт.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		if cerr := conn.Close(); cerr != nil {
			logger.Error("failed to close rabbitmq connection", sl.Err(cerr))
		}
		return nil, err
	}

	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(logger, transport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребление очереди уведомлений и блокируется до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, "notifications.trial", a.senderService.SendTrialExpiryNotice)
	if err != nil {
		a.logger.Error("failed to start consumer", sl.Err(err))
		return err
	}

	a.logger.Info("sender started", slog.String("queue", "notifications.trial"))

	<-ctx.Done()
	a.logger.Info("sender shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close rabbitmq channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close rabbitmq connection", sl.Err(err))
	}
	return nil
}
