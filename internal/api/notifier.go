package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"skin-vision/internal/domain/entity"
	"skin-vision/internal/domain/port"
)

// sender часть tgbotapi.BotAPI, которой достаточно для отправки сообщений
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет итоги запусков в заданный чат
type Notifier struct {
	api    sender
	chatID int64
}

// NewNotifier создаёт уведомитель для чата chatID
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

// NormalizeFinished отправляет итог нормализации
func (n *Notifier) NormalizeFinished(ctx context.Context, summary entity.BatchSummary) error {
	return n.send(ctx, formatBatchSummary(summary))
}

// EvaluationFinished отправляет итоговые счётчики
func (n *Notifier) EvaluationFinished(ctx context.Context, tally entity.Tally) error {
	return n.send(ctx, formatTally(tally))
}

func (n *Notifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Reporter = (*Notifier)(nil)
