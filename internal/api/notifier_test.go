package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"skin-vision/internal/domain/entity"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.err
}

func TestNotifier_EvaluationFinished(t *testing.T) {
	api := &fakeSender{}
	n := &Notifier{api: api, chatID: 42}

	err := n.EvaluationFinished(context.Background(), entity.Tally{AtopicTrue: 5, OtherFalse: 2})
	require.NoError(t, err)
	require.Len(t, api.sent, 1)

	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	require.Equal(t, int64(42), msg.ChatID)
	require.Contains(t, msg.Text, "True Atopic Dermatitis:  5")
	require.Contains(t, msg.Text, "False Other:  2")
}

func TestNotifier_NormalizeFinished(t *testing.T) {
	api := &fakeSender{}
	n := &Notifier{api: api, chatID: 7}

	err := n.NormalizeFinished(context.Background(), entity.BatchSummary{
		Processed: 3,
		OutputDir: "./norm_vt_",
		Elapsed:   1500 * time.Millisecond,
	})
	require.NoError(t, err)

	msg := api.sent[0].(tgbotapi.MessageConfig)
	require.Contains(t, msg.Text, "3 изображений")
	require.Contains(t, msg.Text, "./norm_vt_")
	require.Contains(t, msg.Text, "1.5s")
}

func TestNotifier_SendError(t *testing.T) {
	api := &fakeSender{err: errors.New("unauthorized")}
	n := &Notifier{api: api, chatID: 7}

	err := n.EvaluationFinished(context.Background(), entity.Tally{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unauthorized")
}

func TestFormatPrediction(t *testing.T) {
	text := formatPrediction(&entity.Prediction{Primary: 0, Class: 0, Label: "Atopic Dermatitis"})
	require.Equal(t, "🏷 Класс: Atopic Dermatitis (индекс 0)", text)

	text = formatPrediction(&entity.Prediction{Primary: 1, HasSecondary: true, Secondary: 2, Class: 2, Label: "class3"})
	require.Contains(t, text, "Первая модель: Other")
	require.Contains(t, text, "Подкласс: class3 (индекс 2)")

	text = formatPrediction(&entity.Prediction{Primary: 5, Class: 5})
	require.Contains(t, text, "#5")
}
