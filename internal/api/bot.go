package telegram

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"skin-vision/internal/container"
	"skin-vision/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для анализа фотографий кожи.

Я умею классифицировать снимок (атопический дерматит или другое заболевание) и нормализовать яркость и контраст.

📋 Команды:
/classify — классифицировать фото
/normalize — нормализовать фото
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Выберите режим: /classify или /normalize
2️⃣ Отправьте фото
3️⃣ Получите класс снимка или нормализованное изображение

💡 Рекомендации:
• Снимайте при хорошем освещении
• Участок кожи должен занимать большую часть кадра

📋 Команды:
/classify — классификация
/normalize — нормализация
/cancel — отменить операцию`

	msgAwaitClassify   = "📸 Отправьте фото для классификации."
	msgAwaitNormalize  = "📸 Отправьте фото для нормализации."
	msgCancelled       = "❌ Операция отменена. Выберите /classify или /normalize."
	msgChooseMode      = "📋 Сначала выберите режим: /classify или /normalize."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgBusy            = "⏳ Предыдущее фото ещё обрабатывается."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте другое фото."
)

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	services *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, services *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		services: services,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// В каналах и у анонимных админов групп отправителя нет
	if msg.From == nil || msg.Chat == nil {
		return
	}

	user, err := b.services.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	users := b.services.UserService
	userID, chatID := msg.From.ID, msg.Chat.ID

	var (
		reply string
		err   error
	)
	switch msg.Command() {
	case "start":
		_, err = users.Cancel(ctx, userID, chatID)
		reply = msgStart
	case "help":
		reply = msgHelp
	case "classify":
		_, err = users.BeginClassify(ctx, userID, chatID)
		reply = msgAwaitClassify
	case "normalize":
		_, err = users.BeginNormalize(ctx, userID, chatID)
		reply = msgAwaitNormalize
	case "cancel":
		_, err = users.Cancel(ctx, userID, chatID)
		reply = msgCancelled
	default:
		reply = msgUnknownCommand
	}
	if err != nil {
		log.Printf("Error updating user state: %v", err)
	}
	b.sendMessage(chatID, reply)
}

// handlePhoto обрабатывает входящее фото в выбранном режиме
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID
	if user.State == entity.StateProcessing {
		b.sendMessage(chatID, msgBusy)
		return
	}
	if !user.AwaitingPhoto() {
		b.sendMessage(chatID, msgChooseMode)
		return
	}

	mode, err := b.services.UserService.StartProcessing(ctx, user.ID, chatID)
	if err != nil {
		log.Printf("Error updating user state: %v", err)
		return
	}
	// После обработки возвращаем в главное меню в любом случае
	defer func() {
		if _, err := b.services.UserService.Cancel(ctx, user.ID, chatID); err != nil {
			log.Printf("Error resetting user state: %v", err)
		}
	}()

	b.sendMessage(chatID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		log.Printf("Error decoding photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	switch mode {
	case entity.StateAwaitingClassify:
		pred, err := b.services.ClassificationService.ClassifyImage(ctx, img)
		if err != nil {
			log.Printf("Error classifying photo: %v", err)
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendMessage(chatID, formatPrediction(pred))

	case entity.StateAwaitingNormalize:
		norm, err := b.services.NormalizeService.NormalizeImage(ctx, img)
		if err != nil {
			log.Printf("Error normalizing photo: %v", err)
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, norm, &jpeg.Options{Quality: 90}); err != nil {
			log.Printf("Error encoding photo: %v", err)
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendPhoto(chatID, buf.Bytes())
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// sendPhoto отправляет JPEG-картинку
func (b *Bot) sendPhoto(chatID int64, data []byte) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "normalized.jpg", Bytes: data})
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending photo: %v", err)
	}
}
