package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "table-finder/internal/application"
	"table-finder/internal/domain/entity"
)

const historyLimit = 5

const (
	msgStart = `👋 Привет! Я бот для поиска таблиц на сканах и фотографиях документов.

📸 Отправьте мне фото страницы, и я найду внешнюю рамку таблицы.

📋 Команды:
/scan — начать поиск таблицы
/history — последние проверки
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото или скан страницы
2️⃣ Бот найдёт линии разметки и соберёт из них рамку
3️⃣ Вы получите координаты таблицы и фото с подсветкой

💡 Рекомендации:
• Снимайте страницу целиком и без сильного наклона
• Линии таблицы должны быть видны
• Фото должно быть чётким

📋 Команды:
/scan — начать поиск
/history — последние проверки
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото страницы с таблицей."
	msgCancelled       = "❌ Операция отменена. Отправьте /scan для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото страницы с таблицей."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Ищу таблицу..."
	msgBusy            = "⏳ Предыдущее изображение ещё обрабатывается."
	msgNoTable         = "🔍 Таблица не найдена. Нужны хотя бы две горизонтальные и две вертикальные линии."
	msgNoHistory       = "📭 Проверок пока не было."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgBadImage        = "⚠️ Не удалось прочитать изображение. Поддерживаются JPEG и PNG."
	msgHistoryError    = "⚠️ Не удалось получить историю проверок."
)

// Bot представляет Telegram-бота
type Bot struct {
	api   *tgbotapi.BotAPI
	users *app.UserService
	scans *app.ScanService
}

// NewBot создаёт нового бота
func NewBot(token string, users *app.UserService, scans *app.ScanService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:   api,
		users: users,
		scans: scans,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return ctx.Err()
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		if _, err := b.users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			log.Printf("Error resetting user %d: %v", user.ID, err)
		}
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "scan":
		if _, err := b.users.BeginScan(ctx, user.ID, msg.Chat.ID); err != nil {
			log.Printf("Error updating user %d: %v", user.ID, err)
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "cancel":
		if _, err := b.users.Cancel(ctx, user.ID, msg.Chat.ID); err != nil {
			log.Printf("Error resetting user %d: %v", user.ID, err)
		}
		b.sendMessage(msg.Chat.ID, msgCancelled)

	case "history":
		history, err := b.scans.History(ctx, user.ID, historyLimit)
		if err != nil {
			log.Printf("Error loading history for user %d: %v", user.ID, err)
			b.sendMessage(msg.Chat.ID, msgHistoryError)
			return
		}
		b.sendMessage(msg.Chat.ID, formatHistory(history))

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto ищет таблицу на присланном фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	if user.State == entity.StateProcessing {
		b.sendMessage(msg.Chat.ID, msgBusy)
		return
	}

	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	out, err := b.scans.ProcessPhoto(ctx, user.ID, msg.Chat.ID, imageData)
	switch {
	case errors.Is(err, app.ErrUndecodableImage):
		b.sendMessage(msg.Chat.ID, msgBadImage)
		return
	case err != nil:
		log.Printf("Error scanning photo from user %d: %v", user.ID, err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	log.Printf("Scan %s: segments=%d groups=%d found=%t", out.Result.ID, out.Result.SegmentCount, out.Result.GroupCount, out.Result.Found)

	if !out.Result.Found {
		b.sendMessage(msg.Chat.ID, msgNoTable)
		return
	}

	if len(out.Highlighted) == 0 {
		b.sendMessage(msg.Chat.ID, formatResult(out.Result))
		return
	}

	b.sendPhoto(msg.Chat.ID, out.Highlighted, formatResult(out.Result))
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
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

func (b *Bot) sendPhoto(chatID int64, data []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "table.jpg", Bytes: data})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending photo: %v", err)
	}
}
