package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram pushes a short note to the admin chat whenever the operator
// records a purchase. Nil receiver means notifications are off.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

// New returns nil when no token is configured; callers treat that as "off".
func New(token string, adminChatID int64, log *slog.Logger) (*Telegram, error) {
	if token == "" || adminChatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Telegram{api: api, chatID: adminChatID, log: log}, nil
}

func (t *Telegram) PurchaseRecorded(purchaseID, customerID int64, description string, qty int64, unitPrice float64) {
	if t == nil {
		return
	}
	text := fmt.Sprintf("Purchase #%d: customer %d bought %dx %s at $%.2f",
		purchaseID, customerID, qty, description, unitPrice)
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.log.Error("purchase notification failed", "err", err)
	}
}
