// Package notification delivers operational alerts to the on-call
// channel. It is best-effort: a failed alert is logged and dropped,
// never surfaced to the caller.
package notification

import (
	"context"
	"fmt"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, ops alerts disabled")
		return &TelegramNotifier{bot: nil, opsChatID: opsChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifySeedingFailed(ctx context.Context, hotel *domain.Hotel, roomType *domain.RoomType, cause error) {
	text := fmt.Sprintf(
		"*Inventory seeding failed*\n\n"+"Hotel: %s (%s)\n"+"Room type: %s (id %d)\n"+"Error: %s",
		hotel.Name, hotel.Code, roomType.Code, roomType.ID, cause.Error(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("ops alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.opsChatID == 0 {
		n.logger.Debug("ops alert skipped (no ops chat configured)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("ops alert skipped (context cancelled)",
			logger.Int64("chat_id", n.opsChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send ops alert",
			logger.Int64("chat_id", n.opsChatID),
			logger.String("error", err.Error()),
		)
	}
}
