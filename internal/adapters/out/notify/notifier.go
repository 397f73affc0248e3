// Package notify tells the kitchen about placed orders.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"littlelemon/internal/core/domain/model/order"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the part of tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts a short summary of every placed order to one chat.
type TelegramNotifier struct {
	bot    sender
	chatID int64
}

// NewTelegramNotifier authenticates the bot token with Telegram.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) OrderPlaced(ctx context.Context, placed *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, Summary(placed))); err != nil {
		return fmt.Errorf("send order %d to telegram: %w", placed.ID(), err)
	}
	return nil
}

// LogNotifier writes the summary to the log. Used when Telegram is not configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "order-notifier")}
}

func (n *LogNotifier) OrderPlaced(ctx context.Context, placed *order.Order) error {
	n.logger.InfoContext(ctx, "order placed",
		"order_id", placed.ID(),
		"user_id", placed.UserID(),
		"items", len(placed.Items()),
		"total", placed.Total().String(),
	)
	return nil
}

// Summary renders an order as a few lines of plain text.
func Summary(placed *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d from user %d on %s\n",
		placed.ID(), placed.UserID(), placed.Date().Format("2006-01-02"))
	for _, item := range placed.Items() {
		fmt.Fprintf(&b, "- menu item %d x%d = %s\n",
			item.MenuItemID(), item.Quantity().Int(), item.Price().String())
	}
	fmt.Fprintf(&b, "Total: %s", placed.Total().String())
	return b.String()
}
