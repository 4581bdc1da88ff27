package notification

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// sendTimeout bounds every outbound Telegram API call so a stalled
// upstream can never pin a worker goroutine indefinitely.
const sendTimeout = 10 * time.Second

// TelegramNotifier is the messenger-facing adapter shared by the Delivery
// Worker (broadcast::Sender) and the Reminder Scheduler. Its method set
// also satisfies booking::BookingNotifier.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: log}, nil
}

// Send delivers one broadcast delivery command. A media group is sent as
// one atomic external call with the caption attached only to the first
// item; a media group with zero valid file ids is a failure, not a
// silent downgrade to text.
func (n *TelegramNotifier) Send(ctx context.Context, cmd *domain.DeliveryCommand) error {
	chatID, err := strconv.ParseInt(cmd.RecipientID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse recipient id: %w", err)
	}

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if len(cmd.MediaGroup) > 0 {
		return n.sendMediaGroup(ctx, chatID, cmd)
	}

	return n.sendText(ctx, chatID, cmd)
}

func (n *TelegramNotifier) sendText(ctx context.Context, chatID int64, cmd *domain.DeliveryCommand) error {
	msg := tgbotapi.NewMessage(chatID, cmd.Message)
	msg.ParseMode = "Markdown"

	if cmd.MessageType == domain.MessageTypeSignUp {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Записаться", "signup:"+cmd.BroadcastID),
			),
		)
	}

	if err := n.doSend(ctx, msg); err != nil {
		return fmt.Errorf("send text message: %w", err)
	}
	return nil
}

func (n *TelegramNotifier) sendMediaGroup(ctx context.Context, chatID int64, cmd *domain.DeliveryCommand) error {
	items := make([]any, 0, len(cmd.MediaGroup))
	for _, m := range cmd.MediaGroup {
		if m.FileID == "" {
			continue
		}
		photo := tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(m.FileID))
		if len(items) == 0 {
			photo.Caption = cmd.Message
			photo.ParseMode = "Markdown"
		}
		items = append(items, photo)
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: media group has no valid file ids", domain.ErrInvalidInput)
	}

	group := tgbotapi.NewMediaGroup(chatID, items)
	if err := n.doSend(ctx, group); err != nil {
		return fmt.Errorf("send media group: %w", err)
	}
	return nil
}

// doSend runs the blocking API call on a goroutine and races it against
// ctx, so a stalled upstream can never pin the caller past its deadline
// even though the bot library takes no context of its own.
func (n *TelegramNotifier) doSend(ctx context.Context, c tgbotapi.Chattable) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)")
		return nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := n.bot.Send(c)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NotifyReminder is invoked by the Reminder Scheduler for each booking
// due today.
func (n *TelegramNotifier) NotifyReminder(ctx context.Context, recipientID string, slot *domain.Slot) error {
	chatID, err := strconv.ParseInt(recipientID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse recipient id: %w", err)
	}

	text := fmt.Sprintf(
		"*Напоминание о собеседовании*\n\nМесто: %s\nВремя (UTC): %s",
		slot.Venue, slot.StartTime.Format("02.01.2006 15:04"),
	)

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err = n.doSend(ctx, tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}

// NotifyNoResponse pings a candidate who was invited to sign up but
// never booked a slot.
func (n *TelegramNotifier) NotifyNoResponse(ctx context.Context, recipientID string) error {
	chatID, err := strconv.ParseInt(recipientID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse recipient id: %w", err)
	}

	text := "Вы ещё не выбрали слот для собеседования. Пожалуйста, забронируйте время."

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err = n.doSend(ctx, tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send no-response notice: %w", err)
	}
	return nil
}
