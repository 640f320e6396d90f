package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-profile-harvester/internal/models"
)

// TelegramReporter pushes run summaries to a Telegram chat. Optional:
// a nil reporter is valid and every method is a no-op on it.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("reporter: init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	if t == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary reports the run outcome: profile counts, record counts and
// failures.
func (t *TelegramReporter) SendSummary(res *models.RunResult) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf(
		"🏁 <b>Harvest finished</b>\n"+
			"👤 %d profiles processed\n"+
			"📄 %d records extracted\n"+
			"❌ %d failed",
		res.ProfileCount(),
		res.TotalRecords(),
		res.Failed(),
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(runErr error) error {
	if t == nil {
		return nil
	}
	return t.SendMessage(fmt.Sprintf("🚨 Harvest aborted: %v", runErr))
}
