package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Command defines a bot command with its handler key and Telegram menu description.
type Command struct {
	Name        string // Command name without slash (e.g., "score")
	Description string // Description shown in Telegram command menu
}

// botCommands defines all available bot commands.
// This is the single source of truth for command definitions.
var botCommands = []Command{
	{Name: "new", Description: "เริ่มสร้างประกาศใหม่"},
	{Name: "score", Description: "ประเมินความพร้อมก่อนลงขาย"},
	{Name: "title", Description: "แนะนำชื่อประกาศ"},
	{Name: "carprice", Description: "ประเมินราคารถมือสอง"},
	{Name: "preview", Description: "ดูร่างประกาศ"},
	{Name: "history", Description: "ประวัติการประเมิน"},
	{Name: "delphotos", Description: "ลบรูปทั้งหมด"},
	{Name: "cancel", Description: "ยกเลิกประกาศ"},
	{Name: "version", Description: "ดูเวอร์ชัน"},
}

// RegisterCommands sets the bot's command menu in Telegram.
// This should be called once at startup.
func RegisterCommands(tg *tgbotapi.BotAPI) {
	commands := make([]tgbotapi.BotCommand, len(botCommands))
	for i, cmd := range botCommands {
		commands[i] = tgbotapi.BotCommand{
			Command:     cmd.Name,
			Description: cmd.Description,
		}
	}

	config := tgbotapi.NewSetMyCommands(commands...)
	if _, err := tg.Request(config); err != nil {
		log.Error().Err(err).Msg("failed to set bot commands")
	} else {
		log.Info().Int("count", len(commands)).Msg("registered bot commands")
	}
}
