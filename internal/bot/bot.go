// Package bot implements the Telegram front-end: the draft flow, the
// readiness report, title suggestions and the car price estimator.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/kritsada/taladnat-bot/carprice"
	"github.com/kritsada/taladnat-bot/internal/llm"
	"github.com/kritsada/taladnat-bot/internal/storage"
	"github.com/kritsada/taladnat-bot/readiness"
	"github.com/kritsada/taladnat-bot/talad"
	"github.com/kritsada/taladnat-bot/title"
)

// Version info, set at build time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// BotAPI defines the interface for Telegram bot API operations.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

// Bot is the main Telegram bot handler.
type Bot struct {
	tg       BotAPI
	state    BotState
	store    storage.Store
	analyzer llm.Analyzer
	market   *talad.Client
	adminID  int64
}

// NewBot creates a new Bot instance. The market client is optional; when
// nil, features that need listing search are skipped. adminID identifies
// the user who manages the whitelist; zero disables the whitelist.
func NewBot(tg BotAPI, store storage.Store, analyzer llm.Analyzer, market *talad.Client, adminID int64) *Bot {
	bot := &Bot{
		tg:       tg,
		store:    store,
		analyzer: analyzer,
		market:   market,
		adminID:  adminID,
	}
	bot.state = bot.NewBotState()
	return bot
}

// HandleUpdate is the main message router. Each user's messages are
// serialized on the session mutex.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	var userId int64
	if update.CallbackQuery != nil {
		userId = update.CallbackQuery.From.ID
	} else if update.Message != nil {
		userId = update.Message.From.ID
	} else {
		return
	}

	// Whitelist check before any session is created, so unknown user
	// ids cannot grow the session map.
	if b.adminID != 0 && userId != b.adminID {
		allowed, err := b.store.IsUserAllowed(userId)
		if err != nil {
			log.Error().Err(err).Int64("user_id", userId).Msg("whitelist check failed")
			return // fail closed
		}
		if !allowed {
			return // silent drop
		}
	}

	session := b.state.getUserSession(userId)
	defer session.lock()()

	if update.CallbackQuery != nil {
		b.handleCallbackQuery(ctx, session, update.CallbackQuery)
		return
	}

	message := update.Message
	log.Info().Str("text", message.Text).Str("caption", message.Caption).Msg("got message")

	if len(message.Photo) > 0 {
		b.handlePhotoMessage(ctx, session, message)
		return
	}

	if b.handleDraftInput(session, message.Text) {
		return
	}

	b.handleCommand(ctx, session, message)
}

// handleCommand processes bot commands.
// Called with the session mutex held.
func (b *Bot) handleCommand(ctx context.Context, session *UserSession, message *tgbotapi.Message) {
	command, args := parseCommand(message.Text)
	switch command {
	case "/start":
		session.reply(MsgStartPrompt)
	case "/new":
		session.reset()
		session.ensureDraft()
		session.flowState = FlowAwaitingTitle
		b.promptNextField(session)
	case "/cancel":
		if b.store != nil {
			if err := b.store.DeleteDraft(session.userId); err != nil {
				log.Warn().Err(err).Msg("failed to delete stored draft")
			}
		}
		session.reset()
		session.replyAndRemoveCustomKeyboard(MsgDraftCleared)
	case "/score":
		b.handleScoreCommand(session)
	case "/title":
		b.handleTitleCommand(session)
	case "/carprice":
		b.handleCarPriceCommand(ctx, session, args)
	case "/history":
		b.handleHistoryCommand(session)
	case "/preview":
		b.handlePreviewCommand(session)
	case "/delphotos":
		if session.draft != nil {
			session.draft.Images = nil
			session.draft.ImageQualityScores = nil
			b.saveDraft(session)
		}
		session.reply(MsgPhotosRemoved)
	case "/admin":
		b.handleAdminCommand(session, args)
	case "/version":
		session.reply(MsgVersionInfo, Version, BuildTime)
	default:
		session.reply(MsgStartPrompt)
	}
}

// handleCallbackQuery handles inline keyboard button presses.
// Called with the session mutex held.
func (b *Bot) handleCallbackQuery(ctx context.Context, session *UserSession, query *tgbotapi.CallbackQuery) {
	// Answer the callback to remove the loading state
	callback := tgbotapi.NewCallback(query.ID, "")
	b.tg.Request(callback)

	switch {
	case strings.HasPrefix(query.Data, "cat:"):
		b.handleCategorySelection(session, query)
	case strings.HasPrefix(query.Data, "subcat:"):
		b.handleSubcategorySelection(session, query)
	case strings.HasPrefix(query.Data, "ship:"):
		b.handleShippingSelection(session, query)
	case strings.HasPrefix(query.Data, "cond:"):
		b.handleConditionSelection(session, query)
	}
}

// handleScoreCommand evaluates the draft and sends the readiness report.
// Called with the session mutex held.
func (b *Bot) handleScoreCommand(session *UserSession) {
	if session.draft == nil {
		session.reply(MsgScoreNoDraft)
		return
	}

	eval := readiness.Evaluate(*session.draft)

	if b.store != nil {
		if err := b.store.AddEvaluation(session.userId, eval.SellScore, eval.SellGrade); err != nil {
			log.Warn().Err(err).Msg("failed to record evaluation")
		}
	}

	msg := tgbotapi.NewMessage(session.userId, renderEvaluation(eval))
	msg.ParseMode = tgbotapi.ModeMarkdown
	session.replyWithMessage(msg)
}

// handleTitleCommand runs title suggestions for the draft.
// Called with the session mutex held.
func (b *Bot) handleTitleCommand(session *UserSession) {
	if session.draft == nil || session.draft.Title == "" {
		session.reply(MsgTitleNoDraft)
		return
	}

	draft := session.draft
	userInputs := map[string]string{}
	for k, v := range draft.Details {
		if s, ok := v.(string); ok {
			userInputs[k] = s
		}
	}
	if draft.Condition != "" {
		userInputs["condition"] = draft.Condition
	}

	analysis := title.Suggest(title.Input{
		CategoryID:    draft.CategoryID,
		SubcategoryID: draft.SubcategoryID,
		CurrentTitle:  draft.Title,
		UserInputs:    userInputs,
	})

	msg := tgbotapi.NewMessage(session.userId, renderTitleAnalysis(analysis))
	msg.ParseMode = tgbotapi.ModeMarkdown
	session.replyWithMessage(msg)
}

// handleCarPriceCommand estimates a used-car price from command args:
// /carprice <new price> <year> [mileage] [condition]
// Called with the session mutex held.
func (b *Bot) handleCarPriceCommand(ctx context.Context, session *UserSession, args []string) {
	if len(args) < 2 {
		session.reply(MsgCarPriceUsage)
		return
	}

	newPrice, err := parsePriceMessage(args[0])
	if err != nil {
		session.reply(MsgCarPriceInvalid, args[0])
		return
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		session.reply(MsgCarPriceInvalid, args[1])
		return
	}

	in := carprice.Input{NewPrice: newPrice, Year: year, Condition: "good"}
	if len(args) >= 3 {
		if in.Mileage, err = parsePriceMessage(args[2]); err != nil {
			session.reply(MsgCarPriceInvalid, args[2])
			return
		}
	}
	if len(args) >= 4 {
		in.Condition = args[3]
	}

	est := carprice.Estimate(in)
	text := renderCarPrice(est)

	if market := b.marketMedian(ctx, session); market != "" {
		text += "\n\n" + market
	}

	msg := tgbotapi.NewMessage(session.userId, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	session.replyWithMessage(msg)
}

// marketMedian looks up the median asking price for the draft's title in
// the automotive category. Empty string when unavailable.
func (b *Bot) marketMedian(ctx context.Context, session *UserSession) string {
	if b.market == nil || session.draft == nil || session.draft.Title == "" {
		return ""
	}

	result, err := b.market.SearchListings(ctx, talad.SearchParams{
		Query:      session.draft.Title,
		CategoryID: 1,
		Limit:      30,
	})
	if err != nil {
		log.Warn().Err(err).Msg("market price lookup failed")
		return ""
	}
	if len(result.Docs) == 0 {
		return ""
	}
	return formatReplyText(MsgCarPriceMarket, len(result.Docs), formatBaht(result.MedianPrice()))
}

// handleHistoryCommand lists the user's recent evaluations.
// Called with the session mutex held.
func (b *Bot) handleHistoryCommand(session *UserSession) {
	if b.store == nil {
		session.reply(MsgHistoryEmpty)
		return
	}

	records, err := b.store.GetEvaluations(session.userId, 10)
	if err != nil {
		session.replyWithError(err)
		return
	}
	if len(records) == 0 {
		session.reply(MsgHistoryEmpty)
		return
	}

	var sb strings.Builder
	sb.WriteString("*ประวัติการประเมิน:*\n")
	for _, rec := range records {
		fmt.Fprintf(&sb, "%s *%d/100* (เกรด %s) · %s\n",
			rec.SellGrade.Emoji(), rec.SellScore, rec.SellGrade,
			rec.CreatedAt.Format("2006-01-02"))
	}

	msg := tgbotapi.NewMessage(session.userId, strings.TrimRight(sb.String(), "\n"))
	msg.ParseMode = tgbotapi.ModeMarkdown
	session.replyWithMessage(msg)
}

// handlePreviewCommand shows the current draft.
// Called with the session mutex held.
func (b *Bot) handlePreviewCommand(session *UserSession) {
	if session.draft == nil {
		session.reply(MsgNoDraft)
		return
	}

	draft := session.draft
	condition := conditionLabels[draft.Condition]
	if condition == "" {
		condition = "-"
	}
	shipping := strings.Join(draft.ShippingOptions, ", ")
	if shipping == "" {
		shipping = "-"
	}

	session.reply(MsgDraftPreview,
		escapeMarkdown(draft.Title),
		escapeMarkdown(draft.Description),
		formatBaht(draft.Price),
		talad.CategoryPath(draft.CategoryID, draft.SubcategoryID, "th"),
		draft.Province,
		shipping,
		condition,
		len(draft.Images),
	)
}
