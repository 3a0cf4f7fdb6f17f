package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/kritsada/taladnat-bot/talad"
	"github.com/kritsada/taladnat-bot/title"
)

// promptNextField asks for the next missing draft field based on flow state.
// Caller holds the session mutex.
func (b *Bot) promptNextField(session *UserSession) {
	switch session.flowState {
	case FlowAwaitingTitle:
		session.reply(MsgAskTitle)
	case FlowAwaitingDescription:
		session.reply(MsgAskDescription)
	case FlowAwaitingPrice:
		session.reply(MsgAskPrice)
	case FlowAwaitingCategory:
		msg := tgbotapi.NewMessage(session.userId, MsgAskCategory)
		msg.ReplyMarkup = makeCategoryKeyboard()
		session.replyWithMessage(msg)
	case FlowAwaitingSubcategory:
		cat, ok := talad.FindCategory(session.draft.CategoryID)
		if !ok || len(cat.Subcategories) == 0 {
			session.flowState = FlowAwaitingProvince
			b.promptNextField(session)
			return
		}
		msg := tgbotapi.NewMessage(session.userId, MsgAskSubcategory)
		msg.ReplyMarkup = makeSubcategoryKeyboard(cat)
		session.replyWithMessage(msg)
	case FlowAwaitingProvince:
		session.reply(MsgAskProvince)
	case FlowAwaitingShipping:
		msg := tgbotapi.NewMessage(session.userId, MsgAskShipping)
		msg.ReplyMarkup = makeShippingKeyboard(session.draft.ShippingOptions)
		session.replyWithMessage(msg)
	case FlowAwaitingCondition:
		msg := tgbotapi.NewMessage(session.userId, MsgAskCondition)
		msg.ReplyMarkup = makeConditionKeyboard()
		session.replyWithMessage(msg)
	case FlowReady:
		b.saveDraft(session)
		session.reply(MsgDraftReady)
	}
}

// handleDraftInput consumes a text message for the current flow state.
// Returns true if the message was handled. Caller holds the session mutex.
func (b *Bot) handleDraftInput(session *UserSession, text string) bool {
	if session.draft == nil || strings.HasPrefix(text, "/") {
		return false
	}

	text = strings.TrimSpace(text)
	draft := session.draft

	switch session.flowState {
	case FlowAwaitingTitle:
		draft.Title = text
		// Quick feedback on the title right away; the flow continues
		// regardless, /title gives the full analysis.
		session.reply(title.Validate(text).QuickFeedback.TH)
		session.flowState = FlowAwaitingDescription
	case FlowAwaitingDescription:
		draft.Description = text
		session.flowState = FlowAwaitingPrice
	case FlowAwaitingPrice:
		price, err := parsePriceMessage(text)
		if err != nil {
			session.reply(MsgInvalidPrice)
			return true
		}
		draft.Price = price
		session.flowState = FlowAwaitingCategory
	case FlowAwaitingProvince:
		draft.Province = text
		session.flowState = FlowAwaitingShipping
	default:
		return false
	}

	b.saveDraft(session)
	b.promptNextField(session)
	return true
}

// --- Inline keyboards ---

func makeCategoryKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range talad.Categories {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(cat.Name.TH, fmt.Sprintf("cat:%d", cat.ID)),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func makeSubcategoryKeyboard(cat talad.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, sub := range cat.Subcategories {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(sub.Name.TH, fmt.Sprintf("subcat:%d", sub.ID)),
		})
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("ข้าม", "subcat:0"),
	})
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func makeShippingKeyboard(selected []string) tgbotapi.InlineKeyboardMarkup {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, carrier := range shippingCarriers {
		label := carrier
		if chosen[carrier] {
			label = "✅ " + carrier
		}
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, "ship:"+carrier),
		})
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(BtnShippingDone, "ship:done"),
	})
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func makeConditionKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, code := range []string{"new", "like_new", "good", "fair", "poor"} {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(conditionLabels[code], "cond:"+code),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// --- Callback handlers ---

// handleCategorySelection handles cat:<id> callbacks.
// Caller holds the session mutex.
func (b *Bot) handleCategorySelection(session *UserSession, query *tgbotapi.CallbackQuery) {
	if session.draft == nil {
		session.reply(MsgNoDraft)
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(query.Data, "cat:"))
	if err != nil {
		log.Warn().Str("data", query.Data).Msg("bad category callback")
		return
	}

	session.draft.CategoryID = id
	session.draft.SubcategoryID = 0
	session.flowState = FlowAwaitingSubcategory
	b.saveDraft(session)
	b.promptNextField(session)
}

// handleSubcategorySelection handles subcat:<id> callbacks. subcat:0 skips.
// Caller holds the session mutex.
func (b *Bot) handleSubcategorySelection(session *UserSession, query *tgbotapi.CallbackQuery) {
	if session.draft == nil {
		session.reply(MsgNoDraft)
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(query.Data, "subcat:"))
	if err != nil {
		log.Warn().Str("data", query.Data).Msg("bad subcategory callback")
		return
	}

	session.draft.SubcategoryID = id
	session.flowState = FlowAwaitingProvince
	b.saveDraft(session)
	b.promptNextField(session)
}

// handleShippingSelection handles ship:<carrier> toggles and ship:done.
// Caller holds the session mutex.
func (b *Bot) handleShippingSelection(session *UserSession, query *tgbotapi.CallbackQuery) {
	if session.draft == nil {
		session.reply(MsgNoDraft)
		return
	}

	carrier := strings.TrimPrefix(query.Data, "ship:")
	if carrier == "done" {
		session.flowState = FlowAwaitingCondition
		b.saveDraft(session)
		b.promptNextField(session)
		return
	}

	draft := session.draft
	found := false
	for i, s := range draft.ShippingOptions {
		if s == carrier {
			draft.ShippingOptions = append(draft.ShippingOptions[:i], draft.ShippingOptions[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		draft.ShippingOptions = append(draft.ShippingOptions, carrier)
	}

	// Refresh the checkmarks in place.
	if query.Message != nil {
		edit := tgbotapi.NewEditMessageReplyMarkup(
			query.Message.Chat.ID,
			query.Message.MessageID,
			makeShippingKeyboard(draft.ShippingOptions),
		)
		if _, err := b.tg.Request(edit); err != nil {
			log.Warn().Err(err).Msg("failed to update shipping keyboard")
		}
	}
}

// handleConditionSelection handles cond:<code> callbacks.
// Caller holds the session mutex.
func (b *Bot) handleConditionSelection(session *UserSession, query *tgbotapi.CallbackQuery) {
	if session.draft == nil {
		session.reply(MsgNoDraft)
		return
	}

	session.draft.Condition = strings.TrimPrefix(query.Data, "cond:")
	session.flowState = FlowReady
	b.saveDraft(session)
	b.promptNextField(session)
}

// saveDraft persists the current draft, logging on failure.
// Caller holds the session mutex.
func (b *Bot) saveDraft(session *UserSession) {
	if b.store == nil || session.draft == nil {
		return
	}
	if err := b.store.SaveDraft(session.userId, *session.draft); err != nil {
		log.Error().Err(err).Int64("userId", session.userId).Msg("failed to save draft")
	}
}
