package bot

import (
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/kritsada/taladnat-bot/readiness"
)

// DraftFlowState tracks which field the draft flow is waiting for.
type DraftFlowState int

const (
	FlowNone DraftFlowState = iota
	FlowAwaitingTitle
	FlowAwaitingDescription
	FlowAwaitingPrice
	FlowAwaitingCategory
	FlowAwaitingSubcategory
	FlowAwaitingProvince
	FlowAwaitingShipping
	FlowAwaitingCondition
	FlowReady
)

func (s DraftFlowState) String() string {
	switch s {
	case FlowNone:
		return "none"
	case FlowAwaitingTitle:
		return "awaiting_title"
	case FlowAwaitingDescription:
		return "awaiting_description"
	case FlowAwaitingPrice:
		return "awaiting_price"
	case FlowAwaitingCategory:
		return "awaiting_category"
	case FlowAwaitingSubcategory:
		return "awaiting_subcategory"
	case FlowAwaitingProvince:
		return "awaiting_province"
	case FlowAwaitingShipping:
		return "awaiting_shipping"
	case FlowAwaitingCondition:
		return "awaiting_condition"
	case FlowReady:
		return "ready"
	}
	return "unknown"
}

// MessageSender abstracts the ability to send Telegram messages.
// This interface decouples UserSession from the full Bot struct,
// improving testability.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// AlbumBuffer collects photos from a Telegram album (MediaGroup) before
// processing them together.
type AlbumBuffer struct {
	MediaGroupID string
	FileIDs      []string
	Timer        *time.Timer
}

// UserSession holds per-user draft state. Handlers take the session mutex
// through the exported accessors; handler internals run with it held.
type UserSession struct {
	userId int64
	sender MessageSender
	mu     sync.Mutex

	draft     *readiness.ListingData
	flowState DraftFlowState

	albumBuffer *AlbumBuffer
}

func (s *UserSession) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

// reply sends a Markdown-formatted, dedented message to the user.
func (s *UserSession) reply(text string, a ...any) {
	msg := tgbotapi.NewMessage(s.userId, formatReplyText(text, a...))
	msg.ParseMode = tgbotapi.ModeMarkdown
	s.replyWithMessage(msg)
}

func (s *UserSession) replyWithMessage(msg tgbotapi.MessageConfig) {
	if _, err := s.sender.Send(msg); err != nil {
		log.Error().Err(err).Int64("userId", s.userId).Msg("failed to send message")
	}
}

func (s *UserSession) replyWithError(err error) {
	log.Error().Stack().Err(err).Send()
	s.reply(MsgUnexpectedErr, err)
}

// replyAndRemoveCustomKeyboard sends a message and clears any reply keyboard.
func (s *UserSession) replyAndRemoveCustomKeyboard(text string, a ...any) {
	msg := tgbotapi.NewMessage(s.userId, formatReplyText(text, a...))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	s.replyWithMessage(msg)
}

// reset clears the draft and flow state.
func (s *UserSession) reset() {
	s.draft = nil
	s.flowState = FlowNone
	if s.albumBuffer != nil && s.albumBuffer.Timer != nil {
		s.albumBuffer.Timer.Stop()
	}
	s.albumBuffer = nil
}

// ensureDraft returns the current draft, creating an empty one if needed.
func (s *UserSession) ensureDraft() *readiness.ListingData {
	if s.draft == nil {
		s.draft = &readiness.ListingData{}
	}
	return s.draft
}

// BotState holds all user sessions.
type BotState struct {
	bot      *Bot
	mu       sync.Mutex
	sessions map[int64]*UserSession
}

func (b *Bot) NewBotState() BotState {
	return BotState{
		bot:      b,
		sessions: make(map[int64]*UserSession),
	}
}

func (bs *BotState) getUserSession(userId int64) *UserSession {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	if session, ok := bs.sessions[userId]; ok {
		return session
	}

	session := &UserSession{
		userId: userId,
		sender: bs.bot.tg,
	}

	// Restore a persisted draft so the flow survives restarts.
	if bs.bot.store != nil {
		draft, err := bs.bot.store.GetDraft(userId)
		if err != nil {
			log.Warn().Err(err).Int64("userId", userId).Msg("failed to load stored draft")
		} else if draft != nil {
			session.draft = draft
			session.flowState = resumeFlowState(draft)
			log.Info().Int64("userId", userId).Str("state", session.flowState.String()).Msg("restored draft from database")
		}
	}

	bs.sessions[userId] = session
	return session
}

// resumeFlowState infers where a restored draft left off.
func resumeFlowState(draft *readiness.ListingData) DraftFlowState {
	switch {
	case draft.Title == "":
		return FlowAwaitingTitle
	case draft.Description == "":
		return FlowAwaitingDescription
	case draft.Price == 0:
		return FlowAwaitingPrice
	case draft.CategoryID == 0:
		return FlowAwaitingCategory
	case draft.Province == "":
		return FlowAwaitingProvince
	case len(draft.ShippingOptions) == 0:
		return FlowAwaitingShipping
	case draft.Condition == "":
		return FlowAwaitingCondition
	}
	return FlowReady
}
