package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	albumBufferTimeout = 2 * time.Second
	maxPhotosPerDraft  = 10
)

// handlePhotoMessage buffers album photos and processes standalone photos
// immediately. Caller holds the session mutex.
func (b *Bot) handlePhotoMessage(ctx context.Context, session *UserSession, message *tgbotapi.Message) {
	// Telegram sends multiple sizes; last is the largest.
	fileID := message.Photo[len(message.Photo)-1].FileID

	if message.MediaGroupID == "" {
		b.processPhotos(ctx, session, []string{fileID})
		return
	}

	buffer := session.albumBuffer
	if buffer == nil || buffer.MediaGroupID != message.MediaGroupID {
		// A different album was in flight; process what we have.
		if buffer != nil && len(buffer.FileIDs) > 0 {
			if buffer.Timer != nil {
				buffer.Timer.Stop()
			}
			b.processPhotos(ctx, session, buffer.FileIDs)
		}
		buffer = &AlbumBuffer{MediaGroupID: message.MediaGroupID}
		session.albumBuffer = buffer
	}

	if len(buffer.FileIDs) < maxPhotosPerDraft {
		buffer.FileIDs = append(buffer.FileIDs, fileID)
	}

	if buffer.Timer != nil {
		buffer.Timer.Stop()
	}
	captured := buffer
	buffer.Timer = time.AfterFunc(albumBufferTimeout, func() {
		defer session.lock()()
		if session.albumBuffer != captured {
			return
		}
		session.albumBuffer = nil
		b.processPhotos(ctx, session, captured.FileIDs)
	})
}

// processPhotos downloads and analyzes a batch of photos, then folds the
// result into the draft. Caller holds the session mutex.
func (b *Bot) processPhotos(ctx context.Context, session *UserSession, fileIDs []string) {
	session.reply(MsgAnalyzingPhotos)

	images := make([][]byte, len(fileIDs))
	g, _ := errgroup.WithContext(ctx)
	for i, fileID := range fileIDs {
		g.Go(func() error {
			data, err := downloadFileID(b.tg.GetFileDirectURL, fileID)
			if err != nil {
				return err
			}
			images[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		session.replyWithError(err)
		return
	}

	result, err := b.analyzer.AnalyzeImages(ctx, images)
	if err != nil {
		session.replyWithError(err)
		return
	}

	isNewDraft := session.draft == nil
	draft := session.ensureDraft()

	for _, fileID := range fileIDs {
		if len(draft.Images) >= maxPhotosPerDraft {
			break
		}
		draft.Images = append(draft.Images, fileID)
		draft.ImageQualityScores = append(draft.ImageQualityScores, result.Item.QualityScore)
	}

	if isNewDraft {
		draft.Title = result.Item.Title
		draft.Description = result.Item.Description
		if draft.Details == nil {
			draft.Details = map[string]any{}
		}
		if result.Item.Brand != "" {
			draft.Details["brand"] = result.Item.Brand
		}
		if result.Item.Model != "" {
			draft.Details["model"] = result.Item.Model
		}

		session.reply(MsgPhotoAnalyzed,
			escapeMarkdown(draft.Title),
			escapeMarkdown(draft.Description),
			len(draft.Images),
			result.Item.QualityScore,
		)

		session.flowState = FlowAwaitingPrice
		if draft.Title == "" {
			session.flowState = FlowAwaitingTitle
		}
		b.saveDraft(session)
		b.promptNextField(session)
		return
	}

	log.Debug().Int("count", len(fileIDs)).Int64("userId", session.userId).Msg("photos added to draft")
	b.saveDraft(session)
	session.reply(MsgPhotoAdded, len(draft.Images))
}
