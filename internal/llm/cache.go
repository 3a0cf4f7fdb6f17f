package llm

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/kritsada/taladnat-bot/internal/storage"
	"github.com/rs/zerolog/log"
)

// CachedAnalyzer wraps an Analyzer with SQLite caching.
type CachedAnalyzer struct {
	inner Analyzer
	store storage.Store
}

// NewCachedAnalyzer creates a cached analyzer.
func NewCachedAnalyzer(inner Analyzer, store storage.Store) *CachedAnalyzer {
	return &CachedAnalyzer{inner: inner, store: store}
}

// hashImages creates a SHA256 hash from image data.
// Includes length prefix for each image to prevent boundary collisions.
func hashImages(images [][]byte) string {
	h := sha256.New()
	for _, img := range images {
		binary.Write(h, binary.LittleEndian, int64(len(img)))
		h.Write(img)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// AnalyzeImage implements the Analyzer interface with caching.
func (c *CachedAnalyzer) AnalyzeImage(ctx context.Context, imageData []byte, mimeType string) (*AnalysisResult, error) {
	return c.AnalyzeImages(ctx, [][]byte{imageData})
}

// AnalyzeImages implements the Analyzer interface with caching.
func (c *CachedAnalyzer) AnalyzeImages(ctx context.Context, images [][]byte) (*AnalysisResult, error) {
	hash := hashImages(images)

	if c.store != nil {
		cached, err := c.store.GetAnalysisCache(hash)
		if err != nil {
			log.Warn().Err(err).Msg("failed to check analysis cache")
		} else if cached != nil {
			log.Debug().Str("hash", hash[:16]).Msg("analysis cache hit")
			return &AnalysisResult{
				Item: &ItemDescription{
					Title:        cached.Title,
					Description:  cached.Description,
					Brand:        cached.Brand,
					Model:        cached.Model,
					QualityScore: cached.QualityScore,
				},
				// Zero usage for cached result
				Usage: Usage{},
			}, nil
		}
	}

	result, err := c.inner.AnalyzeImages(ctx, images)
	if err != nil {
		return nil, err
	}

	if c.store != nil && result.Item != nil {
		entry := &storage.AnalysisCacheEntry{
			Title:        result.Item.Title,
			Description:  result.Item.Description,
			Brand:        result.Item.Brand,
			Model:        result.Item.Model,
			QualityScore: result.Item.QualityScore,
		}
		if err := c.store.SetAnalysisCache(hash, entry); err != nil {
			log.Warn().Err(err).Msg("failed to cache analysis result")
		}
	}

	return result, nil
}
