package llm

import "context"

// ItemDescription contains structured information about an item for selling.
type ItemDescription struct {
	Title        string  `json:"title"`         // Short title suitable for a marketplace listing
	Description  string  `json:"description"`   // Longer description with details, in Thai
	Brand        string  `json:"brand"`         // Brand name if identifiable
	Model        string  `json:"model"`         // Model name/number if identifiable
	QualityScore float64 `json:"quality_score"` // Photo quality 0-100
}

// Usage contains token usage and cost information.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
	CostUSD      float64
}

// AnalysisResult contains the item description and usage information.
type AnalysisResult struct {
	Item  *ItemDescription
	Usage Usage
}

// Analyzer can analyze listing photos and generate item descriptions.
type Analyzer interface {
	// AnalyzeImage takes image data and returns a description suitable for selling.
	AnalyzeImage(ctx context.Context, imageData []byte, mimeType string) (*AnalysisResult, error)
	// AnalyzeImages analyzes multiple images together for better context in album photos.
	AnalyzeImages(ctx context.Context, images [][]byte) (*AnalysisResult, error)
}
