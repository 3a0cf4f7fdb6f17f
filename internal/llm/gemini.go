// Package llm wraps the Gemini API for listing photo analysis.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const geminiModel = "gemini-3-flash-preview"

// Gemini pricing (per million tokens)
const (
	geminiInputPricePerMillion  = 0.50 // $0.50 per 1M input tokens (text/image/video)
	geminiOutputPricePerMillion = 3.00 // $3.00 per 1M output tokens (including thinking)
)

const geminiPrompt = `Analyze this image and identify the item for selling on a Thai secondhand marketplace.

Respond in JSON format with these fields:
- title: A short, descriptive title suitable for a marketplace listing. Include brand and model if visible. Thai or English is fine.
- description: A longer description with relevant details about the item (2-3 sentences, in Thai)
- brand: The brand name if identifiable (empty string if unknown)
- model: The model name or number if identifiable (empty string if unknown)
- quality_score: A number 0-100 rating how well this photo presents the item for sale. Judge lighting, focus, framing and background clutter. 90+ means bright, sharp, well framed on a clean background; below 40 means dark, blurry or cluttered.

Example response:
{"title": "iPhone 13 Pro 256GB Sierra Blue", "description": "ไอโฟน 13 โปร ความจุ 256GB สีฟ้าเซียร์รา สภาพดี ใช้งานปกติทุกฟังก์ชัน", "brand": "Apple", "model": "iPhone 13 Pro", "quality_score": 85}

Respond ONLY with the JSON object, no markdown or other text.`

const geminiMultiImagePrompt = `Analyze these images showing the same item from different angles and identify it for selling on a Thai secondhand marketplace.

The images show the same item - use all images together to get a complete understanding of the item's condition, brand, model, and features.

Respond in JSON format with these fields:
- title: A short, descriptive title suitable for a marketplace listing. Include brand and model if visible. Thai or English is fine.
- description: A longer description with relevant details about the item (2-3 sentences, in Thai). Mention notable features or condition details visible across the images.
- brand: The brand name if identifiable (empty string if unknown)
- model: The model name or number if identifiable (empty string if unknown)
- quality_score: A number 0-100 rating the average presentation quality of the photos. Judge lighting, focus, framing and background clutter.

Example response:
{"title": "iPhone 13 Pro 256GB Sierra Blue", "description": "ไอโฟน 13 โปร ความจุ 256GB สีฟ้าเซียร์รา สภาพดีมาก ไม่มีรอยตามตัวเครื่อง อุปกรณ์ครบกล่อง", "brand": "Apple", "model": "iPhone 13 Pro", "quality_score": 85}

Respond ONLY with the JSON object, no markdown or other text.`

// GeminiAnalyzer uses Google's Gemini API for listing photo analysis.
type GeminiAnalyzer struct {
	client *genai.Client
}

// NewGeminiAnalyzer creates a new Gemini-based analyzer.
// It uses the GEMINI_API_KEY environment variable for authentication.
func NewGeminiAnalyzer(ctx context.Context) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAnalyzer{client: client}, nil
}

// AnalyzeImage implements the Analyzer interface using Gemini.
// It delegates to AnalyzeImages with a single-element slice.
func (g *GeminiAnalyzer) AnalyzeImage(ctx context.Context, imageData []byte, mimeType string) (*AnalysisResult, error) {
	return g.AnalyzeImages(ctx, [][]byte{imageData})
}

// AnalyzeImages analyzes one or more images together.
// For single images, uses the single-image prompt. For multiple images,
// uses the multi-image prompt for better context from different angles.
func (g *GeminiAnalyzer) AnalyzeImages(ctx context.Context, images [][]byte) (*AnalysisResult, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images provided")
	}

	// Limit to 10 images (Telegram's album limit)
	if len(images) > 10 {
		images = images[:10]
	}

	prompt := geminiPrompt
	if len(images) > 1 {
		prompt = geminiMultiImagePrompt
	}

	// Build parts: prompt first, then all images
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	for _, imgData := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: imgData, MIMEType: "image/jpeg"},
		})
	}

	return g.executeVisionRequest(ctx, parts, len(images))
}

// executeVisionRequest executes the Gemini API call and parses the response.
func (g *GeminiAnalyzer) executeVisionRequest(ctx context.Context, parts []*genai.Part, imageCount int) (*AnalysisResult, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini")
	}

	item, err := parseItemDescription(result.Text())
	if err != nil {
		return nil, err
	}

	usage := Usage{}
	if result.UsageMetadata != nil {
		usage.InputTokens = int64(result.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int64(result.UsageMetadata.TotalTokenCount)
		usage.CostUSD = calculateGeminiCost(usage.InputTokens, usage.OutputTokens)
	}

	log.Info().
		Str("model", geminiModel).
		Int("imageCount", imageCount).
		Int64("inputTokens", usage.InputTokens).
		Int64("outputTokens", usage.OutputTokens).
		Float64("costUSD", usage.CostUSD).
		Msg("vision llm call")

	return &AnalysisResult{Item: item, Usage: usage}, nil
}

func calculateGeminiCost(inputTokens, outputTokens int64) float64 {
	inputCost := float64(inputTokens) / 1_000_000 * geminiInputPricePerMillion
	outputCost := float64(outputTokens) / 1_000_000 * geminiOutputPricePerMillion
	return inputCost + outputCost
}

// extractJSONObject extracts a JSON object from text that may contain markdown
// code blocks or other formatting. Returns the extracted JSON string or an error.
func extractJSONObject(text string) (string, error) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response: %s", text)
	}
	return text[start : end+1], nil
}

func parseItemDescription(text string) (*ItemDescription, error) {
	jsonStr, err := extractJSONObject(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	var desc ItemDescription
	if err := json.Unmarshal([]byte(jsonStr), &desc); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w (response: %s)", err, jsonStr)
	}

	// The model occasionally returns quality as a 0-1 fraction.
	if desc.QualityScore > 0 && desc.QualityScore <= 1 {
		desc.QualityScore *= 100
	}
	if desc.QualityScore < 0 {
		desc.QualityScore = 0
	}
	if desc.QualityScore > 100 {
		desc.QualityScore = 100
	}

	return &desc, nil
}
