package title

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := map[string]struct {
		title string
		want  int
	}{
		"empty":            {"", 0},
		"bare word":        {"ขายของ", 50 + 5},
		"brand with specs": {"iPhone 13 Pro 256GB Sierra Blue like new", 100},
		"short no details": {"Nike shoes", 50 + 15 + 5},
		"symbol noise": {
			"!!!!ด่วน!!!! ขายมือถือราคาถูกมากกก จัดเลย!!!!",
			// length tier +20, digits none, no brand, symbols -10
			50 + 20 - 10,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.title))
		})
	}
}

func TestAnalyzeClamped(t *testing.T) {
	assert.GreaterOrEqual(t, Analyze(strings.Repeat("!", 200)), 0)
	assert.LessOrEqual(t, Analyze("iPhone 13 Pro 256GB มือสอง สภาพดีมาก"), 100)
}

func TestDetectIssues(t *testing.T) {
	tests := map[string]struct {
		title string
		want  []IssueType
	}{
		"fine":           {"iPhone 13 Pro 256GB มือสอง", nil},
		"too short":      {"มือถือ", []IssueType{IssueTooShort}},
		"too long":       {strings.Repeat("กขค ", 40), []IssueType{IssueTooLong}},
		"repeated chars": {"ขายด่วนมากกกกกก iPhone", []IssueType{IssueSpam}},
		"spam phrase":    {"โปรโมชั่น ลดราคา มือถือราคาถูก", []IssueType{IssueSpam}},
		"short and spammy": {
			"aaaaa",
			[]IssueType{IssueTooShort, IssueSpam},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			issues := DetectIssues(tt.title)
			var types []IssueType
			for _, issue := range issues {
				types = append(types, issue.Type)
			}
			assert.Equal(t, tt.want, types)
		})
	}
}

func TestValidate(t *testing.T) {
	good := Validate("iPhone 13 Pro 256GB Sierra Blue like new")
	assert.True(t, good.IsValid)
	assert.GreaterOrEqual(t, good.Score, 80)

	bad := Validate("")
	assert.False(t, bad.IsValid)
	assert.Equal(t, 0, bad.Score)
	assert.NotEmpty(t, bad.QuickFeedback.TH)
	assert.NotEmpty(t, bad.QuickFeedback.EN)
}

func TestSuggestWithTemplate(t *testing.T) {
	analysis := Suggest(Input{
		CategoryID:   3,
		CurrentTitle: "ขาย iPhone 256GB มือสอง",
		UserInputs: map[string]string{
			"model": "iPhone 13 Pro",
			"color": "สีน้ำเงิน",
		},
	})

	require.Len(t, analysis.Suggestions, 3)

	// Sorted by score, best first.
	for i := 1; i < len(analysis.Suggestions); i++ {
		assert.GreaterOrEqual(t,
			analysis.Suggestions[i-1].TitleScore,
			analysis.Suggestions[i].TitleScore)
	}

	// brand, storage and condition are detectable from the current
	// title; model and color were supplied. Nothing critical is missing.
	for _, m := range analysis.Suggestions[0].MissingAttributes {
		assert.NotEqual(t, ImportanceCritical, m.Importance)
	}

	for _, s := range analysis.Suggestions {
		assert.NotEmpty(t, s.SuggestedTitle)
		assert.NotEmpty(t, s.BuyerFocusHint.TH)
	}
}

func TestSuggestWithoutTemplate(t *testing.T) {
	analysis := Suggest(Input{
		CategoryID:   99,
		CurrentTitle: "ของสะสมหายาก สภาพดี",
	})

	require.Len(t, analysis.Suggestions, 1)
	assert.Equal(t, 50, analysis.Suggestions[0].TitleScore)
	assert.NotEmpty(t, analysis.Suggestions[0].SuggestedTitle)
}

func TestSuggestEmptyInput(t *testing.T) {
	analysis := Suggest(Input{CategoryID: 3})

	assert.Equal(t, 0, analysis.CurrentScore)
	require.NotEmpty(t, analysis.Suggestions)
	// With nothing detected the builder falls back to a usable default.
	assert.Equal(t, fallbackTitle, analysis.Suggestions[0].SuggestedTitle)

	var missing []string
	for _, m := range analysis.Suggestions[0].MissingAttributes {
		if m.Importance == ImportanceCritical {
			missing = append(missing, m.Attribute)
		}
	}
	assert.Equal(t, []string{"brand", "model", "storage"}, missing)
}

func TestDetectAttributes(t *testing.T) {
	detected := detectAttributes("Honda Civic 2020 40,000km เกียร์ออโต้", nil, nil)

	assert.Equal(t, "honda", detected["brand"])
	assert.Equal(t, "2020", detected["year"])
	assert.Contains(t, detected, "mileage")
}

func TestDetectAttributesSourcePrecedence(t *testing.T) {
	detected := detectAttributes(
		"iPhone 128GB",
		map[string]string{"storage": "256GB"},
		map[string]string{"storage": "512GB", "color": "black"},
	)

	// Upstream detection wins over form input, which wins over the title.
	assert.Equal(t, "256GB", detected["storage"])
	assert.Equal(t, "black", detected["color"])
}

func TestBuildTitleStyles(t *testing.T) {
	template := TemplateForCategory(3)
	require.NotNil(t, template)

	detected := map[string]string{
		"brand":     "iPhone",
		"model":     "13 Pro",
		"storage":   "256GB",
		"color":     "สีน้ำเงิน",
		"condition": "มือสอง",
		"warranty":  "ประกันศูนย์",
	}

	concise := buildTitle(detected, template, styleConcise)
	complete := buildTitle(detected, template, styleComplete)
	detailed := buildTitle(detected, template, styleDetailed)

	assert.Equal(t, "iPhone 13 Pro 256GB", concise)
	assert.Equal(t, "iPhone 13 Pro 256GB สีน้ำเงิน มือสอง", complete)
	assert.Equal(t, "iPhone 13 Pro 256GB สีน้ำเงิน มือสอง ประกันศูนย์", detailed)
}

func TestImproveGenericTitle(t *testing.T) {
	assert.Equal(t, fallbackTitle+" - กรุณาใส่รายละเอียด", improveGenericTitle("ของ"))
	assert.Equal(t, "Gaming chair", improveGenericTitle("gaming chair!!!"))
}
