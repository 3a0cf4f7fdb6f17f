package title

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kritsada/taladnat-bot/bilingual"
)

// Importance of a missing attribute.
type Importance string

const (
	ImportanceCritical   Importance = "critical"
	ImportanceImportant  Importance = "important"
	ImportanceNiceToHave Importance = "nice_to_have"
)

// MissingAttribute reports an attribute buyers look for that the title
// does not carry.
type MissingAttribute struct {
	Attribute  string         `json:"attribute"`
	Importance Importance     `json:"importance"`
	Example    bilingual.Text `json:"example"`
	Impact     bilingual.Text `json:"impact"`
}

// Suggestion is one proposed title with its supporting analysis.
type Suggestion struct {
	SuggestedTitle    string             `json:"suggested_title"`
	MissingAttributes []MissingAttribute `json:"missing_attributes"`
	BuyerFocusHint    bilingual.Text     `json:"buyer_focus_hint"`
	TitleScore        int                `json:"title_score"`
	Improvements      []string           `json:"improvements"`
}

// Analysis is the full result of a title suggestion run.
type Analysis struct {
	CurrentTitle string       `json:"current_title,omitempty"`
	CurrentScore int          `json:"current_score"`
	Issues       []Issue      `json:"issues"`
	Suggestions  []Suggestion `json:"suggestions"`
}

// Input for Suggest. DetectedAttributes come from upstream analysis
// (e.g. photo recognition); UserInputs from the listing form. Both are
// optional.
type Input struct {
	CategoryID         int
	SubcategoryID      int
	CurrentTitle       string
	DetectedAttributes map[string]string
	UserInputs         map[string]string
}

const fallbackTitle = "สินค้าคุณภาพดี"

var (
	digitRe = regexp.MustCompile(`\d+`)
	specRe  = regexp.MustCompile(`(?i)\d+\s*(gb|tb|km|ตรม)`)

	// Attribute value patterns matched against the lowercased title.
	// Ordered so detection is deterministic.
	attributePatterns = []struct {
		name string
		re   *regexp.Regexp
	}{
		{"storage", regexp.MustCompile(`(?i)(\d+)(gb|tb)`)},
		{"ram", regexp.MustCompile(`(?i)(\d+)gb\s*ram`)},
		{"year", regexp.MustCompile(`(19|20)\d{2}`)},
		{"mileage", regexp.MustCompile(`(?i)(\d+[,.]?\d*)\s*k?m`)},
		{"bedrooms", regexp.MustCompile(`(?i)(\d+)\s*(ห้องนอน|br|bedroom)`)},
		{"area", regexp.MustCompile(`(?i)(\d+)\s*(ตรม|sqm)`)},
		{"size", regexp.MustCompile(`(?i)size\s*(\d+)`)},
		{"condition", regexp.MustCompile(`(?i)(มือสอง|มือ1|ใหม่|new|used|like\s*new)`)},
	}

	// Brands recognized in free-form titles.
	knownBrands = []string{
		"iphone", "samsung", "huawei", "oppo", "vivo", "xiaomi",
		"honda", "toyota", "mazda", "bmw", "benz",
		"nike", "adidas", "lv", "gucci", "chanel",
	}
)

// Suggest analyzes the current title and builds up to three ranked
// suggestions from the category template and any attributes already
// known. Pure and synchronous; always returns a complete analysis.
func Suggest(input Input) Analysis {
	analysis := Analysis{
		CurrentTitle: input.CurrentTitle,
		CurrentScore: Analyze(input.CurrentTitle),
		Issues:       DetectIssues(input.CurrentTitle),
	}

	template := TemplateForCategory(input.CategoryID)
	if template == nil {
		analysis.Suggestions = []Suggestion{{
			SuggestedTitle: improveGenericTitle(input.CurrentTitle),
			BuyerFocusHint: bilingual.Text{
				TH: "ใส่รายละเอียดที่สำคัญให้ชัดเจน",
				EN: "Include clear, important details",
			},
			TitleScore: 50,
		}}
		return analysis
	}

	detected := detectAttributes(input.CurrentTitle, input.DetectedAttributes, input.UserInputs)
	missing := findMissingAttributes(detected, template)
	hint := buyerHintForCategory(template.CategoryID)

	var suggestions []Suggestion
	for _, style := range []variantStyle{styleComplete, styleConcise, styleDetailed} {
		built := buildTitle(detected, template, style)
		suggestions = append(suggestions, Suggestion{
			SuggestedTitle:    built,
			MissingAttributes: missing,
			BuyerFocusHint:    hint,
			TitleScore:        Analyze(built),
			Improvements:      improvements(input.CurrentTitle, built),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TitleScore > suggestions[j].TitleScore
	})
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	analysis.Suggestions = suggestions

	return analysis
}

// detectAttributes merges attribute values from upstream detection, the
// listing form and the current title itself. Earlier sources win.
func detectAttributes(currentTitle string, detectedAttrs, userInputs map[string]string) map[string]string {
	attributes := map[string]string{}

	for k, v := range detectedAttrs {
		attributes[k] = v
	}
	for k, v := range userInputs {
		if _, ok := attributes[k]; !ok {
			attributes[k] = v
		}
	}

	lower := strings.ToLower(currentTitle)

	for _, p := range attributePatterns {
		if _, ok := attributes[p.name]; ok {
			continue
		}
		if m := p.re.FindString(lower); m != "" {
			attributes[p.name] = m
		}
	}

	if _, ok := attributes["brand"]; !ok {
		for _, brand := range knownBrands {
			if strings.Contains(lower, brand) {
				attributes["brand"] = brand
				break
			}
		}
	}

	return attributes
}

func findMissingAttributes(detected map[string]string, template *Template) []MissingAttribute {
	var missing []MissingAttribute

	for _, attr := range template.CriticalAttributes {
		if _, ok := detected[attr]; !ok {
			info := infoForAttribute(attr)
			missing = append(missing, MissingAttribute{
				Attribute:  attr,
				Importance: ImportanceCritical,
				Example:    info.Example,
				Impact:     info.Impact,
			})
		}
	}
	for _, attr := range template.ImportantAttributes {
		if _, ok := detected[attr]; !ok {
			info := infoForAttribute(attr)
			missing = append(missing, MissingAttribute{
				Attribute:  attr,
				Importance: ImportanceImportant,
				Example:    info.Example,
				Impact:     info.Impact,
			})
		}
	}

	return missing
}

type variantStyle int

const (
	styleComplete variantStyle = iota
	styleConcise
	styleDetailed
)

// buildTitle concatenates detected attribute values in template order.
// Concise keeps critical attributes only, detailed adds optional ones.
func buildTitle(detected map[string]string, template *Template, style variantStyle) string {
	var parts []string

	appendAttrs := func(attrs []string) {
		for _, attr := range attrs {
			if v := detected[attr]; v != "" {
				parts = append(parts, v)
			}
		}
	}

	appendAttrs(template.CriticalAttributes)
	if style == styleComplete || style == styleDetailed {
		appendAttrs(template.ImportantAttributes)
	}
	if style == styleDetailed {
		appendAttrs(template.OptionalAttributes)
	}

	built := strings.Join(parts, " ")

	if style == styleConcise && utf8.RuneCountInString(built) > 80 {
		runes := []rune(built)
		built = string(runes[:77]) + "..."
	}

	if built == "" {
		return fallbackTitle
	}
	return built
}

func improvements(currentTitle, suggestedTitle string) []string {
	var out []string

	if utf8.RuneCountInString(suggestedTitle) > utf8.RuneCountInString(currentTitle) {
		out = append(out, "Added more details")
	}
	if currentTitle == "" && suggestedTitle != "" {
		out = append(out, "Created complete title")
	}
	if !specRe.MatchString(currentTitle) && specRe.MatchString(suggestedTitle) {
		out = append(out, "Added specifications")
	}

	return out
}

var excessPunctRe = regexp.MustCompile(`[!@#$%^&*()]{2,}`)

// improveGenericTitle is the fallback for categories without a
// template: trim, strip punctuation bursts and capitalize.
func improveGenericTitle(title string) string {
	if utf8.RuneCountInString(title) < 5 {
		return fallbackTitle + " - กรุณาใส่รายละเอียด"
	}

	improved := strings.TrimSpace(title)
	improved = excessPunctRe.ReplaceAllString(improved, "")

	r, size := utf8.DecodeRuneInString(improved)
	if r != utf8.RuneError {
		improved = string(unicode.ToUpper(r)) + improved[size:]
	}

	return improved
}
