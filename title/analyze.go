package title

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kritsada/taladnat-bot/bilingual"
)

// IssueType classifies a title problem.
type IssueType string

const (
	IssueTooShort IssueType = "too_short"
	IssueTooLong  IssueType = "too_long"
	IssueSpam     IssueType = "spam"
)

// Severity of a title issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a detected problem with a title.
type Issue struct {
	Type     IssueType      `json:"type"`
	Severity Severity       `json:"severity"`
	Message  bilingual.Text `json:"message"`
}

// Validation is the result of the quick title gate.
type Validation struct {
	IsValid       bool           `json:"is_valid"`
	Score         int            `json:"score"`
	QuickFeedback bilingual.Text `json:"quick_feedback"`
}

var (
	symbolRe = regexp.MustCompile(`[!@#$%^&*()]`)
	// Brands known to pull search traffic. Checked as substrings of the
	// lowercased title.
	scoringBrands = []string{"iphone", "samsung", "toyota", "honda", "nike", "adidas", "lv", "gucci"}
	// Promotional phrases and bursts of punctuation that read as spam.
	spamPhraseRe = regexp.MustCompile(`!{3,}|ด่วน|โปรโมชั่น|ลดราคา`)
)

// Analyze scores a title 0-100. A missing title is 0; otherwise the
// score starts at 50 and moves with length, specs, brand recognition and
// symbol noise.
func Analyze(title string) int {
	if title == "" {
		return 0
	}

	score := 50
	length := utf8.RuneCountInString(title)

	switch {
	case length >= 20 && length <= 60:
		score += 20
	case length >= 15 && length <= 80:
		score += 10
	}

	if digitRe.MatchString(title) {
		score += 10
	}

	lower := strings.ToLower(title)
	for _, brand := range scoringBrands {
		if strings.Contains(lower, brand) {
			score += 15
			break
		}
	}

	switch n := len(symbolRe.FindAllString(title, -1)); {
	case n == 0:
		score += 5
	case n > 3:
		score -= 10
	}

	return min(max(score, 0), 100)
}

// DetectIssues reports problems with a title: too short, too long, or
// spam patterns (repeated characters, promotional phrases).
func DetectIssues(title string) []Issue {
	var issues []Issue

	if utf8.RuneCountInString(title) < 10 {
		issues = append(issues, Issue{
			Type:     IssueTooShort,
			Severity: SeverityError,
			Message: bilingual.Text{
				TH: "ชื่อสินค้าสั้นเกินไป ควรยาว 15-60 ตัวอักษร",
				EN: "Title too short - should be 15-60 characters",
			},
		})
	}

	if utf8.RuneCountInString(title) > 100 {
		issues = append(issues, Issue{
			Type:     IssueTooLong,
			Severity: SeverityWarning,
			Message: bilingual.Text{
				TH: "ชื่อสินค้ายาวเกินไป อาจถูกตัดในผลการค้นหา",
				EN: "Title too long - may be truncated in search",
			},
		})
	}

	if hasRepeatedRun(title, 5) || spamPhraseRe.MatchString(title) {
		issues = append(issues, Issue{
			Type:     IssueSpam,
			Severity: SeverityWarning,
			Message: bilingual.Text{
				TH: "หลีกเลี่ยงคำซ้ำๆ หรืออักขระพิเศษมากเกินไป",
				EN: "Avoid repetitive text or excessive special characters",
			},
		})
	}

	return issues
}

// Validate is a quick synchronous gate for live title feedback.
func Validate(title string) Validation {
	score := Analyze(title)

	switch {
	case score >= 80:
		return Validation{
			IsValid: true,
			Score:   score,
			QuickFeedback: bilingual.Text{
				TH: "✅ ชื่อสินค้าดีมาก!",
				EN: "✅ Excellent title!",
			},
		}
	case score >= 60:
		return Validation{
			IsValid: true,
			Score:   score,
			QuickFeedback: bilingual.Text{
				TH: "👍 ชื่อสินค้าดี อาจเพิ่มรายละเอียดเล็กน้อย",
				EN: "👍 Good title - consider adding more details",
			},
		}
	case score >= 40:
		return Validation{
			IsValid: true,
			Score:   score,
			QuickFeedback: bilingual.Text{
				TH: "⚠️ ควรเพิ่มรายละเอียดเพื่อขายดีขึ้น",
				EN: "⚠️ Should add more details for better sales",
			},
		}
	default:
		return Validation{
			IsValid: false,
			Score:   score,
			QuickFeedback: bilingual.Text{
				TH: "❌ ชื่อสินค้าต้องใส่รายละเอียดเพิ่ม",
				EN: "❌ Title needs more details",
			},
		}
	}
}

func hasRepeatedRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, r := range s {
		if r == prev {
			count++
		} else {
			prev = r
			count = 1
		}
		if count >= n {
			return true
		}
	}
	return false
}
