package bot

import (
	"fmt"
	"strings"

	"github.com/kritsada/taladnat-bot/carprice"
	"github.com/kritsada/taladnat-bot/readiness"
	"github.com/kritsada/taladnat-bot/title"
)

var priorityEmojis = map[readiness.Priority]string{
	readiness.PriorityCritical: "🚨",
	readiness.PriorityHigh:     "❗",
	readiness.PriorityMedium:   "💡",
	readiness.PriorityLow:      "▫️",
}

// renderEvaluation formats a readiness evaluation as a Telegram Markdown
// report in Thai.
func renderEvaluation(eval readiness.Evaluation) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s *คะแนนความพร้อม: %d/100* (เกรด %s - %s)\n",
		eval.SellGrade.Emoji(), eval.SellScore, eval.SellGrade, eval.SellGrade.Label().TH)
	sb.WriteString(eval.OverallFeedback.TH)
	sb.WriteString("\n\n*คะแนนรายด้าน:*\n")

	s := eval.CategoryScores
	fmt.Fprintf(&sb, "📷 รูปภาพ: %d/%d\n", s.Images, readiness.MaxImageScore)
	fmt.Fprintf(&sb, "📝 รายละเอียด: %d/%d\n", s.Details, readiness.MaxDetailsScore)
	fmt.Fprintf(&sb, "🗂 หมวดหมู่: %d/%d\n", s.Category, readiness.MaxCategoryScore)
	fmt.Fprintf(&sb, "🤝 ความน่าเชื่อถือ: %d/%d\n", s.Trust, readiness.MaxTrustScore)
	fmt.Fprintf(&sb, "📦 การจัดส่ง: %d/%d\n", s.Shipping, readiness.MaxShippingScore)
	fmt.Fprintf(&sb, "🏷 ชื่อประกาศ: %d/%d\n", s.Title, readiness.MaxTitleScore)

	if len(eval.ImprovementTips) > 0 {
		sb.WriteString("\n*สิ่งที่ควรปรับปรุง:*\n")
		for _, tip := range eval.ImprovementTips {
			fmt.Fprintf(&sb, "%s %s", priorityEmojis[tip.Priority], tip.Tip.TH)
			if tip.PointsGain > 0 {
				fmt.Fprintf(&sb, " (+%d คะแนน)", tip.PointsGain)
			}
			sb.WriteString("\n")
		}
	}

	fmt.Fprintf(&sb, "\n👀 ยอดเข้าชมที่คาดไว้: %d-%d ครั้ง\n",
		eval.EstimatedViews.Low, eval.EstimatedViews.High)
	fmt.Fprintf(&sb, "⏱ น่าจะขายได้ใน %d-%d วัน",
		eval.EstimatedDaysToSell.Min, eval.EstimatedDaysToSell.Max)

	return sb.String()
}

// renderTitleAnalysis formats title suggestions and validation.
func renderTitleAnalysis(analysis title.Analysis) string {
	var sb strings.Builder

	validation := title.Validate(analysis.CurrentTitle)
	fmt.Fprintf(&sb, "*คะแนนชื่อประกาศตอนนี้: %d/100*\n%s\n", analysis.CurrentScore, validation.QuickFeedback.TH)

	for _, issue := range analysis.Issues {
		fmt.Fprintf(&sb, "⚠️ %s\n", issue.Message.TH)
	}

	if len(analysis.Suggestions) > 0 {
		sb.WriteString("\n*ชื่อที่แนะนำ:*\n")
		for i, sug := range analysis.Suggestions {
			fmt.Fprintf(&sb, "%d. %s (%d/100)\n", i+1, escapeMarkdown(sug.SuggestedTitle), sug.TitleScore)
		}

		best := analysis.Suggestions[0]
		if len(best.MissingAttributes) > 0 {
			sb.WriteString("\n*ข้อมูลที่ยังขาด:*\n")
			for _, attr := range best.MissingAttributes {
				marker := "▫️"
				if attr.Importance == title.ImportanceCritical {
					marker = "❗"
				}
				fmt.Fprintf(&sb, "%s %s (%s)\n", marker, attr.Attribute, attr.Example.TH)
			}
		}
		if best.BuyerFocusHint.TH != "" {
			fmt.Fprintf(&sb, "\n💡 %s", best.BuyerFocusHint.TH)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderCarPrice formats a car price estimate.
func renderCarPrice(est carprice.Result) string {
	return formatReplyText(MsgCarPriceResult,
		formatBaht(est.EstimatedPrice),
		formatBaht(est.MinPrice),
		formatBaht(est.MaxPrice),
		est.AgeYears,
	)
}
