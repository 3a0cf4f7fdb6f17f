package readiness

import "github.com/kritsada/taladnat-bot/bilingual"

// Grade is the letter grade derived from the sell score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// gradeLadder maps score thresholds to grade and overall feedback. Both
// are derived from this one table so the bands cannot drift apart.
var gradeLadder = []struct {
	minScore int
	grade    Grade
	feedback bilingual.Text
}{
	{90, GradeA, bilingual.Text{
		TH: "🎉 ยอดเยี่ยม! ประกาศนี้พร้อมขายแล้ว มีโอกาสขายได้เร็วมาก",
		EN: "🎉 Excellent! This listing is ready to sell and will likely sell quickly",
	}},
	{75, GradeB, bilingual.Text{
		TH: "👍 ดีมาก! ประกาศนี้มีคุณภาพดี อาจปรับปรุงเล็กน้อยเพื่อขายเร็วขึ้น",
		EN: "👍 Very good! High quality listing, minor improvements could help sell faster",
	}},
	{60, GradeC, bilingual.Text{
		TH: "😊 ดี! ประกาศใช้ได้ แต่ควรปรับปรุงบางจุดเพื่อเพิ่มโอกาสขาย",
		EN: "😊 Good! Listing is okay, but improvements recommended for better chances",
	}},
	{40, GradeD, bilingual.Text{
		TH: "⚠️ พอใช้ ควรปรับปรุงหลายจุดเพื่อให้ขายได้เร็วขึ้น",
		EN: "⚠️ Fair - several improvements needed for better sales speed",
	}},
	{0, GradeF, bilingual.Text{
		TH: "💪 ควรปรับปรุงเพิ่มเติม ตามคำแนะนำด้านล่างจะช่วยให้ขายได้ดีขึ้น",
		EN: "💪 Needs improvement - follow tips below for better results",
	}},
}

// GradeForScore maps a 0-100 sell score to a letter grade.
func GradeForScore(score int) Grade {
	for _, band := range gradeLadder {
		if score >= band.minScore {
			return band.grade
		}
	}
	return GradeF
}

func overallFeedback(score int) bilingual.Text {
	for _, band := range gradeLadder {
		if score >= band.minScore {
			return band.feedback
		}
	}
	return gradeLadder[len(gradeLadder)-1].feedback
}

var gradeEmojis = map[Grade]string{
	GradeA: "🟢",
	GradeB: "🔵",
	GradeC: "🟡",
	GradeD: "🟠",
	GradeF: "🔴",
}

var gradeLabels = map[Grade]bilingual.Text{
	GradeA: {TH: "ยอดเยี่ยม", EN: "Excellent"},
	GradeB: {TH: "ดีมาก", EN: "Very Good"},
	GradeC: {TH: "ดี", EN: "Good"},
	GradeD: {TH: "พอใช้", EN: "Fair"},
	GradeF: {TH: "ควรปรับปรุง", EN: "Needs Work"},
}

// Emoji returns a colored indicator for the grade, for presentation
// only.
func (g Grade) Emoji() string {
	return gradeEmojis[g]
}

// Label returns a human-readable name for the grade.
func (g Grade) Label() bilingual.Text {
	return gradeLabels[g]
}
