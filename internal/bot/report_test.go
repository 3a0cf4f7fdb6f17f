package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kritsada/taladnat-bot/carprice"
	"github.com/kritsada/taladnat-bot/readiness"
	"github.com/kritsada/taladnat-bot/title"
)

func TestRenderEvaluation(t *testing.T) {
	eval := readiness.Evaluate(readiness.ListingData{
		Images:             []string{"a", "b", "c", "d", "e", "f", "g"},
		ImageQualityScores: []float64{95, 95, 95, 95, 95, 95, 95},
		Title:              "iPhone 13 Pro 256GB Sierra Blue like new",
		Description: strings.Repeat("สินค้าสภาพดีมาก ใช้งานได้ปกติทุกอย่าง 100%\n", 6) +
			"ประกันเหลือถึงปีหน้า อุปกรณ์ครบกล่อง",
		Price:           24500,
		CategoryID:      3,
		SubcategoryID:   301,
		Condition:       "like_new",
		Province:        "กรุงเทพมหานคร",
		Amphoe:          "บางรัก",
		District:        "สีลม",
		ShippingOptions: []string{"kerry", "flash"},
		Details:         map[string]any{"storage": "256GB", "color": "Sierra Blue"},
		HasWarranty:     true,
		HasReceipt:      true,
	})

	got := renderEvaluation(eval)

	assert.Contains(t, got, "คะแนนความพร้อม")
	assert.Contains(t, got, "เกรด A")
	assert.Contains(t, got, "🟢")
	assert.Contains(t, got, "📷 รูปภาพ: 29/30")
	assert.Contains(t, got, "ยอดเข้าชมที่คาดไว้")
	assert.Contains(t, got, "น่าจะขายได้ใน")
}

func TestRenderEvaluationEmptyListing(t *testing.T) {
	eval := readiness.Evaluate(readiness.ListingData{})
	got := renderEvaluation(eval)

	assert.Contains(t, got, "เกรด F")
	assert.Contains(t, got, "สิ่งที่ควรปรับปรุง")
	// The price tip has no point budget, so no "+N" suffix for it.
	assert.Contains(t, got, "🚨")
}

func TestRenderTitleAnalysis(t *testing.T) {
	analysis := title.Suggest(title.Input{
		CategoryID:   3,
		CurrentTitle: "ขายมือถือ",
		UserInputs:   map[string]string{"brand": "iPhone", "model": "13 Pro", "storage": "256GB"},
	})

	got := renderTitleAnalysis(analysis)

	assert.Contains(t, got, "คะแนนชื่อประกาศตอนนี้")
	assert.Contains(t, got, "ชื่อที่แนะนำ")
	assert.Contains(t, got, "iPhone")
}

func TestRenderCarPrice(t *testing.T) {
	got := renderCarPrice(carprice.Result{
		EstimatedPrice: 598400,
		MinPrice:       508600,
		MaxPrice:       688200,
		AgeYears:       3,
	})

	assert.Contains(t, got, "598,400")
	assert.Contains(t, got, "508,600")
	assert.Contains(t, got, "688,200")
	assert.Contains(t, got, "3 ปี")
}
