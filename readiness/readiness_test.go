package readiness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongListing() ListingData {
	desc := "Selling a well kept iPhone 13 Pro 256GB in excellent condition.\n" +
		"Battery health 89 percent, no scratches, comes with original box and charger. " +
		"Used lightly for one year, always in a case with tempered glass screen protector."
	return ListingData{
		Images:             []string{"a", "b", "c", "d", "e", "f", "g"},
		ImageQualityScores: []float64{95, 95, 95, 95, 95, 95, 95},
		Title:              "iPhone 13 Pro 256GB Sierra Blue like new",
		Description:        desc,
		Price:              24500,
		CategoryID:         3,
		SubcategoryID:      301,
		Condition:          "good",
		Province:           "กรุงเทพมหานคร",
		Amphoe:             "บางรัก",
		District:           "สีลม",
		ShippingOptions:    []string{"kerry", "flash"},
		Details: map[string]any{
			"brand":   "Apple",
			"model":   "iPhone 13 Pro",
			"storage": "256GB",
			"color":   "Sierra Blue",
			"battery": "89%",
		},
		HasWarranty: true,
		HasReceipt:  true,
		IMEI:        "353912345678901",
	}
}

func minimalListing() ListingData {
	return ListingData{
		Title:      "x",
		CategoryID: CategoryOthers,
	}
}

func TestEvaluateMinimalListing(t *testing.T) {
	eval := Evaluate(minimalListing())

	assert.Equal(t, 0, eval.CategoryScores.Images)
	assert.Equal(t, 3, eval.CategoryScores.Category, "Others category keeps a small score")
	assert.Equal(t, GradeF, eval.SellGrade)
	assert.True(t, eval.PublishReady, "evaluator must never gate publishing")

	var priceTip *Tip
	for i := range eval.ImprovementTips {
		if eval.ImprovementTips[i].Category == TipPrice {
			priceTip = &eval.ImprovementTips[i]
		}
	}
	require.NotNil(t, priceTip, "missing price must surface as a tip")
	assert.Equal(t, PriorityCritical, priceTip.Priority)
	assert.Equal(t, 0, priceTip.PointsGain)
}

func TestEvaluateStrongListing(t *testing.T) {
	eval := Evaluate(strongListing())

	assert.GreaterOrEqual(t, eval.SellScore, 90)
	assert.Equal(t, GradeA, eval.SellGrade)
	for _, tip := range eval.ImprovementTips {
		assert.Equal(t, PriorityLow, tip.Priority, "strong listing should only get low priority tips")
	}
}

func TestEvaluateScoreBounds(t *testing.T) {
	tests := map[string]ListingData{
		"empty":   {},
		"minimal": minimalListing(),
		"strong":  strongListing(),
		"spammy": {
			Title:       strings.Repeat("!", 100),
			Description: strings.Repeat("a", 300),
			Price:       -5,
			CategoryID:  12345,
		},
		"oversized details": {
			Description: strings.Repeat("word ", 500),
			Details: map[string]any{
				"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7,
			},
			ShippingOptions: []string{"kerry", "flash", "ems", "dhl"},
		},
	}

	for name, listing := range tests {
		t.Run(name, func(t *testing.T) {
			eval := Evaluate(listing)
			s := eval.CategoryScores

			assert.GreaterOrEqual(t, s.Images, 0)
			assert.LessOrEqual(t, s.Images, MaxImageScore)
			assert.GreaterOrEqual(t, s.Details, 0)
			assert.LessOrEqual(t, s.Details, MaxDetailsScore)
			assert.GreaterOrEqual(t, s.Category, 0)
			assert.LessOrEqual(t, s.Category, MaxCategoryScore)
			assert.GreaterOrEqual(t, s.Trust, 0)
			assert.LessOrEqual(t, s.Trust, MaxTrustScore)
			assert.GreaterOrEqual(t, s.Shipping, 0)
			assert.LessOrEqual(t, s.Shipping, MaxShippingScore)
			assert.GreaterOrEqual(t, s.Title, 0)
			assert.LessOrEqual(t, s.Title, MaxTitleScore)

			sum := s.Images + s.Details + s.Category + s.Trust + s.Shipping + s.Title
			assert.Equal(t, eval.SellScore, sum, "category scores must sum to sell score")
			assert.GreaterOrEqual(t, eval.SellScore, 0)
			assert.LessOrEqual(t, eval.SellScore, 100)
			assert.True(t, eval.PublishReady)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	listing := strongListing()
	assert.Equal(t, Evaluate(listing), Evaluate(listing))
}

func TestImageCountBoundary(t *testing.T) {
	// Strict step function: exactly 5 photos lands on the 12 point tier,
	// exactly 7 on the 15 point tier. Quality scores pinned to 100 so the
	// quality term contributes a constant 15.
	quality := func(n int) []float64 {
		scores := make([]float64, n)
		for i := range scores {
			scores[i] = 100
		}
		return scores
	}

	five := Evaluate(ListingData{Images: []string{"1", "2", "3", "4", "5"}, ImageQualityScores: quality(5)})
	seven := Evaluate(ListingData{Images: []string{"1", "2", "3", "4", "5", "6", "7"}, ImageQualityScores: quality(7)})

	assert.Equal(t, 12+15, five.CategoryScores.Images)
	assert.Equal(t, 15+15, seven.CategoryScores.Images)
}

func TestImageQualityReplacesDefault(t *testing.T) {
	withQuality := Evaluate(ListingData{Images: []string{"1"}, ImageQualityScores: []float64{50}})
	withoutQuality := Evaluate(ListingData{Images: []string{"1"}})

	// 5 count points + 50/100*15 = 12.5, rounded
	assert.Equal(t, 13, withQuality.CategoryScores.Images)
	// 5 count points + flat default of 10
	assert.Equal(t, 15, withoutQuality.CategoryScores.Images)
}

func TestGradeLadder(t *testing.T) {
	tests := map[int]Grade{
		100: GradeA,
		90:  GradeA,
		89:  GradeB,
		75:  GradeB,
		74:  GradeC,
		60:  GradeC,
		59:  GradeD,
		40:  GradeD,
		39:  GradeF,
		0:   GradeF,
	}
	for score, want := range tests {
		assert.Equal(t, want, GradeForScore(score), "score %d", score)
	}
}

func TestGradeMonotonicity(t *testing.T) {
	rank := map[Grade]int{GradeF: 0, GradeD: 1, GradeC: 2, GradeB: 3, GradeA: 4}
	prev := GradeForScore(0)
	for score := 1; score <= 100; score++ {
		g := GradeForScore(score)
		assert.GreaterOrEqual(t, rank[g], rank[prev], "grade dropped at score %d", score)
		prev = g
	}
}

func TestFeedbackMatchesGradeBands(t *testing.T) {
	// Feedback thresholds are intentionally in lockstep with the grade
	// thresholds; a band change in one must show up in the other.
	for _, score := range []int{0, 39, 40, 59, 60, 74, 75, 89, 90, 100} {
		fb := overallFeedback(score)
		assert.NotEmpty(t, fb.TH)
		assert.NotEmpty(t, fb.EN)
		switch GradeForScore(score) {
		case GradeA:
			assert.Contains(t, fb.EN, "Excellent")
		case GradeB:
			assert.Contains(t, fb.EN, "Very good")
		case GradeC:
			assert.Contains(t, fb.EN, "Good")
		case GradeD:
			assert.Contains(t, fb.EN, "Fair")
		case GradeF:
			assert.Contains(t, fb.EN, "Needs improvement")
		}
	}
}

func TestTipsCappedAndSorted(t *testing.T) {
	// Worst possible listing triggers every tip branch.
	eval := Evaluate(ListingData{CategoryID: CategoryOthers})

	assert.LessOrEqual(t, len(eval.ImprovementTips), 5)
	for i := 1; i < len(eval.ImprovementTips); i++ {
		prev := priorityRank[eval.ImprovementTips[i-1].Priority]
		cur := priorityRank[eval.ImprovementTips[i].Priority]
		assert.LessOrEqual(t, prev, cur, "tips out of priority order at %d", i)
	}
}

func TestTrustSignals(t *testing.T) {
	eval := Evaluate(strongListing())
	signals := eval.TrustSignals

	assert.True(t, signals.HasWarranty)
	assert.True(t, signals.HasDetailedPhotos)
	assert.True(t, signals.HasGPSLocation)
	assert.True(t, signals.HasShippingOptions)
	assert.True(t, signals.HasCompleteDetails)
	assert.False(t, signals.VerifiedSeller, "no seller profile data available yet")

	empty := Evaluate(ListingData{})
	assert.Equal(t, TrustSignals{}, empty.TrustSignals)
}

func TestPredictViews(t *testing.T) {
	tests := map[string]struct {
		score      int
		categoryID int
		want       ViewEstimate
	}{
		"perfect score mobile": {
			score:      100,
			categoryID: 3,
			want:       ViewEstimate{Low: 105, Average: 150, High: 225},
		},
		"mid score unknown category": {
			score:      50,
			categoryID: 42,
			want:       ViewEstimate{Low: 35, Average: 50, High: 75},
		},
		"zero score": {
			score:      0,
			categoryID: 1,
			want:       ViewEstimate{},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, predictViews(tt.score, tt.categoryID))
		})
	}
}

func TestPredictSellTime(t *testing.T) {
	tests := map[string]struct {
		score int
		price int
		want  SellTimeEstimate
	}{
		"perfect score": {
			score: 100,
			price: 5000,
			want:  SellTimeEstimate{Min: 2, Max: 8},
		},
		"zero score cheap item": {
			score: 0,
			price: 500,
			// 14 days * 0.8 for a cheap item
			want: SellTimeEstimate{Min: 6, Max: 22},
		},
		"expensive item takes longer": {
			score: 50,
			price: 100000,
			// (14 - 5) * 1.5 = 13.5 days
			want: SellTimeEstimate{Min: 7, Max: 27},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, predictSellTime(tt.score, tt.price))
		})
	}
}

func TestPredictSellTimeMinFloor(t *testing.T) {
	got := predictSellTime(100, 500)
	assert.GreaterOrEqual(t, got.Min, 1)
}

func TestGradePresentation(t *testing.T) {
	for _, g := range []Grade{GradeA, GradeB, GradeC, GradeD, GradeF} {
		assert.NotEmpty(t, g.Emoji())
		assert.NotEmpty(t, g.Label().TH)
		assert.NotEmpty(t, g.Label().EN)
	}
}
