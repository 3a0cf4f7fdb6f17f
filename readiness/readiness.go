// Package readiness scores a draft marketplace listing before publishing.
//
// Evaluate is a final quality check over the assembled listing data:
// completeness, clarity and buyer trust. It never blocks publishing -
// the result is guidance only.
package readiness

import (
	"math"

	"github.com/kritsada/taladnat-bot/bilingual"
)

// CategoryOthers is the reserved "Others/uncategorized" category id.
// Listings left in it are penalized relative to a specific category.
const CategoryOthers = 99

// ListingData is the caller-assembled input for one evaluation. Evaluate
// never mutates it; missing optional fields score as the worst case for
// their dimension, never as an error.
type ListingData struct {
	// Images are opaque references (paths or URLs); the count is the
	// primary signal.
	Images []string `json:"images"`
	// ImageQualityScores is an optional parallel list of 0-100 scores,
	// one per image, from an upstream image quality scorer.
	ImageQualityScores []float64 `json:"image_quality_scores,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description"`
	// Price in THB. Zero means not set.
	Price         int    `json:"price"`
	CategoryID    int    `json:"category_id"`
	SubcategoryID int    `json:"subcategory_id,omitempty"`
	Condition     string `json:"condition"`

	Province string `json:"province,omitempty"`
	Amphoe   string `json:"amphoe,omitempty"`
	District string `json:"district,omitempty"`

	ShippingOptions []string `json:"shipping_options,omitempty"`

	// Details holds category-specific attributes. The schema varies per
	// category and is not validated here; only the key count matters.
	Details map[string]any `json:"details,omitempty"`

	HasWarranty bool   `json:"has_warranty,omitempty"`
	HasReceipt  bool   `json:"has_receipt,omitempty"`
	IMEI        string `json:"imei,omitempty"`
}

// CategoryScores breaks the sell score down by dimension. The fields sum
// to the sell score exactly.
type CategoryScores struct {
	Images   int `json:"images"`   // max 30
	Details  int `json:"details"`  // max 25
	Category int `json:"category"` // max 15
	Trust    int `json:"trust"`    // max 15
	Shipping int `json:"shipping"` // max 10
	Title    int `json:"title"`    // max 5
}

// TrustSignals are boolean buyer-confidence indicators projected
// straight from the listing data.
type TrustSignals struct {
	HasWarranty        bool `json:"has_warranty"`
	HasDetailedPhotos  bool `json:"has_detailed_photos"`
	HasGPSLocation     bool `json:"has_gps_location"`
	HasShippingOptions bool `json:"has_shipping_options"`
	HasCompleteDetails bool `json:"has_complete_details"`
	// VerifiedSeller requires seller profile data this package does not
	// have; always false for now.
	VerifiedSeller bool `json:"verified_seller"`
}

// ViewEstimate is a predicted view-count range.
type ViewEstimate struct {
	Low     int `json:"low"`
	Average int `json:"average"`
	High    int `json:"high"`
}

// SellTimeEstimate is a predicted days-to-sell range.
type SellTimeEstimate struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Evaluation is the result of scoring one listing.
type Evaluation struct {
	SellScore int   `json:"sell_score"` // 0-100
	SellGrade Grade `json:"sell_grade"`
	// PublishReady is always true. The evaluator is advisory only and
	// must never gate publishing.
	PublishReady        bool             `json:"publish_ready"`
	OverallFeedback     bilingual.Text   `json:"overall_feedback"`
	CategoryScores      CategoryScores   `json:"category_scores"`
	ImprovementTips     []Tip            `json:"improvement_tips"`
	TrustSignals        TrustSignals     `json:"trust_signals"`
	EstimatedViews      ViewEstimate     `json:"estimated_views"`
	EstimatedDaysToSell SellTimeEstimate `json:"estimated_days_to_sell"`
}

// Evaluate scores a listing for readiness to sell. It is pure and total:
// no I/O, no mutation of the input, and a complete result for any input.
func Evaluate(listing ListingData) Evaluation {
	// Only the image score carries a fractional quality term. Rounding it
	// before summing keeps the category scores summing to the sell score
	// exactly.
	images := int(math.Round(scoreImages(listing)))
	scores := CategoryScores{
		Images:   images,
		Details:  scoreDetails(listing),
		Category: scoreCategory(listing),
		Trust:    scoreTrust(listing),
		Shipping: scoreShipping(listing),
		Title:    scoreTitle(listing),
	}

	total := scores.Images + scores.Details + scores.Category +
		scores.Trust + scores.Shipping + scores.Title
	grade := GradeForScore(total)

	return Evaluation{
		SellScore:           total,
		SellGrade:           grade,
		PublishReady:        true,
		OverallFeedback:     overallFeedback(total),
		CategoryScores:      scores,
		ImprovementTips:     improvementTips(listing, scores),
		TrustSignals:        detectTrustSignals(listing),
		EstimatedViews:      predictViews(total, listing.CategoryID),
		EstimatedDaysToSell: predictSellTime(total, listing.Price),
	}
}

func detectTrustSignals(listing ListingData) TrustSignals {
	return TrustSignals{
		HasWarranty:        listing.HasWarranty,
		HasDetailedPhotos:  len(listing.Images) >= 5,
		HasGPSLocation:     listing.Province != "" && listing.Amphoe != "" && listing.District != "",
		HasShippingOptions: len(listing.ShippingOptions) >= 1,
		HasCompleteDetails: runeLen(listing.Description) >= 100,
		VerifiedSeller:     false,
	}
}
