package readiness

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Point budgets per scoring dimension.
const (
	MaxImageScore    = 30
	MaxDetailsScore  = 25
	MaxCategoryScore = 15
	MaxTrustScore    = 15
	MaxShippingScore = 10
	MaxTitleScore    = 5
)

// Carriers buyers prefer; offering one of them earns bonus shipping
// points.
var recommendedCarriers = map[string]bool{
	"kerry": true,
	"flash": true,
}

var (
	digitRe       = regexp.MustCompile(`[0-9]`)
	titleSymbolRe = regexp.MustCompile(`[!@#$%^&*()]`)
	uppercaseRe   = regexp.MustCompile(`[A-Z]`)
	thaiRe        = regexp.MustCompile(`[ก-๙]`)
)

// scoreImages rates photo count and quality, 0-30. Five to seven photos
// is the practical ceiling for marginal benefit; when per-image quality
// scores are available their average replaces a neutral default.
func scoreImages(listing ListingData) float64 {
	// No photos at all means no points, including the quality default.
	if len(listing.Images) == 0 {
		return 0
	}

	var score float64

	switch n := len(listing.Images); {
	case n >= 7:
		score += 15
	case n >= 5:
		score += 12
	case n >= 3:
		score += 9
	case n >= 1:
		score += 5
	}

	if len(listing.ImageQualityScores) > 0 {
		var sum float64
		for _, q := range listing.ImageQualityScores {
			sum += q
		}
		avg := sum / float64(len(listing.ImageQualityScores))
		score += avg / 100 * 15
	} else {
		score += 10
	}

	return min(score, MaxImageScore)
}

// scoreDetails rates the description, condition and category-specific
// attributes, 0-25.
func scoreDetails(listing ListingData) int {
	score := 0
	desc := listing.Description

	switch n := runeLen(desc); {
	case n >= 200:
		score += 10
	case n >= 100:
		score += 7
	case n >= 50:
		score += 4
	default:
		score += 1
	}

	// Richness signals, one point each.
	if strings.Contains(desc, "\n") {
		score++
	}
	if digitRe.MatchString(desc) {
		score++
	}
	if runeLen(desc) > 150 {
		score++
	}
	if !hasRepeatedRun(desc, 5) {
		score++
	}
	if len(strings.Fields(desc)) >= 20 {
		score++
	}

	if listing.Condition != "" {
		score += 5
	}

	if n := len(listing.Details); n > 0 {
		score += min(n, 5)
	}

	return min(score, MaxDetailsScore)
}

// scoreCategory rates category and subcategory selection, 0-15.
func scoreCategory(listing ListingData) int {
	score := 0

	switch {
	case listing.CategoryID != 0 && listing.CategoryID != CategoryOthers:
		score += 10
	case listing.CategoryID == CategoryOthers:
		score += 3
	}

	if listing.SubcategoryID != 0 {
		score += 5
	}

	return min(score, MaxCategoryScore)
}

// scoreTrust rates location completeness and proof-of-ownership
// signals, 0-15.
func scoreTrust(listing ListingData) int {
	score := 0

	switch {
	case listing.Province != "" && listing.Amphoe != "" && listing.District != "":
		score += 5
	case listing.Province != "" && listing.Amphoe != "":
		score += 3
	case listing.Province != "":
		score += 1
	}

	if listing.HasWarranty {
		score += 3
	}
	if listing.HasReceipt {
		score += 3
	}
	if listing.IMEI != "" {
		score += 4
	}

	return min(score, MaxTrustScore)
}

// scoreShipping rates delivery options, 0-10.
func scoreShipping(listing ListingData) int {
	if len(listing.ShippingOptions) == 0 {
		return 0
	}

	score := 5
	if len(listing.ShippingOptions) >= 2 {
		score += 3
	}
	for _, opt := range listing.ShippingOptions {
		if recommendedCarriers[opt] {
			score += 2
			break
		}
	}

	return min(score, MaxShippingScore)
}

// scoreTitle rates title length and clarity, 0-5.
func scoreTitle(listing ListingData) int {
	score := 0
	title := listing.Title

	switch n := runeLen(title); {
	case n >= 20 && n <= 60:
		score += 2
	case n >= 15 && n <= 80:
		score += 1
	}

	if digitRe.MatchString(title) {
		score++
	}
	if len(titleSymbolRe.FindAllString(title, -1)) < 3 {
		score++
	}
	if uppercaseRe.MatchString(title) || thaiRe.MatchString(title) {
		score++
	}

	return min(score, MaxTitleScore)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// hasRepeatedRun reports whether s contains the same rune repeated n or
// more times in a row, the classic spam pattern.
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
