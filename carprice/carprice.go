// Package carprice estimates a used-vehicle asking price from the
// as-new price, age, mileage and condition. Heuristic only - the output
// is a starting point for the seller, not an appraisal.
package carprice

import (
	"math"
	"time"
)

// Expected distance driven per year on the Thai market.
const baselineKmPerYear = 15000

// Input describes the vehicle being priced.
type Input struct {
	// NewPrice is the as-new price in THB.
	NewPrice int
	// Year is the model year.
	Year int
	// Mileage in kilometers.
	Mileage int
	// Condition is one of new, like_new, good, used, fair, poor.
	// Unknown values are treated as good.
	Condition string
	// MarketAdjustment shifts the estimate for current demand, e.g.
	// 0.05 for a hot model or -0.10 for a cooling one.
	MarketAdjustment float64
}

// Result is the suggested price with a haggling range.
type Result struct {
	EstimatedPrice int `json:"estimated_price"`
	MinPrice       int `json:"min_price"`
	MaxPrice       int `json:"max_price"`
	AgeYears       int `json:"age_years"`
}

// Physical condition multipliers, separate from age depreciation.
var conditionMultipliers = map[string]float64{
	"new":      1.00,
	"like_new": 0.95,
	"good":     0.85,
	"used":     0.85, // treated as good
	"fair":     0.70,
	"poor":     0.25, // salvage/parts only
}

const defaultConditionMultiplier = 0.85

// Vehicles never depreciate below this share of the as-new price here;
// very old cars still trade for scrap-plus value.
const depreciationFloor = 0.10

// Estimate prices the vehicle as of now.
func Estimate(in Input) Result {
	return EstimateAt(in, time.Now().Year())
}

// EstimateAt prices the vehicle as of the given calendar year. Factors
// compose multiplicatively: age depreciation, mileage against the
// baseline, physical condition and the market adjustment.
func EstimateAt(in Input, currentYear int) Result {
	age := currentYear - in.Year
	if age < 0 {
		age = 0
	}

	price := float64(in.NewPrice) *
		ageFactor(age) *
		(1 + mileageImpact(in.Mileage, age)) *
		conditionMultiplier(in.Condition) *
		(1 + in.MarketAdjustment)

	if price < 0 {
		price = 0
	}

	estimated := roundToHundred(price)
	return Result{
		EstimatedPrice: estimated,
		MinPrice:       roundToHundred(float64(estimated) * 0.85),
		MaxPrice:       roundToHundred(float64(estimated) * 1.15),
		AgeYears:       age,
	}
}

// ageFactor returns the remaining share of the as-new price after age
// depreciation: -15% in the first year, -12% in the second, -20% every
// year after that, floored.
func ageFactor(age int) float64 {
	factor := 1.0
	if age >= 1 {
		factor *= 0.85
	}
	if age >= 2 {
		factor *= 0.88
	}
	for i := 3; i <= age; i++ {
		factor *= 0.80
	}
	return math.Max(factor, depreciationFloor)
}

// mileageImpact compares mileage to the baseline for the vehicle's age.
// Low mileage earns a small premium, heavy use a growing discount.
func mileageImpact(mileage, age int) float64 {
	if age <= 0 {
		return 0
	}

	expected := float64(age * baselineKmPerYear)
	m := float64(mileage)

	switch {
	case m <= expected*0.5:
		return 0.05
	case m <= expected:
		return 0
	case m <= expected*1.5:
		return -0.05
	case m <= expected*2:
		return -0.10
	default:
		return -0.15
	}
}

func conditionMultiplier(condition string) float64 {
	if m, ok := conditionMultipliers[condition]; ok {
		return m
	}
	return defaultConditionMultiplier
}

func roundToHundred(v float64) int {
	return int(math.Round(v/100)) * 100
}
