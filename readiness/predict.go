package readiness

import "math"

// Relative view traffic by category. Mobiles see the most demand.
var categoryViewMultipliers = map[int]float64{
	3: 1.5, // Mobiles & Tablets
	1: 1.3, // Automotive
	2: 1.2, // Real Estate
	6: 1.1, // Fashion
	4: 1.0, // Computers
}

// predictViews estimates a first-week view range from the sell score and
// category popularity. Heuristic, not calibrated against historical
// data.
func predictViews(score, categoryID int) ViewEstimate {
	multiplier, ok := categoryViewMultipliers[categoryID]
	if !ok {
		multiplier = 1.0
	}

	base := float64(score) / 100 * 100 * multiplier

	return ViewEstimate{
		Low:     int(math.Round(base * 0.7)),
		Average: int(math.Round(base)),
		High:    int(math.Round(base * 1.5)),
	}
}

// predictSellTime estimates days to sell. A perfect score maps to ~4
// base days, a zero score to 14; expensive items take longer and cheap
// ones move faster.
func predictSellTime(score, price int) SellTimeEstimate {
	baseDays := 14 - float64(score)/100*10

	if price > 50000 {
		baseDays *= 1.5
	} else if price < 1000 {
		baseDays *= 0.8
	}

	return SellTimeEstimate{
		Min: max(1, int(math.Round(baseDays*0.5))),
		Max: int(math.Round(baseDays * 2)),
	}
}
