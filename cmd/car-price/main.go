// car-price estimates a used-vehicle asking price from the command line.
//
// Usage: car-price -new 800000 -year 2021 [-mileage 45000] [-condition good]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kritsada/taladnat-bot/carprice"
)

func main() {
	var in carprice.Input

	flag.IntVar(&in.NewPrice, "new", 0, "as-new price in THB")
	flag.IntVar(&in.Year, "year", 0, "model year")
	flag.IntVar(&in.Mileage, "mileage", 0, "mileage in km")
	flag.StringVar(&in.Condition, "condition", "good", "condition: new, like_new, good, fair, poor")
	flag.Float64Var(&in.MarketAdjustment, "market", 0, "market adjustment, e.g. 0.05 or -0.10")
	flag.Parse()

	if in.NewPrice <= 0 || in.Year <= 0 {
		fmt.Fprintln(os.Stderr, "usage: car-price -new <price> -year <year> [-mileage km] [-condition c]")
		os.Exit(1)
	}

	est := carprice.Estimate(in)
	fmt.Printf("Estimated price: %d THB (age %d years)\n", est.EstimatedPrice, est.AgeYears)
	fmt.Printf("Suggested range: %d - %d THB\n", est.MinPrice, est.MaxPrice)
}
