// evaluate-listing scores a listing JSON file and prints the readiness
// report. Useful for tuning the scorer without going through the bot.
//
// Usage: evaluate-listing [-json] <listing.json>
// Reads stdin when no file is given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kritsada/taladnat-bot/readiness"
)

func main() {
	var asJSON bool
	flag.BoolVar(&asJSON, "json", false, "print the full evaluation as JSON")
	flag.Parse()

	var data []byte
	var err error
	if flag.NArg() > 0 {
		data, err = os.ReadFile(flag.Arg(0))
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read listing: %v\n", err)
		os.Exit(1)
	}

	var listing readiness.ListingData
	if err := json.Unmarshal(data, &listing); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse listing JSON: %v\n", err)
		os.Exit(1)
	}

	eval := readiness.Evaluate(listing)

	if asJSON {
		out, err := json.MarshalIndent(eval, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to marshal evaluation: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("%s Sell score: %d/100 (grade %s - %s)\n",
		eval.SellGrade.Emoji(), eval.SellScore, eval.SellGrade, eval.SellGrade.Label().EN)
	fmt.Println(eval.OverallFeedback.EN)
	fmt.Println()

	s := eval.CategoryScores
	fmt.Printf("  images:   %2d/%d\n", s.Images, readiness.MaxImageScore)
	fmt.Printf("  details:  %2d/%d\n", s.Details, readiness.MaxDetailsScore)
	fmt.Printf("  category: %2d/%d\n", s.Category, readiness.MaxCategoryScore)
	fmt.Printf("  trust:    %2d/%d\n", s.Trust, readiness.MaxTrustScore)
	fmt.Printf("  shipping: %2d/%d\n", s.Shipping, readiness.MaxShippingScore)
	fmt.Printf("  title:    %2d/%d\n", s.Title, readiness.MaxTitleScore)

	if len(eval.ImprovementTips) > 0 {
		fmt.Println()
		fmt.Println("Tips:")
		for _, tip := range eval.ImprovementTips {
			fmt.Printf("  [%s] %s", tip.Priority, tip.Tip.EN)
			if tip.PointsGain > 0 {
				fmt.Printf(" (+%d)", tip.PointsGain)
			}
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Printf("Estimated views: %d-%d (avg %d)\n",
		eval.EstimatedViews.Low, eval.EstimatedViews.High, eval.EstimatedViews.Average)
	fmt.Printf("Estimated days to sell: %d-%d\n",
		eval.EstimatedDaysToSell.Min, eval.EstimatedDaysToSell.Max)
}
