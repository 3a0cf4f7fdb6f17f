// search-listings queries the marketplace search API and prints matches
// with the median asking price. Handy for checking price comparisons.
//
// Usage: search-listings [-category 3] [-limit 30] <query>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kritsada/taladnat-bot/talad"
)

func main() {
	var categoryID, limit int
	flag.IntVar(&categoryID, "category", 0, "restrict to category id")
	flag.IntVar(&limit, "limit", 30, "max results")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: search-listings [-category id] [-limit n] <query>")
		os.Exit(1)
	}

	client := talad.NewClient(talad.ClientOpts{
		BaseURL: os.Getenv("TALAD_API_URL"),
		Auth:    os.Getenv("TALAD_API_TOKEN"),
	})

	result, err := client.SearchListings(context.Background(), talad.SearchParams{
		Query:      query,
		CategoryID: categoryID,
		Limit:      limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d matches\n", result.MatchCount)
	for _, doc := range result.Docs {
		fmt.Printf("  %8d THB  %-40s %s\n", doc.Price, doc.Title, doc.Province)
	}
	if len(result.Docs) > 0 {
		fmt.Printf("median: %d THB\n", result.MedianPrice())
	}
}
