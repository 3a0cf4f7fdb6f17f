// suggest-title runs the title analyzer from the command line.
//
// Usage: suggest-title -category 3 -title "ขายมือถือ" [brand=iPhone model="13 Pro" ...]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kritsada/taladnat-bot/title"
)

func main() {
	var categoryID int
	var currentTitle string

	flag.IntVar(&categoryID, "category", 0, "marketplace category id")
	flag.StringVar(&currentTitle, "title", "", "current listing title")
	flag.Parse()

	userInputs := map[string]string{}
	for _, arg := range flag.Args() {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "expected key=value, got %q\n", arg)
			os.Exit(1)
		}
		userInputs[key] = value
	}

	analysis := title.Suggest(title.Input{
		CategoryID:   categoryID,
		CurrentTitle: currentTitle,
		UserInputs:   userInputs,
	})

	fmt.Printf("Current title: %q (score %d/100)\n", analysis.CurrentTitle, analysis.CurrentScore)
	for _, issue := range analysis.Issues {
		fmt.Printf("  [%s] %s\n", issue.Severity, issue.Message.EN)
	}

	fmt.Println()
	fmt.Println("Suggestions:")
	for i, sug := range analysis.Suggestions {
		fmt.Printf("%d. %s (score %d)\n", i+1, sug.SuggestedTitle, sug.TitleScore)
		for _, imp := range sug.Improvements {
			fmt.Printf("   + %s\n", imp)
		}
		for _, missing := range sug.MissingAttributes {
			fmt.Printf("   - missing %s [%s]: %s\n", missing.Attribute, missing.Importance, missing.Example.EN)
		}
	}
}
