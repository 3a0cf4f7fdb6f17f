package bot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lithammer/dedent"
)

func formatReplyText(text string, a ...any) string {
	return fmt.Sprintf(strings.TrimSpace(dedent.Dedent(text)), a...)
}

func parseCommand(s string) (string, []string) {
	parts := strings.Split(s, " ")
	return parts[0], parts[1:]
}

// priceRegex matches baht amounts:
// - Plain numbers: "24500"
// - With thousands separator: "24,500"
// - With baht sign or word: "฿24500", "24500฿", "24500 บาท"
var priceRegex = regexp.MustCompile(`^฿?\s*(\d{1,3}(?:,\d{3})+|\d+)\s*(?:฿|บาท)?$`)

func parsePriceMessage(text string) (int, error) {
	m := priceRegex.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, fmt.Errorf("no price found")
	}
	price, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0, err
	}
	return price, nil
}

// formatBaht renders an integer with thousands separators, e.g. 24500 -> "24,500".
func formatBaht(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}
	var b strings.Builder
	if n < 0 {
		b.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// escapeMarkdown escapes special characters for Telegram Markdown V1
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "*", "\\*")
	text = strings.ReplaceAll(text, "_", "\\_")
	text = strings.ReplaceAll(text, "`", "\\`")
	text = strings.ReplaceAll(text, "[", "\\[")
	return text
}
