// Package bilingual holds the Thai/English string pair used by the
// scoring and suggestion packages. Locale selection happens at the
// presentation boundary, never inside scoring logic.
package bilingual

// Text is a Thai/English message pair.
type Text struct {
	TH string `json:"th"`
	EN string `json:"en"`
}

// In returns the text for the given locale, falling back to English for
// anything that is not "th".
func (t Text) In(locale string) string {
	if locale == "th" {
		return t.TH
	}
	return t.EN
}
