package applications

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/dalemusser/ayudahub/internal/app/system/htmlsanitize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var monthsES = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// formatSubmitted renders t as "5 de mar, 2025" in loc.
func formatSubmitted(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d de %s, %d", t.Day(), monthsES[t.Month()-1], t.Year())
}

// countLabel renders the count badge text.
func countLabel(n int) string {
	if n == 1 {
		return "1 postulación"
	}
	return fmt.Sprintf("%d postulaciones", n)
}

// excerpt strips markup, collapses whitespace and cuts s to max runes.
// max <= 0 disables truncation.
func excerpt(s string, max int) string {
	clean := htmlsanitize.PlainText(s)
	runes := []rune(clean)
	if max <= 0 || len(runes) <= max {
		return clean
	}
	return strings.TrimRightFunc(string(runes[:max]), unicode.IsSpace) + "…"
}

// titleCategory upper-cases the first letter of each word for display and
// leaves the rest of the word as entered.
// Casers keep state, so each call gets its own.
func titleCategory(c string) string {
	return cases.Title(language.Spanish, cases.NoLower).String(c)
}

func titleCategories(cats []string) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, titleCategory(c))
	}
	return out
}
