package counter

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	probeValue = 1234567.5
)

// Separators returns the group and decimal separators CLDR uses for tag.
// Locales without grouping return an empty group separator.
func Separators(tag language.Tag) (groupSep, decimalSep string) {
	p := message.NewPrinter(tag)
	text := p.Sprint(number.Decimal(probeValue, number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	var runs []string
	var cur strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}

	switch len(runs) {
	case 1:
		return "", runs[0]
	case 3:
		return runs[0], runs[2]
	}
	return ",", "."
}

// WithLocale returns a copy of s using the separators of tag.
func (s Spec) WithLocale(tag language.Tag) Spec {
	s.GroupSeparator, s.DecimalSeparator = Separators(tag)
	return s
}
