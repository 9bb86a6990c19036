package counter

import (
	"math"
	"strconv"
	"strings"
)

var tiers = []string{"", "K", "M", "B", "T"}

// Format renders v according to the spec. With Abbreviate set, magnitudes
// of 1000 and above get a K, M, B or T suffix. Zero never renders as "-0".
func (s Spec) Format(v float64) string {
	if !finite(v) {
		v = 0
	}
	if s.Abbreviate && math.Abs(v) >= 1000 {
		return s.Prefix + s.abbreviate(v) + s.Suffix
	}
	return s.Prefix + s.fixed(v) + s.Suffix
}

func (s Spec) abbreviate(v float64) string {
	abs := math.Abs(v)
	tier := int(math.Floor(math.Log10(abs) / 3))
	tier = max(1, min(tier, len(tiers)-1))

	// Log10 can land a hair under an exact power of ten.
	if tier < len(tiers)-1 && abs/math.Pow(1000, float64(tier)) >= 1000 {
		tier++
	}
	if tier > 1 && abs/math.Pow(1000, float64(tier)) < 1 {
		tier--
	}

	scaled := v / math.Pow(1000, float64(tier))
	text := strconv.FormatFloat(scaled, 'f', s.Decimals, 64)

	// 999.95K at one decimal rounds to "1000.0"; promote it to "1.0M".
	if tier < len(tiers)-1 {
		if r, err := strconv.ParseFloat(text, 64); err == nil && math.Abs(r) >= 1000 {
			tier++
			scaled = v / math.Pow(1000, float64(tier))
			text = strconv.FormatFloat(scaled, 'f', s.Decimals, 64)
		}
	}
	return s.localise(text) + tiers[tier]
}

func (s Spec) fixed(v float64) string {
	return s.localise(strconv.FormatFloat(v, 'f', s.Decimals, 64))
}

// localise takes a plain "-1234.50" rendering, drops negative zero and
// applies the spec's separators.
func (s Spec) localise(text string) string {
	neg := strings.HasPrefix(text, "-")
	if neg {
		text = text[1:]
		if strings.Trim(text, "0.") == "" {
			neg = false
		}
	}

	intPart, fracPart, hasFrac := strings.Cut(text, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(group(intPart, s.GroupSeparator))
	if hasFrac {
		b.WriteString(s.DecimalSeparator)
		b.WriteString(fracPart)
	}
	return b.String()
}

// group inserts sep every three digits from the right.
func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
