// Package easing holds the fixed catalogue of named easing curves used to
// reshape linear progress. Every curve is a pure function of t.
package easing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// Func maps normalised time t in [0, 1] to eased time. Some curves (back,
// elastic) leave [0, 1] for part of their range.
type Func func(t float64) float64

// ErrUnknownEasing is returned by Lookup for names missing from the catalogue.
var ErrUnknownEasing = errors.New("unknown easing")

type entry struct {
	fn        Func
	monotonic bool
}

// Names are stored normalised: lower case, no "ease" prefix, no separators.
var catalogue = map[string]entry{
	"linear": {pinned(ease.Linear), true},

	"inquad":    {pinned(ease.InQuad), true},
	"outquad":   {pinned(ease.OutQuad), true},
	"inoutquad": {pinned(ease.InOutQuad), true},

	"incubic":    {pinned(ease.InCubic), true},
	"outcubic":   {pinned(ease.OutCubic), true},
	"inoutcubic": {pinned(ease.InOutCubic), true},

	"inquart":    {pinned(ease.InQuart), true},
	"outquart":   {pinned(ease.OutQuart), true},
	"inoutquart": {pinned(ease.InOutQuart), true},

	"inquint":    {pinned(ease.InQuint), true},
	"outquint":   {pinned(ease.OutQuint), true},
	"inoutquint": {pinned(ease.InOutQuint), true},

	"insine":    {pinned(ease.InSine), true},
	"outsine":   {pinned(ease.OutSine), true},
	"inoutsine": {pinned(ease.InOutSine), true},

	"inexpo":    {pinned(ease.InExpo), true},
	"outexpo":   {pinned(ease.OutExpo), true},
	"inoutexpo": {pinned(ease.InOutExpo), true},

	"incirc":    {pinned(ease.InCirc), true},
	"outcirc":   {pinned(ease.OutCirc), true},
	"inoutcirc": {pinned(ease.InOutCirc), true},

	// Overshoot and oscillating curves.
	"inelastic":    {pinned(ease.InElastic), false},
	"outelastic":   {pinned(ease.OutElastic), false},
	"inoutelastic": {pinned(ease.InOutElastic), false},

	"inback":    {pinned(ease.InBack), false},
	"outback":   {pinned(ease.OutBack), false},
	"inoutback": {pinned(ease.InOutBack), false},

	"inbounce":    {pinned(ease.InBounce), false},
	"outbounce":   {pinned(ease.OutBounce), false},
	"inoutbounce": {pinned(ease.InOutBounce), false},
}

// pinned makes a curve hit exactly 0 and 1 at the ends of the unit
// interval, which some closed forms (expo, elastic) only approximate.
func pinned(fn Func) Func {
	return func(t float64) float64 {
		switch t {
		case 0:
			return 0
		case 1:
			return 1
		}
		return fn(t)
	}
}

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// OrLinear returns fn, or Linear when fn is nil.
func OrLinear(fn Func) Func {
	if fn == nil {
		return Linear
	}
	return fn
}

func normalise(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "", "_", "", " ", "").Replace(n)
	if n != "ease" {
		n = strings.TrimPrefix(n, "ease")
	}
	return n
}

// Lookup resolves an easing by name. "easeOutCubic", "outCubic" and
// "out-cubic" all name the same curve. An empty name resolves to Linear.
func Lookup(name string) (Func, error) {
	n := normalise(name)
	if n == "" {
		return Linear, nil
	}
	if e, ok := catalogue[n]; ok {
		return e.fn, nil
	}
	if steps, ok := parseSteps(n); ok {
		return Steps(steps), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

// MustLookup is like Lookup but panics on unknown names. Intended for
// package-level tables.
func MustLookup(name string) Func {
	fn, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return fn
}

// IsMonotonic reports whether the named curve never decreases and stays in
// [0, 1]. Unknown names report false.
func IsMonotonic(name string) bool {
	n := normalise(name)
	if n == "" {
		return true
	}
	if e, ok := catalogue[n]; ok {
		return e.monotonic
	}
	_, ok := parseSteps(n)
	return ok
}

// Names lists the catalogue in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for n := range catalogue {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
