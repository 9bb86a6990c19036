// Package ident mints element identifiers from stable inputs.
//
// Identifiers are name-based (SHA-1) UUIDs, so the same inputs give the same
// identifier on every call and in every process. Nothing is counted.
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Namespace scopes every identifier minted by this package.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matt-g-everett/frametx"))

const shortLength = 8

// UUID returns the name-based UUID for parts. Parts are joined with a NUL
// separator so ("ab", "c") and ("a", "bc") differ.
func UUID(parts ...string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(strings.Join(parts, "\x00")))
}

// ID returns a short identifier such as "glow-1f0c2a9b", suitable for
// filter or gradient element ids.
func ID(prefix string, parts ...string) string {
	short := strings.ReplaceAll(UUID(append([]string{prefix}, parts...)...).String(), "-", "")[:shortLength]
	if prefix == "" {
		return short
	}
	return prefix + "-" + short
}
