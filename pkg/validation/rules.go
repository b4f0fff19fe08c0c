// Package validation holds the contact-form rule set shared by the form
// validator and the HTTP endpoint, so the two sides cannot drift apart.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits. Lengths are counted in Unicode code points, not bytes.
const (
	MinNameLen    = 2
	MinMessageLen = 10
	MaxMessageLen = 1000
)

// Deliberately lenient email shape: something@something.something with no
// whitespace. Stricter RFC checks reject addresses that deliver fine.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// spamWords is a fixed denylist matched as plain case-insensitive substrings.
// No word-boundary logic: "buy nowhere" is blocked too, and that is accepted
// as the cost of a cheap filter.
var spamWords = []string{
	"viagra",
	"casino",
	"lottery",
	"prize",
	"click here",
	"buy now",
	"free money",
}

// disposableMarkers flags throwaway inboxes. Matched against the whole email
// string, not just the domain part, so "tempmail" in the local part is also
// rejected.
var disposableMarkers = []string{
	"tempmail",
	"throwaway",
	"guerrillamail",
	"10minutemail",
}

// ValidEmail reports whether the address matches the lenient email shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ContainsSpam scans the space-joined, lowercased concatenation of the given
// fields for any denylisted substring.
func ContainsSpam(fields ...string) bool {
	text := strings.ToLower(strings.Join(fields, " "))
	for _, word := range spamWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// HasDisposableMarker reports whether the email contains a known
// disposable-inbox marker anywhere in the string.
func HasDisposableMarker(email string) bool {
	lower := strings.ToLower(email)
	for _, marker := range disposableMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// RuneLen counts Unicode code points. "João" is 4, not 5.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
