package kernel

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// normalize applies NFC, trims surrounding whitespace and collapses inner runs of
// whitespace to a single space.
func normalize(s string) string {
	return strings.Join(strings.FieldsFunc(norm.NFC.String(s), unicode.IsSpace), " ")
}

// NormalizeText is the normalization used for free-text waybill fields.
func NormalizeText(s string) string {
	return normalize(s)
}
