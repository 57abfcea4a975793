// Package extract recovers discrete generated posts from the free-text answer
// of a language model. The model is asked to prefix every post with a
// numbered marker such as "Tweet 3:"; Extract splits the answer on those
// markers, cleans each segment and caps both the length of every item and the
// number of items returned.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Defaults applied by Default and by New for non-positive limits.
const (
	DefaultLabel    = "Tweet"
	DefaultMaxItems = 10
	DefaultMaxChars = 280
)

// Extractor splits raw model output into items. It is immutable after
// construction and safe for concurrent use.
type Extractor struct {
	label    string
	maxItems int
	maxChars int
	marker   *regexp.Regexp
}

// New creates an Extractor for markers of the form "<label> <number>:".
// An empty label or non-positive limit falls back to the defaults.
func New(label string, maxItems, maxChars int) *Extractor {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultLabel
	}
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	return &Extractor{
		label:    label,
		maxItems: maxItems,
		maxChars: maxChars,
		marker:   regexp.MustCompile(regexp.QuoteMeta(label) + ` \d+:`),
	}
}

// Default returns an Extractor for "Tweet N:" markers, 10 items of 280 characters.
func Default() *Extractor {
	return New(DefaultLabel, DefaultMaxItems, DefaultMaxChars)
}

// Label returns the marker label, e.g. "Tweet".
func (e *Extractor) Label() string { return e.label }

// MaxItems returns the maximum number of items Extract returns.
func (e *Extractor) MaxItems() int { return e.maxItems }

// MaxChars returns the maximum length of a returned item in characters.
func (e *Extractor) MaxChars() int { return e.maxChars }

// Extract returns the text following each marker up to the next marker or the
// end of raw, in the order the markers appear. Segments are trimmed, empty
// ones are dropped and the rest are truncated to MaxChars characters. At most
// MaxItems items are returned. Text without markers yields an empty, non-nil
// slice.
func (e *Extractor) Extract(raw string) []string {
	items := make([]string, 0, e.maxItems)

	// RE2 has no lookahead, so each item runs from the end of one marker to
	// the start of the next.
	matches := e.marker.FindAllStringIndex(raw, -1)
	for i, m := range matches {
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		item := e.clean(raw[m[1]:end])
		if item == "" {
			continue
		}

		items = append(items, item)
		if len(items) == e.maxItems {
			break
		}
	}

	return items
}

// clean trims the segment and caps it at maxChars characters. An invalid
// UTF-8 byte counts as one character and is kept as is.
func (e *Extractor) clean(segment string) string {
	item := strings.TrimSpace(segment)

	off := 0
	for n := 0; n < e.maxChars && off < len(item); n++ {
		_, size := utf8.DecodeRuneInString(item[off:])
		off += size
	}
	if off == len(item) {
		return item
	}

	// A cut at a space leaves the item shorter than maxChars once trimmed.
	return strings.TrimRightFunc(item[:off], unicode.IsSpace)
}
