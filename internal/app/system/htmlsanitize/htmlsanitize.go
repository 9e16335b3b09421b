// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy allows the formatting users reasonably paste into feature
// descriptions and comments (emphasis, lists, links, code) while
// stripping scripts, event handlers, and javascript: URLs.
var ugcPolicy = bluemonday.UGCPolicy()

// strictPolicy strips all markup. Used for single-line fields.
var strictPolicy = bluemonday.StrictPolicy()

// Sanitize cleans user-supplied rich text (descriptions, comments) and
// trims surrounding whitespace. Safe formatting survives.
func Sanitize(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}

// StripTags removes all markup from single-line fields (titles, names)
// and trims surrounding whitespace.
func StripTags(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}