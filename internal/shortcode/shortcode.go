package shortcode

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Shortcodes embed widget references inside rich-text content, e.g.
// [form id="3"]. Parse swaps each occurrence for a placeholder token and
// reports which widgets the renderer has to resolve. Placeholders use a
// shape the shortcode grammar can never produce, so parsing already-parsed
// content finds nothing.

// Component is one widget reference extracted from content.
type Component struct {
	Type        string `json:"type"`
	ID          int    `json:"id"`
	Placeholder string `json:"placeholder"`
}

// Result is a render plan: the content with placeholders substituted in and
// the components to interleave at render time. When Components is empty,
// ParsedContent equals the input and the caller renders it verbatim.
type Result struct {
	ParsedContent string      `json:"parsedContent"`
	Components    []Component `json:"components"`
}

// Fragment is one piece of parsed content: either literal markup or a
// placeholder slot to be filled with a resolved component.
type Fragment struct {
	Literal     string
	Placeholder string
}

// patterns maps widget kinds to their shortcode syntax. New widget kinds
// register here.
var patterns = []struct {
	kind  string
	regex *regexp.Regexp
}{
	{kind: "form", regex: regexp.MustCompile(`\[form\s+id="(\d+)"\]`)},
}

var placeholderRegex = regexp.MustCompile(`__[A-Z]+_\d+_[0-9a-f]{8}__`)

// Parse extracts all shortcodes from content and returns the render plan.
func Parse(content string) Result {
	result := Result{
		ParsedContent: content,
		Components:    []Component{},
	}

	for _, p := range patterns {
		offset := 0
		for {
			match := p.regex.FindStringSubmatchIndex(result.ParsedContent[offset:])
			if match == nil {
				break
			}
			start, end := offset+match[0], offset+match[1]

			id, err := strconv.Atoi(result.ParsedContent[offset+match[2] : offset+match[3]])
			if err != nil {
				// An id too large for int: leave the shortcode as
				// literal text and keep scanning past it.
				offset = end
				continue
			}

			placeholder := newPlaceholder(p.kind, id)
			result.Components = append(result.Components, Component{
				Type:        p.kind,
				ID:          id,
				Placeholder: placeholder,
			})
			result.ParsedContent = result.ParsedContent[:start] + placeholder + result.ParsedContent[end:]
			offset = start + len(placeholder)
		}
	}

	return result
}

// Split breaks parsed content into literal fragments and placeholder slots,
// in document order, for the renderer to interleave.
func Split(parsed string) []Fragment {
	matches := placeholderRegex.FindAllStringIndex(parsed, -1)
	if len(matches) == 0 {
		return []Fragment{{Literal: parsed}}
	}

	fragments := make([]Fragment, 0, len(matches)*2+1)
	cursor := 0
	for _, match := range matches {
		if match[0] > cursor {
			fragments = append(fragments, Fragment{Literal: parsed[cursor:match[0]]})
		}
		fragments = append(fragments, Fragment{Placeholder: parsed[match[0]:match[1]]})
		cursor = match[1]
	}
	if cursor < len(parsed) {
		fragments = append(fragments, Fragment{Literal: parsed[cursor:]})
	}
	return fragments
}

// newPlaceholder builds a token like __FORM_3_9f2c41aa__. The nonce keeps
// repeated references to the same widget distinct within one document.
func newPlaceholder(kind string, id int) string {
	return fmt.Sprintf("__%s_%d_%s__", strings.ToUpper(kind), id, nonce())
}

func nonce() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(buf)
}
