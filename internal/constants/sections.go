package constants

import "strings"

const (
	// SectionTypeHero is the full-width opening block of a landing page.
	SectionTypeHero = "hero"
	// SectionTypeFeatures renders a grid of icon/title/description items.
	SectionTypeFeatures = "features"
	// SectionTypeTestimonials renders customer quotes.
	SectionTypeTestimonials = "testimonials"
	// SectionTypeCTA renders a call-to-action banner.
	SectionTypeCTA = "cta"
	// SectionTypePricing renders pricing plan cards.
	SectionTypePricing = "pricing"
	// SectionTypeStats renders a row of headline numbers.
	SectionTypeStats = "stats"
	// SectionTypeFAQ renders question/answer pairs.
	SectionTypeFAQ = "faq"
	// SectionTypeForm embeds a form from the form registry.
	SectionTypeForm = "form"
	// SectionTypeVideo embeds a video player.
	SectionTypeVideo = "video"
	// SectionTypeLogos renders a logo strip.
	SectionTypeLogos = "logos"
	// SectionTypeHTML holds raw rich-text/HTML content, shortcodes included.
	SectionTypeHTML = "html"
	// SectionTypeCode holds raw html/css/js authored in the code editor.
	SectionTypeCode = "code"
)

// DefaultSectionType is used when a request omits or misspells the type.
const DefaultSectionType = SectionTypeHTML

var sectionTypes = []string{
	SectionTypeHero,
	SectionTypeFeatures,
	SectionTypeTestimonials,
	SectionTypeCTA,
	SectionTypePricing,
	SectionTypeStats,
	SectionTypeFAQ,
	SectionTypeForm,
	SectionTypeVideo,
	SectionTypeLogos,
	SectionTypeHTML,
	SectionTypeCode,
}

var sectionVariants = map[string][]string{
	SectionTypeHero:         {"centered", "split", "video"},
	SectionTypeFeatures:     {"grid", "list", "alternating"},
	SectionTypeTestimonials: {"cards", "carousel", "single"},
	SectionTypeCTA:          {"banner", "boxed"},
	SectionTypePricing:      {"columns", "table"},
	SectionTypeStats:        {"row", "grid"},
	SectionTypeFAQ:          {"accordion", "list"},
	SectionTypeForm:         {"inline", "stacked"},
	SectionTypeVideo:        {"full", "boxed"},
	SectionTypeLogos:        {"strip", "grid"},
}

// SectionTypes returns the closed set of section types.
// A copy of the slice is returned to prevent external mutation of the internal list.
func SectionTypes() []string {
	types := make([]string, len(sectionTypes))
	copy(types, sectionTypes)
	return types
}

// SectionVariants returns the variants available for a section type, empty
// for types that have none.
func SectionVariants(sectionType string) []string {
	variants := sectionVariants[NormaliseSectionType(sectionType)]
	out := make([]string, len(variants))
	copy(out, variants)
	return out
}

// IsSectionType reports whether value names a known section type.
func IsSectionType(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	for _, t := range sectionTypes {
		if t == value {
			return true
		}
	}
	return false
}

// NormaliseSectionType returns a known section type or the default.
func NormaliseSectionType(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if IsSectionType(value) {
		return value
	}
	return DefaultSectionType
}

// NormaliseSectionVariant returns a variant valid for the given type, or the
// type's first variant when the value is unknown. Types without variants
// always yield the empty string.
func NormaliseSectionVariant(sectionType, value string) string {
	variants, ok := sectionVariants[NormaliseSectionType(sectionType)]
	if !ok || len(variants) == 0 {
		return ""
	}
	value = strings.TrimSpace(strings.ToLower(value))
	for _, v := range variants {
		if v == value {
			return value
		}
	}
	return variants[0]
}
