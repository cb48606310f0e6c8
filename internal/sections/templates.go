package sections

import (
	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/models"
)

// Template is a static, pre-built starting document used to seed new pages.
type Template struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Excerpt     string           `json:"excerpt"`
	Sections    []models.Section `json:"sections"`
}

// Instance is a template copied out of the catalog, ready to become a page.
type Instance struct {
	Title    string           `json:"title"`
	Slug     string           `json:"slug"`
	Excerpt  string           `json:"excerpt"`
	Sections []models.Section `json:"sections"`
}

// DefaultTemplateKey is the fallback for unknown keys. Callers that need a
// strict lookup must check Has first.
const DefaultTemplateKey = "blank"

type templateSection struct {
	typ     string
	variant string
	content map[string]interface{}
}

// catalog entries list type/variant plus content overrides; the full section
// is materialised at instantiation so catalog data is never shared by value
// with a document.
var catalog = []struct {
	key         string
	name        string
	description string
	title       string
	slug        string
	excerpt     string
	sections    []templateSection
}{
	{
		key:         DefaultTemplateKey,
		name:        "Blank Page",
		description: "Start from scratch",
		title:       "Untitled Page",
		slug:        "untitled",
	},
	{
		key:         "lead-magnet",
		name:        "Lead Magnet",
		description: "Hero with a signup form",
		title:       "Free Guide",
		slug:        "free-guide",
		excerpt:     "Capture leads with a downloadable offer.",
		sections: []templateSection{
			{typ: constants.SectionTypeHero, variant: "centered", content: map[string]interface{}{
				"heading":    "Get the free guide",
				"subheading": "Everything you need to know, in one download.",
				"buttonText": "Download now",
			}},
			{typ: constants.SectionTypeForm, content: map[string]interface{}{
				"heading":    "Where should we send it?",
				"buttonText": "Send me the guide",
			}},
		},
	},
	{
		key:         "saas",
		name:        "SaaS Landing",
		description: "Hero, features, pricing and FAQ",
		title:       "Home",
		slug:        "home",
		excerpt:     "A complete product landing page.",
		sections: []templateSection{
			{typ: constants.SectionTypeHero, variant: "split"},
			{typ: constants.SectionTypeLogos},
			{typ: constants.SectionTypeFeatures, variant: "grid"},
			{typ: constants.SectionTypeTestimonials, variant: "cards"},
			{typ: constants.SectionTypePricing, variant: "columns"},
			{typ: constants.SectionTypeFAQ, variant: "accordion"},
			{typ: constants.SectionTypeCTA, variant: "banner"},
		},
	},
	{
		key:         "agency",
		name:        "Agency",
		description: "Portfolio-style presentation with contact form",
		title:       "Our Work",
		slug:        "our-work",
		sections: []templateSection{
			{typ: constants.SectionTypeHero, variant: "centered"},
			{typ: constants.SectionTypeStats, variant: "row"},
			{typ: constants.SectionTypeFeatures, variant: "alternating"},
			{typ: constants.SectionTypeTestimonials, variant: "single"},
			{typ: constants.SectionTypeForm},
		},
	},
	{
		key:         "webinar",
		name:        "Webinar Registration",
		description: "Video teaser with a registration form",
		title:       "Live Webinar",
		slug:        "webinar",
		excerpt:     "Drive registrations for a live event.",
		sections: []templateSection{
			{typ: constants.SectionTypeHero, variant: "video"},
			{typ: constants.SectionTypeVideo},
			{typ: constants.SectionTypeStats, variant: "row"},
			{typ: constants.SectionTypeForm, content: map[string]interface{}{
				"heading":    "Save your seat",
				"buttonText": "Register",
			}},
		},
	},
}

// Templates returns catalog metadata for the builder's template picker.
// Sections are instantiated copies, safe for the caller to inspect or drop.
func Templates() []Template {
	out := make([]Template, 0, len(catalog))
	for _, entry := range catalog {
		out = append(out, Template{
			Key:         entry.key,
			Name:        entry.name,
			Description: entry.description,
			Title:       entry.title,
			Slug:        entry.slug,
			Excerpt:     entry.excerpt,
			Sections:    buildSections(entry.sections),
		})
	}
	return out
}

// Has reports whether key names a catalog template.
func Has(key string) bool {
	for _, entry := range catalog {
		if entry.key == key {
			return true
		}
	}
	return false
}

// Instantiate copies the template for key out of the catalog with freshly
// generated section ids. An unknown key falls back to the blank template.
func Instantiate(key string) Instance {
	for _, entry := range catalog {
		if entry.key == key {
			return Instance{
				Title:    entry.title,
				Slug:     entry.slug,
				Excerpt:  entry.excerpt,
				Sections: buildSections(entry.sections),
			}
		}
	}
	return Instantiate(DefaultTemplateKey)
}

func buildSections(specs []templateSection) []models.Section {
	out := make([]models.Section, 0, len(specs))
	for _, spec := range specs {
		section := New(spec.typ, spec.variant)
		for key, value := range spec.content {
			section.Content[key] = value
		}
		out = append(out, section)
	}
	return out
}
