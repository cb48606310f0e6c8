package sections

import "launchkit-backend/internal/constants"

// contentDefaults maps each section type to a factory for its content shape.
// Editors and renderers rely on every key being present from the moment a
// section is created; a missing key is a bug here, not in the renderer.
var contentDefaults = map[string]func() map[string]interface{}{
	constants.SectionTypeHero: func() map[string]interface{} {
		return map[string]interface{}{
			"heading":          "Your headline here",
			"subheading":       "Explain the value in one sentence.",
			"buttonText":       "Get started",
			"buttonLink":       "#",
			"image":            "",
			"videoUrl":         "",
			"secondaryCtaText": "",
			"secondaryCtaLink": "",
		}
	},
	constants.SectionTypeFeatures: func() map[string]interface{} {
		return map[string]interface{}{
			"heading":    "Features",
			"subheading": "",
			"items": []interface{}{
				map[string]interface{}{"icon": "zap", "title": "Fast", "description": "Describe this feature."},
				map[string]interface{}{"icon": "shield", "title": "Secure", "description": "Describe this feature."},
				map[string]interface{}{"icon": "heart", "title": "Loved", "description": "Describe this feature."},
			},
		}
	},
	constants.SectionTypeTestimonials: func() map[string]interface{} {
		return map[string]interface{}{
			"heading": "What customers say",
			"items": []interface{}{
				map[string]interface{}{"quote": "This changed how we work.", "author": "Jane Doe", "role": "CEO, Example", "avatar": ""},
			},
		}
	},
	constants.SectionTypeCTA: func() map[string]interface{} {
		return map[string]interface{}{
			"heading":    "Ready to get started?",
			"subheading": "",
			"buttonText": "Sign up free",
			"buttonLink": "#",
		}
	},
	constants.SectionTypePricing: func() map[string]interface{} {
		return map[string]interface{}{
			"heading": "Pricing",
			"plans": []interface{}{
				map[string]interface{}{
					"name":       "Starter",
					"price":      "0",
					"period":     "month",
					"features":   []interface{}{"Feature one", "Feature two"},
					"buttonText": "Choose plan",
					"buttonLink": "#",
					"featured":   false,
				},
			},
		}
	},
	constants.SectionTypeStats: func() map[string]interface{} {
		return map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{"value": "10k+", "label": "Users"},
				map[string]interface{}{"value": "99.9%", "label": "Uptime"},
			},
		}
	},
	constants.SectionTypeFAQ: func() map[string]interface{} {
		return map[string]interface{}{
			"heading": "Frequently asked questions",
			"items": []interface{}{
				map[string]interface{}{"question": "How does it work?", "answer": "Answer goes here."},
			},
		}
	},
	constants.SectionTypeForm: func() map[string]interface{} {
		return map[string]interface{}{
			"heading":     "",
			"description": "",
			"formId":      "",
			"buttonText":  "Submit",
		}
	},
	constants.SectionTypeVideo: func() map[string]interface{} {
		return map[string]interface{}{
			"heading": "",
			"url":     "",
			"caption": "",
		}
	},
	constants.SectionTypeLogos: func() map[string]interface{} {
		return map[string]interface{}{
			"heading": "Trusted by",
			"items":   []interface{}{},
		}
	},
	constants.SectionTypeHTML: func() map[string]interface{} {
		return map[string]interface{}{
			"html": "",
		}
	},
	constants.SectionTypeCode: func() map[string]interface{} {
		return map[string]interface{}{
			"html": "",
			"css":  "",
			"js":   "",
		}
	},
}

var styleDefaults = map[string]func() map[string]interface{}{}

func defaultContent(sectionType string) map[string]interface{} {
	if factory, ok := contentDefaults[sectionType]; ok {
		return factory()
	}
	return map[string]interface{}{}
}

// defaultStyles is shared across types unless a type registers its own.
func defaultStyles(sectionType string) map[string]interface{} {
	if factory, ok := styleDefaults[sectionType]; ok {
		return factory()
	}
	return map[string]interface{}{
		"backgroundColor": "transparent",
		"textColor":       "inherit",
		"padding":         "64px 0",
		"alignment":       "left",
	}
}
