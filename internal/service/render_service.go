package service

import (
	"strconv"

	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/document"
	"launchkit-backend/internal/metrics"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
	"launchkit-backend/internal/shortcode"
	"launchkit-backend/pkg/cache"
	"launchkit-backend/pkg/logger"
	"launchkit-backend/pkg/validator"
)

// RenderService turns a stored page into the render plan the public site
// consumes: deserialized sections with shortcodes resolved against the form
// registry and literal HTML sanitized.
type RenderService struct {
	formRepo repository.FormRepository
	cache    *cache.Cache
}

func NewRenderService(formRepo repository.FormRepository, c *cache.Cache) *RenderService {
	return &RenderService{
		formRepo: formRepo,
		cache:    c,
	}
}

type RenderedPage struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Excerpt      string              `json:"excerpt,omitempty"`
	GlobalStyles models.GlobalStyles `json:"globalStyles"`
	Sections     []RenderedSection   `json:"sections"`
}

type RenderedSection struct {
	Section models.Section `json:"section"`
	// Fragments interleave literal HTML with resolved form embeds, in
	// document order. Empty when the section holds no rich-text content.
	Fragments []RenderFragment `json:"fragments,omitempty"`
	// Form is the resolved registry entry for form-type sections.
	Form *models.Form `json:"form,omitempty"`
}

type RenderFragment struct {
	HTML string       `json:"html,omitempty"`
	Form *models.Form `json:"form,omitempty"`
}

// RenderPage builds the render plan for a page. Published pages are served
// from the render cache when possible; a cache failure just means a rebuild.
func (s *RenderService) RenderPage(page *models.LandingPage) *RenderedPage {
	metrics.PageRenders.Inc()

	if page.Published {
		var cached RenderedPage
		if err := s.cache.GetCachedRenderedPage(page.Slug, &cached); err == nil {
			return &cached
		}
	}

	list, styles := document.Deserialize(page.Content)

	rendered := &RenderedPage{
		ID:           page.ID,
		Title:        page.Title,
		Slug:         page.Slug,
		Excerpt:      page.Excerpt,
		GlobalStyles: styles,
		Sections:     make([]RenderedSection, 0, len(list)),
	}

	for _, section := range list {
		rendered.Sections = append(rendered.Sections, s.renderSection(section))
	}

	if page.Published {
		if err := s.cache.CacheRenderedPage(page.Slug, rendered); err != nil {
			logger.Warn("Failed to cache rendered page", map[string]interface{}{"slug": page.Slug, "error": err.Error()})
		}
	}

	return rendered
}

func (s *RenderService) renderSection(section models.Section) RenderedSection {
	out := RenderedSection{Section: section}

	switch section.Type {
	case constants.SectionTypeHTML:
		out.Fragments = s.renderRichText(getString(section.Content, "html"), true)
	case constants.SectionTypeCode:
		// Code sections are admin-authored by design; sanitizing would strip
		// the scripts they exist to carry.
		out.Fragments = s.renderRichText(getString(section.Content, "html"), false)
	case constants.SectionTypeForm:
		out.Form = s.resolveForm(getString(section.Content, "formId"))
	}

	return out
}

// renderRichText resolves [form id="N"] shortcodes into form embeds. With no
// shortcodes present the content comes back as a single verbatim fragment.
// A missing form id renders nothing in its slot; the rest of the document is
// unaffected.
func (s *RenderService) renderRichText(content string, sanitize bool) []RenderFragment {
	if content == "" {
		return nil
	}

	result := shortcode.Parse(content)

	byPlaceholder := make(map[string]shortcode.Component, len(result.Components))
	for _, component := range result.Components {
		byPlaceholder[component.Placeholder] = component
	}

	fragments := make([]RenderFragment, 0, len(result.Components)*2+1)
	for _, fragment := range shortcode.Split(result.ParsedContent) {
		if fragment.Placeholder == "" {
			html := fragment.Literal
			if sanitize {
				html = validator.SanitizeHTML(html)
			}
			fragments = append(fragments, RenderFragment{HTML: html})
			continue
		}

		component, ok := byPlaceholder[fragment.Placeholder]
		if !ok {
			continue
		}
		if form := s.resolveForm(strconv.Itoa(component.ID)); form != nil {
			fragments = append(fragments, RenderFragment{Form: form})
		}
	}
	return fragments
}

func (s *RenderService) resolveForm(id string) *models.Form {
	if id == "" {
		return nil
	}

	formID, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		logger.Warn("Invalid form reference in section content", map[string]interface{}{"form_id": id})
		return nil
	}

	form, err := s.formRepo.GetByID(uint(formID))
	if err != nil {
		logger.Warn("Form referenced by section does not exist", map[string]interface{}{"form_id": id})
		return nil
	}
	return form
}

func getString(content map[string]interface{}, key string) string {
	if content == nil {
		return ""
	}
	if value, ok := content[key].(string); ok {
		return value
	}
	return ""
}
