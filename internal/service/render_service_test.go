package service

import (
	"strings"
	"testing"

	"gorm.io/gorm"

	"launchkit-backend/internal/document"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
	"launchkit-backend/internal/sections"
	"launchkit-backend/pkg/cache"
)

type memoryFormRepository struct {
	forms  map[uint]models.Form
	nextID uint
}

func newMemoryFormRepository() *memoryFormRepository {
	return &memoryFormRepository{forms: make(map[uint]models.Form), nextID: 1}
}

func (m *memoryFormRepository) Create(form *models.Form) error {
	form.ID = m.nextID
	m.nextID++
	m.forms[form.ID] = *form
	return nil
}

func (m *memoryFormRepository) Update(form *models.Form) error {
	if _, ok := m.forms[form.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.forms[form.ID] = *form
	return nil
}

func (m *memoryFormRepository) Delete(id uint) error {
	delete(m.forms, id)
	return nil
}

func (m *memoryFormRepository) GetByID(id uint) (*models.Form, error) {
	form, ok := m.forms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &form, nil
}

func (m *memoryFormRepository) GetAll() ([]models.Form, error) {
	out := make([]models.Form, 0, len(m.forms))
	for _, form := range m.forms {
		out = append(out, form)
	}
	return out, nil
}

var _ repository.FormRepository = (*memoryFormRepository)(nil)

func newTestRenderService(t *testing.T) (*RenderService, *memoryFormRepository) {
	t.Helper()
	repo := newMemoryFormRepository()
	c, err := cache.NewCache("", false)
	if err != nil {
		t.Fatalf("cache init failed: %v", err)
	}
	return NewRenderService(repo, c), repo
}

func pageWithSections(t *testing.T, list []models.Section) *models.LandingPage {
	t.Helper()
	content, err := document.Serialize(list, document.DefaultGlobalStyles())
	if err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	return &models.LandingPage{ID: 1, Title: "Test", Slug: "test", Content: content}
}

func TestRenderPageResolvesFormShortcode(t *testing.T) {
	service, repo := newTestRenderService(t)

	form := &models.Form{Name: "Newsletter"}
	if err := repo.Create(form); err != nil {
		t.Fatalf("form create failed: %v", err)
	}

	section := sections.New("html", "")
	section.Content["html"] = `<p>Subscribe below</p>[form id="1"]<p>Thanks!</p>`
	page := pageWithSections(t, []models.Section{section})

	rendered := service.RenderPage(page)
	if len(rendered.Sections) != 1 {
		t.Fatalf("expected 1 rendered section, got %d", len(rendered.Sections))
	}

	fragments := rendered.Sections[0].Fragments
	if len(fragments) != 3 {
		t.Fatalf("expected literal/form/literal fragments, got %d", len(fragments))
	}
	if !strings.Contains(fragments[0].HTML, "Subscribe below") {
		t.Fatalf("unexpected first fragment: %+v", fragments[0])
	}
	if fragments[1].Form == nil || fragments[1].Form.Name != "Newsletter" {
		t.Fatalf("expected resolved form fragment, got %+v", fragments[1])
	}
}

func TestRenderPageSkipsMissingForm(t *testing.T) {
	service, _ := newTestRenderService(t)

	section := sections.New("html", "")
	section.Content["html"] = `<p>Before</p>[form id="42"]<p>After</p>`
	page := pageWithSections(t, []models.Section{section})

	rendered := service.RenderPage(page)
	fragments := rendered.Sections[0].Fragments

	for _, fragment := range fragments {
		if fragment.Form != nil {
			t.Fatalf("missing form must render nothing, got %+v", fragment)
		}
	}
	joined := ""
	for _, fragment := range fragments {
		joined += fragment.HTML
	}
	if !strings.Contains(joined, "Before") || !strings.Contains(joined, "After") {
		t.Fatalf("surrounding content must survive: %q", joined)
	}
}

func TestRenderPageSanitizesHTMLSections(t *testing.T) {
	service, _ := newTestRenderService(t)

	section := sections.New("html", "")
	section.Content["html"] = `<p>Safe</p><script>alert("x")</script>`
	page := pageWithSections(t, []models.Section{section})

	rendered := service.RenderPage(page)
	html := rendered.Sections[0].Fragments[0].HTML
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tags must be stripped from html sections, got %q", html)
	}
	if !strings.Contains(html, "Safe") {
		t.Fatalf("safe markup must survive, got %q", html)
	}
}

func TestRenderPageLeavesCodeSectionsVerbatim(t *testing.T) {
	service, _ := newTestRenderService(t)

	section := sections.New("code", "")
	section.Content["html"] = `<script>window.track()</script>`
	page := pageWithSections(t, []models.Section{section})

	rendered := service.RenderPage(page)
	html := rendered.Sections[0].Fragments[0].HTML
	if html != `<script>window.track()</script>` {
		t.Fatalf("code sections must pass through untouched, got %q", html)
	}
}

func TestRenderPageResolvesFormSection(t *testing.T) {
	service, repo := newTestRenderService(t)

	form := &models.Form{Name: "Contact"}
	if err := repo.Create(form); err != nil {
		t.Fatalf("form create failed: %v", err)
	}

	section := sections.New("form", "")
	section.Content["formId"] = "1"
	page := pageWithSections(t, []models.Section{section})

	rendered := service.RenderPage(page)
	if rendered.Sections[0].Form == nil || rendered.Sections[0].Form.Name != "Contact" {
		t.Fatalf("expected resolved form section, got %+v", rendered.Sections[0].Form)
	}
}

func TestRenderPageHandlesLegacyContent(t *testing.T) {
	service, _ := newTestRenderService(t)

	page := &models.LandingPage{ID: 1, Title: "Old", Slug: "old", Content: "<h1>Legacy page</h1>"}

	rendered := service.RenderPage(page)
	if len(rendered.Sections) != 1 {
		t.Fatalf("expected legacy wrap into one section, got %d", len(rendered.Sections))
	}
	if rendered.Sections[0].Section.Type != "html" {
		t.Fatalf("expected html section, got %q", rendered.Sections[0].Section.Type)
	}
	joined := ""
	for _, fragment := range rendered.Sections[0].Fragments {
		joined += fragment.HTML
	}
	if !strings.Contains(joined, "Legacy page") {
		t.Fatalf("legacy markup must render, got %q", joined)
	}
}
