package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"launchkit-backend/internal/document"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
	"launchkit-backend/pkg/cache"
)

type memoryPageRepository struct {
	pages  map[uint]models.LandingPage
	nextID uint
}

func newMemoryPageRepository() *memoryPageRepository {
	return &memoryPageRepository{pages: make(map[uint]models.LandingPage), nextID: 1}
}

func (m *memoryPageRepository) Create(page *models.LandingPage) error {
	page.ID = m.nextID
	m.nextID++
	m.pages[page.ID] = *page
	return nil
}

func (m *memoryPageRepository) Update(page *models.LandingPage) error {
	if _, ok := m.pages[page.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.pages[page.ID] = *page
	return nil
}

func (m *memoryPageRepository) Delete(id uint) error {
	delete(m.pages, id)
	return nil
}

func (m *memoryPageRepository) GetByID(id uint) (*models.LandingPage, error) {
	page, ok := m.pages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &page, nil
}

func (m *memoryPageRepository) GetBySlug(slug string) (*models.LandingPage, error) {
	for _, page := range m.pages {
		if page.Slug == slug && page.Published {
			p := page
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryPageRepository) GetBySlugAny(slug string) (*models.LandingPage, error) {
	for _, page := range m.pages {
		if page.Slug == slug {
			p := page
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryPageRepository) GetAll() ([]models.LandingPage, error) {
	out := make([]models.LandingPage, 0, len(m.pages))
	for _, page := range m.pages {
		if page.Published {
			out = append(out, page)
		}
	}
	return out, nil
}

func (m *memoryPageRepository) GetAllAdmin() ([]models.LandingPage, error) {
	out := make([]models.LandingPage, 0, len(m.pages))
	for _, page := range m.pages {
		out = append(out, page)
	}
	return out, nil
}

func (m *memoryPageRepository) ExistsBySlug(slug string) (bool, error) {
	_, err := m.GetBySlugAny(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memoryPageRepository) Count() (int64, error) {
	return int64(len(m.pages)), nil
}

var _ repository.PageRepository = (*memoryPageRepository)(nil)

func newTestPageService() (*PageService, *memoryPageRepository) {
	repo := newMemoryPageRepository()
	c, _ := cache.NewCache("", false)
	return NewPageService(repo, c), repo
}

func sectionsOf(t *testing.T, service *PageService, pageID uint) []models.Section {
	t.Helper()
	page, err := service.GetByID(pageID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	list, _ := document.Deserialize(page.Content)
	return list
}

func TestCreateFromTemplate(t *testing.T) {
	service, _ := newTestPageService()

	page, err := service.Create(models.CreatePageRequest{Title: "Guide", Template: "lead-magnet"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	list := sectionsOf(t, service, page.ID)
	if len(list) != 2 {
		t.Fatalf("expected 2 sections from lead-magnet, got %d", len(list))
	}
	if list[0].Type != "hero" || list[1].Type != "form" {
		t.Fatalf("unexpected section types %s/%s", list[0].Type, list[1].Type)
	}
	if page.Slug != "guide" {
		t.Fatalf("expected slug derived from title, got %q", page.Slug)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	service, _ := newTestPageService()

	if _, err := service.Create(models.CreatePageRequest{Title: "Home", Slug: "home"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := service.Create(models.CreatePageRequest{Title: "Other", Slug: "home"})
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestAddSectionAppends(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Blank"})

	if _, err := service.AddSection(page.ID, models.AddSectionRequest{Type: "hero", Variant: "split"}); err != nil {
		t.Fatalf("AddSection returned error: %v", err)
	}

	list := sectionsOf(t, service, page.ID)
	if len(list) != 1 || list[0].Type != "hero" || list[0].Variant != "split" {
		t.Fatalf("unexpected document after add: %+v", list)
	}
}

func TestMoveSectionBoundaryIsNoOp(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "saas"})

	before := sectionsOf(t, service, page.ID)

	if _, err := service.MoveSection(page.ID, models.MoveSectionRequest{Index: 0, Direction: "up"}); err != nil {
		t.Fatalf("MoveSection returned error: %v", err)
	}

	after := sectionsOf(t, service, page.ID)
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Fatalf("boundary move must not change order, index %d differs", i)
		}
	}
}

func TestReorderSections(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "saas"})

	before := sectionsOf(t, service, page.ID)

	if _, err := service.ReorderSections(page.ID, models.ReorderSectionsRequest{FromIndex: 0, ToIndex: 2}); err != nil {
		t.Fatalf("ReorderSections returned error: %v", err)
	}

	after := sectionsOf(t, service, page.ID)
	if after[2].ID != before[0].ID {
		t.Fatalf("expected first section moved to index 2")
	}
	if after[0].ID != before[1].ID {
		t.Fatalf("expected remaining sections to shift up")
	}
}

func TestDuplicateSectionAddsClone(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "lead-magnet"})

	before := sectionsOf(t, service, page.ID)

	if _, err := service.DuplicateSection(page.ID, before[0].ID); err != nil {
		t.Fatalf("DuplicateSection returned error: %v", err)
	}

	after := sectionsOf(t, service, page.ID)
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d sections, got %d", len(before)+1, len(after))
	}
	if after[1].Type != before[0].Type {
		t.Fatalf("clone must sit directly after the source")
	}
	if after[1].ID == before[0].ID {
		t.Fatal("clone must have a fresh id")
	}
}

func TestDeleteSectionUnknownIDKeepsDocument(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "lead-magnet"})

	before := sectionsOf(t, service, page.ID)

	if _, err := service.DeleteSection(page.ID, "no-such-id"); err != nil {
		t.Fatalf("DeleteSection with unknown id must not error, got %v", err)
	}

	after := sectionsOf(t, service, page.ID)
	if len(after) != len(before) {
		t.Fatalf("unknown id must be a no-op, got %d sections", len(after))
	}
}

func TestUpdateSectionPatchesContent(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "lead-magnet"})

	target := sectionsOf(t, service, page.ID)[0]
	content := map[string]interface{}{"heading": "New headline"}

	if _, err := service.UpdateSection(page.ID, target.ID, models.UpdateSectionRequest{Content: &content}); err != nil {
		t.Fatalf("UpdateSection returned error: %v", err)
	}

	updated := sectionsOf(t, service, page.ID)[0]
	if updated.Content["heading"] != "New headline" {
		t.Fatalf("content not applied: %+v", updated.Content)
	}
	if updated.Type != target.Type {
		t.Fatal("type must survive a content patch")
	}
}

func TestUpdateSectionUnknownIDErrors(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "lead-magnet"})

	_, err := service.UpdateSection(page.ID, "missing", models.UpdateSectionRequest{})
	if !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}

func TestUpdateSectionTypeIsImmutable(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "lead-magnet"})

	target := sectionsOf(t, service, page.ID)[0]
	newType := "cta"

	_, err := service.UpdateSection(page.ID, target.ID, models.UpdateSectionRequest{Type: &newType})
	if !errors.Is(err, ErrTypeImmutable) {
		t.Fatalf("expected ErrTypeImmutable, got %v", err)
	}
}

func TestUpdateGlobalStyles(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "lead-magnet"})

	styles := document.DefaultGlobalStyles()
	styles.PrimaryColor = "#000000"

	if _, err := service.UpdateGlobalStyles(page.ID, styles); err != nil {
		t.Fatalf("UpdateGlobalStyles returned error: %v", err)
	}

	_, doc, err := service.Document(page.ID)
	if err != nil {
		t.Fatalf("Document returned error: %v", err)
	}
	if doc.GlobalStyles.PrimaryColor != "#000000" {
		t.Fatalf("styles not applied: %+v", doc.GlobalStyles)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("section list must survive a style update, got %d", len(doc.Sections))
	}
}

func TestDuplicatePageRegeneratesSectionIDs(t *testing.T) {
	service, _ := newTestPageService()
	page, _ := service.Create(models.CreatePageRequest{Title: "Page", Template: "lead-magnet", Published: true})

	dup, err := service.Duplicate(page.ID)
	if err != nil {
		t.Fatalf("Duplicate returned error: %v", err)
	}

	if dup.Published {
		t.Fatal("duplicate must start as a draft")
	}
	if dup.Slug == page.Slug {
		t.Fatal("duplicate must get a distinct slug")
	}

	originals := sectionsOf(t, service, page.ID)
	copies := sectionsOf(t, service, dup.ID)
	if len(copies) != len(originals) {
		t.Fatalf("expected %d sections in copy, got %d", len(originals), len(copies))
	}
	for i := range copies {
		if copies[i].ID == originals[i].ID {
			t.Fatalf("section %d shares an id with the original", i)
		}
	}
}

func TestGetBySlugOnlyFindsPublished(t *testing.T) {
	service, _ := newTestPageService()
	if _, err := service.Create(models.CreatePageRequest{Title: "Draft", Slug: "draft"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err := service.GetBySlug("draft")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for draft page, got %v", err)
	}
}
