package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"launchkit-backend/internal/document"
	"launchkit-backend/internal/metrics"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
	"launchkit-backend/internal/sections"
	"launchkit-backend/pkg/cache"
	"launchkit-backend/pkg/logger"
)

type PageService struct {
	pageRepo repository.PageRepository
	cache    *cache.Cache
}

func NewPageService(pageRepo repository.PageRepository, c *cache.Cache) *PageService {
	return &PageService{
		pageRepo: pageRepo,
		cache:    c,
	}
}

// Create builds a new page, empty or seeded from a template. An unknown
// template key falls back to the blank template; callers wanting a strict
// lookup check sections.Has first.
func (s *PageService) Create(req models.CreatePageRequest) (*models.LandingPage, error) {
	instance := sections.Instantiate(req.Template)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = instance.Title
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(title)
	}

	taken, err := s.pageRepo.ExistsBySlug(slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	content, err := document.Serialize(instance.Sections, document.DefaultGlobalStyles())
	if err != nil {
		return nil, err
	}

	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = instance.Excerpt
	}

	page := &models.LandingPage{
		Title:     title,
		Slug:      slug,
		Excerpt:   excerpt,
		Published: req.Published,
		Content:   content,
	}

	if err := s.pageRepo.Create(page); err != nil {
		return nil, err
	}

	return page, nil
}

func (s *PageService) GetByID(id uint) (*models.LandingPage, error) {
	page, err := s.pageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *PageService) GetBySlug(slug string) (*models.LandingPage, error) {
	page, err := s.pageRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *PageService) GetAll() ([]models.LandingPage, error) {
	return s.pageRepo.GetAll()
}

func (s *PageService) GetAllAdmin() ([]models.LandingPage, error) {
	return s.pageRepo.GetAllAdmin()
}

// Update patches page metadata. Document content moves only through the
// builder operations, never through this method.
func (s *PageService) Update(id uint, req models.UpdatePageRequest) (*models.LandingPage, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldSlug := page.Slug

	if req.Title != nil {
		page.Title = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != oldSlug {
		slug := strings.TrimSpace(*req.Slug)
		taken, err := s.pageRepo.ExistsBySlug(slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
		page.Slug = slug
	}
	if req.Excerpt != nil {
		page.Excerpt = *req.Excerpt
	}
	if req.Published != nil {
		page.Published = *req.Published
		if *req.Published && page.PublishedAt == nil {
			now := time.Now().UTC()
			page.PublishedAt = &now
		}
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, err
	}

	s.invalidateRender(oldSlug)
	s.invalidateRender(page.Slug)
	return page, nil
}

func (s *PageService) Delete(id uint) error {
	page, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.pageRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateRender(page.Slug)
	return nil
}

// Duplicate copies a page, regenerating every section id so the copy shares
// nothing with the original. The copy starts as a draft.
func (s *PageService) Duplicate(id uint) (*models.LandingPage, error) {
	original, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	list, styles := document.Deserialize(original.Content)
	copied := make([]models.Section, 0, len(list))
	for _, section := range list {
		copied = append(copied, sections.Clone(section))
	}

	content, err := document.Serialize(copied, styles)
	if err != nil {
		return nil, err
	}

	duplicate := &models.LandingPage{
		Title:     fmt.Sprintf("%s (Copy)", original.Title),
		Slug:      fmt.Sprintf("%s-copy-%d", original.Slug, time.Now().Unix()),
		Excerpt:   original.Excerpt,
		Published: false,
		Content:   content,
	}

	if err := s.pageRepo.Create(duplicate); err != nil {
		return nil, err
	}

	return duplicate, nil
}

// Templates lists the catalog for the builder's template picker.
func (s *PageService) Templates() []sections.Template {
	return sections.Templates()
}

// Document returns the deserialized document for the builder UI.
func (s *PageService) Document(id uint) (*models.LandingPage, models.Document, error) {
	page, err := s.GetByID(id)
	if err != nil {
		return nil, models.Document{}, err
	}

	list, styles := document.Deserialize(page.Content)
	return page, models.Document{
		Sections:     list,
		GlobalStyles: styles,
		Version:      models.DocumentVersion,
	}, nil
}

// saveDocument serializes the edited document back onto the page row. On a
// persistence error the caller's in-memory document is untouched, so the
// edit can be retried without data loss.
func (s *PageService) saveDocument(page *models.LandingPage, list []models.Section, styles models.GlobalStyles) error {
	content, err := document.Serialize(list, styles)
	if err != nil {
		return err
	}

	page.Content = content
	if err := s.pageRepo.Update(page); err != nil {
		return err
	}

	metrics.PageSaves.Inc()
	s.invalidateRender(page.Slug)
	return nil
}

func (s *PageService) invalidateRender(slug string) {
	if err := s.cache.InvalidateRenderedPage(slug); err != nil {
		logger.Warn("Failed to invalidate render cache", map[string]interface{}{"slug": slug, "error": err.Error()})
	}
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = fmt.Sprintf("page-%d", time.Now().Unix())
	}
	return slug
}
