package repository

import (
	"time"

	"launchkit-backend/internal/models"

	"gorm.io/gorm"
)

type PageRepository interface {
	Create(page *models.LandingPage) error
	Update(page *models.LandingPage) error
	Delete(id uint) error
	GetByID(id uint) (*models.LandingPage, error)
	GetBySlug(slug string) (*models.LandingPage, error)
	GetBySlugAny(slug string) (*models.LandingPage, error)
	GetAll() ([]models.LandingPage, error)
	GetAllAdmin() ([]models.LandingPage, error)
	ExistsBySlug(slug string) (bool, error)
	Count() (int64, error)
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(page *models.LandingPage) error {
	return r.db.Create(page).Error
}

func (r *pageRepository) Update(page *models.LandingPage) error {
	return r.db.Save(page).Error
}

func (r *pageRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.LandingPage{}, id).Error
}

func (r *pageRepository) GetByID(id uint) (*models.LandingPage, error) {
	var page models.LandingPage
	if err := r.db.First(&page, id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBySlug returns only pages visible to the public site: published and
// inside their publish window.
func (r *pageRepository) GetBySlug(slug string) (*models.LandingPage, error) {
	var page models.LandingPage
	now := time.Now().UTC()

	if err := r.db.Where("slug = ? AND published = ?", slug, true).
		Where("publish_at IS NULL OR publish_at <= ?", now).
		First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetBySlugAny(slug string) (*models.LandingPage, error) {
	var page models.LandingPage
	if err := r.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetAll() ([]models.LandingPage, error) {
	var pages []models.LandingPage
	now := time.Now().UTC()

	if err := r.db.Where("published = ?", true).
		Where("publish_at IS NULL OR publish_at <= ?", now).
		Order("created_at DESC").
		Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) GetAllAdmin() ([]models.LandingPage, error) {
	var pages []models.LandingPage
	if err := r.db.Order("created_at DESC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.LandingPage{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pageRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.LandingPage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
