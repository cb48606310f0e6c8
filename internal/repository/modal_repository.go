package repository

import (
	"launchkit-backend/internal/models"

	"gorm.io/gorm"
)

type ModalRepository interface {
	Create(modal *models.Modal) error
	Update(modal *models.Modal) error
	Delete(id uint) error
	GetByID(id uint) (*models.Modal, error)
	GetAll() ([]models.Modal, error)
	GetActive() ([]models.Modal, error)
	Count() (int64, error)
}

type modalRepository struct {
	db *gorm.DB
}

func NewModalRepository(db *gorm.DB) ModalRepository {
	return &modalRepository{db: db}
}

func (r *modalRepository) Create(modal *models.Modal) error {
	return r.db.Create(modal).Error
}

func (r *modalRepository) Update(modal *models.Modal) error {
	return r.db.Save(modal).Error
}

func (r *modalRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Modal{}, id).Error
}

func (r *modalRepository) GetByID(id uint) (*models.Modal, error) {
	var modal models.Modal
	if err := r.db.First(&modal, id).Error; err != nil {
		return nil, err
	}
	return &modal, nil
}

func (r *modalRepository) GetAll() ([]models.Modal, error) {
	var modals []models.Modal
	if err := r.db.Order("created_at DESC").Find(&modals).Error; err != nil {
		return nil, err
	}
	return modals, nil
}

func (r *modalRepository) GetActive() ([]models.Modal, error) {
	var modals []models.Modal
	if err := r.db.Where("active = ?", true).Order("created_at DESC").Find(&modals).Error; err != nil {
		return nil, err
	}
	return modals, nil
}

func (r *modalRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Modal{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
