package repository

import (
	"launchkit-backend/internal/models"

	"gorm.io/gorm"
)

// FormRepository backs the widget registry shortcodes resolve against.
type FormRepository interface {
	Create(form *models.Form) error
	Update(form *models.Form) error
	Delete(id uint) error
	GetByID(id uint) (*models.Form, error)
	GetAll() ([]models.Form, error)
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *models.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) Update(form *models.Form) error {
	return r.db.Save(form).Error
}

func (r *formRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Form{}, id).Error
}

func (r *formRepository) GetByID(id uint) (*models.Form, error) {
	var form models.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) GetAll() ([]models.Form, error) {
	var forms []models.Form
	if err := r.db.Order("name ASC").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}
