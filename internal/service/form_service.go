package service

import (
	"errors"

	"gorm.io/gorm"

	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
)

// FormService exposes the widget registry. Submission handling and field
// rendering live with the form collaborator; this service only answers
// "which forms exist" for the builder and the shortcode resolver.
type FormService struct {
	formRepo repository.FormRepository
}

func NewFormService(formRepo repository.FormRepository) *FormService {
	return &FormService{formRepo: formRepo}
}

func (s *FormService) Create(req models.CreateFormRequest) (*models.Form, error) {
	form := &models.Form{
		Name:   req.Name,
		Fields: req.Fields,
	}
	if err := s.formRepo.Create(form); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *FormService) GetByID(id uint) (*models.Form, error) {
	form, err := s.formRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return form, nil
}

func (s *FormService) GetAll() ([]models.Form, error) {
	return s.formRepo.GetAll()
}

func (s *FormService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.formRepo.Delete(id)
}
