package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/display"
	"launchkit-backend/internal/metrics"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
	"launchkit-backend/pkg/logger"
	"launchkit-backend/pkg/validator"
)

type ModalService struct {
	modalRepo repository.ModalRepository
	evaluator *display.Evaluator
}

func NewModalService(modalRepo repository.ModalRepository, history display.HistoryStore) *ModalService {
	return &ModalService{
		modalRepo: modalRepo,
		evaluator: display.NewEvaluator(history),
	}
}

// ModalCandidate is an active modal pre-filtered for a page and device, with
// the position already resolved for the device's breakpoint. The embedding
// script only wires up triggers for candidates.
type ModalCandidate struct {
	Modal    models.Modal             `json:"modal"`
	Position display.ResolvedPosition `json:"position"`
}

func (s *ModalService) Create(req models.CreateModalRequest) (*models.Modal, error) {
	rules := defaultDisplayRules()
	if req.DisplayRules != nil {
		rules = *req.DisplayRules
	}
	if err := normaliseRules(&rules); err != nil {
		return nil, err
	}

	styling := models.ModalStyling{Position: "center", Overlay: true}
	if req.Styling != nil {
		styling = *req.Styling
	}
	styling.Position = normalisePosition(styling.Position)

	modal := &models.Modal{
		Name:         req.Name,
		TriggerType:  constants.NormaliseTriggerType(req.TriggerType),
		TriggerValue: req.TriggerValue,
		DisplayRules: rules,
		Styling:      styling,
		Content:      req.Content,
		Active:       req.Active,
	}

	if err := s.modalRepo.Create(modal); err != nil {
		return nil, err
	}
	return modal, nil
}

func (s *ModalService) GetByID(id uint) (*models.Modal, error) {
	modal, err := s.modalRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return modal, nil
}

func (s *ModalService) GetAll() ([]models.Modal, error) {
	return s.modalRepo.GetAll()
}

func (s *ModalService) Update(id uint, req models.UpdateModalRequest) (*models.Modal, error) {
	modal, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		modal.Name = *req.Name
	}
	if req.TriggerType != nil {
		modal.TriggerType = constants.NormaliseTriggerType(*req.TriggerType)
	}
	if req.TriggerValue != nil {
		modal.TriggerValue = *req.TriggerValue
	}
	if req.DisplayRules != nil {
		rules := *req.DisplayRules
		if err := normaliseRules(&rules); err != nil {
			return nil, err
		}
		modal.DisplayRules = rules
	}
	if req.Styling != nil {
		styling := *req.Styling
		styling.Position = normalisePosition(styling.Position)
		modal.Styling = styling
	}
	if req.Content != nil {
		modal.Content = *req.Content
	}
	if req.Active != nil {
		modal.Active = *req.Active
	}

	if err := s.modalRepo.Update(modal); err != nil {
		return nil, err
	}
	return modal, nil
}

func (s *ModalService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.modalRepo.Delete(id)
}

// Evaluate runs one display attempt for a modal. Inactive modals never
// display. The decision is metered by outcome.
func (s *ModalService) Evaluate(req models.EvaluateDisplayRequest) (display.Decision, error) {
	modal, err := s.GetByID(req.ModalID)
	if err != nil {
		return display.Decision{}, err
	}

	if !modal.Active {
		metrics.RecordEvaluation("inactive")
		return display.Decision{Reason: "inactive"}, nil
	}

	decision := s.evaluator.Evaluate(modal, display.Context{
		Path:            req.Path,
		Device:          req.Device,
		VisitorID:       req.VisitorID,
		SessionID:       req.SessionID,
		Now:             time.Now(),
		SecondsOnPage:   req.SecondsOnPage,
		ScrollPercent:   req.ScrollPercent,
		ExitIntent:      req.ExitIntent,
		ClickedSelector: req.ClickedSelector,
		Manual:          req.Manual,
	})

	metrics.RecordEvaluation(decision.Reason)
	return decision, nil
}

// RecordImpression updates the frequency store after a modal was shown.
func (s *ModalService) RecordImpression(req models.RecordImpressionRequest) error {
	if _, err := s.GetByID(req.ModalID); err != nil {
		return err
	}

	if err := s.evaluator.RecordImpression(req.ModalID, req.VisitorID, req.SessionID, time.Now()); err != nil {
		logger.Error(err, "Failed to record modal impression", map[string]interface{}{"modal_id": req.ModalID})
		return err
	}

	metrics.ModalImpressions.Inc()
	return nil
}

// Candidates returns the active modals targeting the given page and device,
// positions resolved for the device's breakpoint.
func (s *ModalService) Candidates(path, device string) ([]ModalCandidate, error) {
	modals, err := s.modalRepo.GetActive()
	if err != nil {
		return nil, err
	}

	breakpoint := breakpointForDevice(device)
	candidates := make([]ModalCandidate, 0, len(modals))
	for i := range modals {
		if !s.evaluator.Matches(&modals[i], path, device) {
			continue
		}
		candidates = append(candidates, ModalCandidate{
			Modal:    modals[i],
			Position: display.ResolvePosition(modals[i].Styling, breakpoint),
		})
	}
	return candidates, nil
}

func defaultDisplayRules() models.DisplayRules {
	return models.DisplayRules{
		PageTargeting: constants.TargetingAll,
		Pages:         []string{},
		Devices:       []string{constants.DeviceDesktop, constants.DeviceTablet, constants.DeviceMobile},
		Frequency:     constants.FrequencyAlways,
	}
}

func normaliseRules(rules *models.DisplayRules) error {
	rules.PageTargeting = constants.NormaliseTargeting(rules.PageTargeting)
	rules.Frequency = constants.NormaliseFrequency(rules.Frequency)
	rules.Devices = constants.NormaliseDevices(rules.Devices)
	if rules.Pages == nil {
		rules.Pages = []string{}
	}
	for _, pattern := range rules.Pages {
		if !validator.ValidPagePattern(pattern) {
			return ErrInvalidPagePattern
		}
	}
	return nil
}

func normalisePosition(position string) string {
	return constants.NormalisePosition(position)
}

func breakpointForDevice(device string) string {
	switch constants.NormaliseDevice(device) {
	case constants.DeviceTablet:
		return constants.BreakpointTablet
	case constants.DeviceMobile:
		return constants.BreakpointMobile
	default:
		return constants.BreakpointDefault
	}
}
