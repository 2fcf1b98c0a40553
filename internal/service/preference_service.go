package service

import (
	"context"
	"strings"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"
	"vaccine-village-go/pkg/responder"
)

// PreferenceService manages per-user settings and onboarding flags.
type PreferenceService interface {
	Get(ctx context.Context, userID uint) (model.Preferences, error)
	Update(ctx context.Context, userID uint, update model.PreferencesUpdate) (model.Preferences, error)
}

type preferenceService struct {
	repo    repository.PreferenceRepository
	catalog *responder.Catalog
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(repo repository.PreferenceRepository, catalog *responder.Catalog) PreferenceService {
	if catalog == nil {
		catalog = responder.DefaultCatalog()
	}
	return &preferenceService{repo: repo, catalog: catalog}
}

// Get returns the stored preferences, with the default language filled in
// when none was chosen.
func (s *preferenceService) Get(ctx context.Context, userID uint) (model.Preferences, error) {
	prefs, err := s.repo.Get(ctx, userID)
	if err != nil {
		return prefs, err
	}
	if prefs.Language == "" {
		prefs.Language = s.catalog.Primary()
	}
	return prefs, nil
}

// Update applies a partial update. Choosing a language also marks the
// language as selected unless the update says otherwise.
func (s *preferenceService) Update(ctx context.Context, userID uint, update model.PreferencesUpdate) (model.Preferences, error) {
	if update.Language != nil {
		code := strings.ToLower(strings.TrimSpace(*update.Language))
		if !s.catalog.Supports(code) {
			return model.Preferences{}, ErrUnsupportedLanguage
		}
		update.Language = &code
		if update.LanguageSelected == nil {
			selected := true
			update.LanguageSelected = &selected
		}
	}
	if err := s.repo.Update(ctx, userID, update); err != nil {
		return model.Preferences{}, err
	}
	return s.Get(ctx, userID)
}
