package repository

import (
	"context"
	"fmt"
	"strconv"

	"vaccine-village-go/internal/model"

	"github.com/go-redis/redis/v8"
)

// Hash fields of the per-user preferences key.
const (
	prefLanguage               = "language"
	prefLanguageSelected       = "language_selected"
	prefDataConsent            = "data_consent"
	prefHowToUseDismissed      = "how_to_use_dismissed"
	prefOfflineDownloaded      = "offline_downloaded"
	prefOfflinePromptDismissed = "offline_prompt_dismissed"
	prefAppWasBackgrounded     = "app_was_backgrounded"
)

// PreferenceRepository stores per-user settings as a Redis hash.
type PreferenceRepository interface {
	Get(ctx context.Context, userID uint) (model.Preferences, error)
	Update(ctx context.Context, userID uint, update model.PreferencesUpdate) error
}

type redisPreferenceRepository struct {
	redisClient *redis.Client
}

// NewPreferenceRepository creates a Redis-backed PreferenceRepository.
func NewPreferenceRepository(redisClient *redis.Client) PreferenceRepository {
	return &redisPreferenceRepository{redisClient: redisClient}
}

func preferencesKey(userID uint) string {
	return fmt.Sprintf("user:%d:preferences", userID)
}

// Get returns the stored preferences. Missing fields read as zero values
// and a missing consent answer as nil.
func (r *redisPreferenceRepository) Get(ctx context.Context, userID uint) (model.Preferences, error) {
	fields, err := r.redisClient.HGetAll(ctx, preferencesKey(userID)).Result()
	if err != nil {
		return model.Preferences{}, fmt.Errorf("failed to get preferences: %w", err)
	}
	prefs := model.Preferences{
		Language:               fields[prefLanguage],
		LanguageSelected:       fields[prefLanguageSelected] == "true",
		HowToUseDismissed:      fields[prefHowToUseDismissed] == "true",
		OfflineDownloaded:      fields[prefOfflineDownloaded] == "true",
		OfflinePromptDismissed: fields[prefOfflinePromptDismissed] == "true",
		AppWasBackgrounded:     fields[prefAppWasBackgrounded] == "true",
	}
	if v, ok := fields[prefDataConsent]; ok {
		consent := v == "true"
		prefs.DataConsent = &consent
	}
	return prefs, nil
}

// Update writes the non-nil fields of update.
func (r *redisPreferenceRepository) Update(ctx context.Context, userID uint, update model.PreferencesUpdate) error {
	values := map[string]interface{}{}
	if update.Language != nil {
		values[prefLanguage] = *update.Language
	}
	setBool := func(field string, v *bool) {
		if v != nil {
			values[field] = strconv.FormatBool(*v)
		}
	}
	setBool(prefLanguageSelected, update.LanguageSelected)
	setBool(prefDataConsent, update.DataConsent)
	setBool(prefHowToUseDismissed, update.HowToUseDismissed)
	setBool(prefOfflineDownloaded, update.OfflineDownloaded)
	setBool(prefOfflinePromptDismissed, update.OfflinePromptDismissed)
	setBool(prefAppWasBackgrounded, update.AppWasBackgrounded)
	if len(values) == 0 {
		return nil
	}
	if err := r.redisClient.HSet(ctx, preferencesKey(userID), values).Err(); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}
