package service

import (
	"context"
	"testing"

	"vaccine-village-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService(t *testing.T) {
	repo := newMemPreferenceRepo()
	svc := NewPreferenceService(repo, nil)
	ctx := context.Background()

	prefs, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "en", prefs.Language)
	assert.False(t, prefs.LanguageSelected)
	assert.Nil(t, prefs.DataConsent, "consent starts unanswered")

	lang := " SW "
	no := false
	prefs, err = svc.Update(ctx, 1, model.PreferencesUpdate{Language: &lang, DataConsent: &no})
	require.NoError(t, err)
	assert.Equal(t, "sw", prefs.Language)
	assert.True(t, prefs.LanguageSelected)
	require.NotNil(t, prefs.DataConsent)
	assert.False(t, *prefs.DataConsent)

	bad := "fr"
	_, err = svc.Update(ctx, 1, model.PreferencesUpdate{Language: &bad})
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	yes := true
	prefs, err = svc.Update(ctx, 1, model.PreferencesUpdate{HowToUseDismissed: &yes})
	require.NoError(t, err)
	assert.True(t, prefs.HowToUseDismissed)
	assert.Equal(t, "sw", prefs.Language)
}
