package model

// Preferences are the per-user settings and onboarding flags.
type Preferences struct {
	Language         string `json:"language"`
	LanguageSelected bool   `json:"languageSelected"`
	// DataConsent is nil until the user answers the privacy prompt.
	DataConsent            *bool `json:"dataConsent"`
	HowToUseDismissed      bool  `json:"howToUseDismissed"`
	OfflineDownloaded      bool  `json:"offlineDownloaded"`
	OfflinePromptDismissed bool  `json:"offlinePromptDismissed"`
	AppWasBackgrounded     bool  `json:"appWasBackgrounded"`
}

// PreferencesUpdate is a partial update; nil fields are left unchanged.
type PreferencesUpdate struct {
	Language               *string `json:"language"`
	LanguageSelected       *bool   `json:"languageSelected"`
	DataConsent            *bool   `json:"dataConsent"`
	HowToUseDismissed      *bool   `json:"howToUseDismissed"`
	OfflineDownloaded      *bool   `json:"offlineDownloaded"`
	OfflinePromptDismissed *bool   `json:"offlinePromptDismissed"`
	AppWasBackgrounded     *bool   `json:"appWasBackgrounded"`
}
