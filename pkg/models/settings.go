package models

// Settings represents the application configuration
type Settings struct {
	UI            UISettings           `yaml:"ui"`
	Notifications NotificationSettings `yaml:"notifications"`
	Quotes        QuoteSettings        `yaml:"quotes"`
}

// UISettings controls UI preferences
type UISettings struct {
	Theme    string `yaml:"theme"` // "dark" or "light"
	Mouse    bool   `yaml:"mouse"`
	ShowHelp bool   `yaml:"show_help"`
}

// NotificationSettings controls how long transient feedback stays visible
type NotificationSettings struct {
	CopyFeedbackMs int `yaml:"copy_feedback_ms"`
	ToastMs        int `yaml:"toast_ms"`
}

// QuoteSettings points at an optional extra quote corpus
type QuoteSettings struct {
	File string `yaml:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			Theme:    "dark",
			Mouse:    true,
			ShowHelp: true,
		},
		Notifications: NotificationSettings{
			CopyFeedbackMs: 2000,
			ToastMs:        3000,
		},
		Quotes: QuoteSettings{
			File: "",
		},
	}
}

// Normalize fills zero or invalid values with defaults
func (s *Settings) Normalize() {
	defaults := DefaultSettings()
	if s.UI.Theme != "dark" && s.UI.Theme != "light" {
		s.UI.Theme = defaults.UI.Theme
	}
	if s.Notifications.CopyFeedbackMs <= 0 {
		s.Notifications.CopyFeedbackMs = defaults.Notifications.CopyFeedbackMs
	}
	if s.Notifications.ToastMs <= 0 {
		s.Notifications.ToastMs = defaults.Notifications.ToastMs
	}
}
