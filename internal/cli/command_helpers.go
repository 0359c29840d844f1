package cli

import (
	"github.com/typecard/typecard-cli/pkg/files"
	"github.com/typecard/typecard-cli/pkg/models"
	"github.com/typecard/typecard-cli/pkg/quotes"
)

// CommandContext carries the settings and quote corpus shared by commands
type CommandContext struct {
	SettingsPath string
	Settings     *models.Settings
	quotes       []models.Quote
}

// NewCommandContext creates a context reading settings from path, or from
// the default location when path is empty.
func NewCommandContext(path string) (*CommandContext, error) {
	if path == "" {
		p, err := files.DefaultSettingsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &CommandContext{SettingsPath: path}, nil
}

// LoadSettingsWithDefault loads settings or returns defaults on error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings(c.SettingsPath)
	if err != nil {
		PrintWarning("Using default settings: %v", err)
	}

	c.Settings = settings
	return settings
}

// LoadQuotes returns the built-in quotes plus any configured extra file.
// A broken extra file is reported and skipped.
func (c *CommandContext) LoadQuotes() []models.Quote {
	if c.quotes != nil {
		return c.quotes
	}

	settings := c.LoadSettingsWithDefault()
	list, err := quotes.Load(settings.Quotes.File)
	if err != nil {
		PrintWarning("Ignoring quotes file: %v", err)
	}

	c.quotes = list
	return list
}
