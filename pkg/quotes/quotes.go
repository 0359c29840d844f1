// Package quotes provides the read-only quote corpus the card draws from.
package quotes

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/typecard/typecard-cli/pkg/models"
)

//go:embed quotes.yaml
var builtinYAML []byte

type corpusFile struct {
	Quotes []models.Quote `yaml:"quotes"`
}

// Parse decodes a corpus document, skipping entries without text
func Parse(data []byte) ([]models.Quote, error) {
	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse quotes: %w", err)
	}

	quotes := make([]models.Quote, 0, len(file.Quotes))
	for _, q := range file.Quotes {
		q.Text = strings.TrimSpace(q.Text)
		q.Author = strings.TrimSpace(q.Author)
		if q.Text == "" {
			continue
		}
		if q.Author == "" {
			q.Author = "Unknown"
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// Builtin returns the embedded corpus
func Builtin() []models.Quote {
	quotes, err := Parse(builtinYAML)
	if err != nil {
		// The embedded file is part of the binary; failing here is a build defect.
		panic(err)
	}
	return quotes
}

// Load returns the embedded corpus followed by the entries of extraFile,
// if one is given.
func Load(extraFile string) ([]models.Quote, error) {
	quotes := Builtin()
	if extraFile == "" {
		return quotes, nil
	}

	data, err := os.ReadFile(extraFile)
	if err != nil {
		return quotes, fmt.Errorf("failed to read quotes file %s: %w", extraFile, err)
	}
	extra, err := Parse(data)
	if err != nil {
		return quotes, fmt.Errorf("quotes file %s: %w", extraFile, err)
	}
	return append(quotes, extra...), nil
}
