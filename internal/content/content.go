// Package content loads the static copy rendered on the portfolio page.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"devkwon.dev/internal/models"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

// Default decodes and validates the embedded portfolio document
func Default() (*models.Page, error) {
	return Parse(portfolioYAML)
}

// Parse decodes a portfolio document and validates it.
// Unknown keys are rejected so typos in the content file fail loudly.
func Parse(data []byte) (*models.Page, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var page models.Page
	if err := dec.Decode(&page); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode portfolio: empty document")
		}
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}

	if err := Validate(&page); err != nil {
		return nil, err
	}
	return &page, nil
}
