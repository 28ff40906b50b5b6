package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// brandingFile is the BRANDING_FILE layout:
//
//	name: Acme AI
//	company: Acme Corp
//	mission: Democratize AI
//	contact: hi@acme.com
//	theme:
//	  primary: "#FF6B35"
//	  secondary: "#2C3E50"
//	  accent: "#E74C3C"
type brandingFile struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
	Mission string `yaml:"mission"`
	Contact string `yaml:"contact"`
	Theme   struct {
		Primary   string `yaml:"primary"`
		Secondary string `yaml:"secondary"`
		Accent    string `yaml:"accent"`
	} `yaml:"theme"`
}

func (c *Config) applyBrandingFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read branding file: %w", err)
	}

	var f brandingFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse branding file %s: %w", path, err)
	}

	override(&c.Branding.Name, f.Name)
	override(&c.Branding.Company, f.Company)
	override(&c.Branding.Mission, f.Mission)
	override(&c.Branding.Contact, f.Contact)
	override(&c.Theme.Primary, f.Theme.Primary)
	override(&c.Theme.Secondary, f.Theme.Secondary)
	override(&c.Theme.Accent, f.Theme.Accent)
	return nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
