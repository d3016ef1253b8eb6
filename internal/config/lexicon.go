package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"tuberank/internal/seo"
)

// LexiconConfig mirrors the optional lexicon YAML file. Any list left
// empty keeps the built-in default.
type LexiconConfig struct {
	Entities   []string `yaml:"entities"`
	Actions    []string `yaml:"actions"`
	Context    []string `yaml:"context"`
	PowerWords []string `yaml:"power_words"`
}

// LoadLexicon returns the curated lexicon, applying overrides from the
// configured YAML file when it exists. A missing file is not an error.
func (c *Config) LoadLexicon() (seo.Lexicon, error) {
	lex := seo.DefaultLexicon()

	data, err := os.ReadFile(c.LexiconFile)
	if err != nil {
		if os.IsNotExist(err) {
			return lex, nil
		}
		return lex, err
	}

	var overrides LexiconConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return lex, err
	}

	if len(overrides.Entities) > 0 {
		lex.Entities = overrides.Entities
	}
	if len(overrides.Actions) > 0 {
		lex.Actions = overrides.Actions
	}
	if len(overrides.Context) > 0 {
		lex.Context = overrides.Context
	}
	if len(overrides.PowerWords) > 0 {
		lex.PowerWords = overrides.PowerWords
	}
	return lex, nil
}
