// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/rewrite"
	"github.com/walteh/rebrand/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultRoot is the directory rewritten when none is configured
const DefaultRoot = "src"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes without validating it
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement is one literal substitution
type Replacement struct {
	Old   string `json:"old" yaml:"old"`                         // Text to find
	New   string `json:"new" yaml:"new"`                         // Text to put in its place
	Files string `json:"files,omitempty" yaml:"files,omitempty"` // Optional doublestar glob limiting the files
}

// 🔄 Replacements is an ordered list of replacements
type Replacements []Replacement

// 📚 Config represents the complete configuration
type Config struct {
	Root         string       `json:"root" yaml:"root"`
	Replacements Replacements `json:"replacements" yaml:"replacements"`
	Extensions   []string     `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Exclude      []string     `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// 🎯 Read reads and parses a config file without validating it
func Read(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("reading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(filepath.Base(path))
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🎯 Load reads, parses and validates a config file
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	cfg.Root = filepath.Clean(cfg.Root)

	if err := text.NewSimpleTextReplacer().ValidateRules(cfg.Rules()); err != nil {
		return errors.Errorf("replacements: %w", err)
	}

	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), rewrite.DefaultExtensions...)
	}
	for i, ext := range cfg.Extensions {
		if ext == "" {
			return errors.Errorf("extensions[%d] is empty", i)
		}
	}

	for i, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude[%d]: invalid pattern %q", i, pattern)
		}
	}

	return nil
}

// Rules converts the replacements to text rules, keeping their order
func (cfg *Config) Rules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Replacements))
	for _, r := range cfg.Replacements {
		rules = append(rules, text.ReplacementRule{
			FromText:       r.Old,
			ToText:         r.New,
			FileFilterGlob: r.Files,
		})
	}
	return rules
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s [%s] (%d replacements)", cfg.Root, strings.Join(cfg.Extensions, " "), len(cfg.Replacements))
}

// ParseReplacementFlag parses an "old=new" pair. The first '=' separates the two.
func ParseReplacementFlag(s string) (Replacement, error) {
	old, repl, ok := strings.Cut(s, "=")
	if !ok {
		return Replacement{}, errors.Errorf("replacement %q must be in the form old=new", s)
	}
	if old == "" {
		return Replacement{}, errors.Errorf("replacement %q has an empty old value", s)
	}
	return Replacement{Old: old, New: repl}, nil
}
