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
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// RCFileName is the extensionless config file name
const RCFileName = ".rebrand"

func init() {
	Register(&RCParser{})
}

// 🔧 RCParser parses .rebrand files, which may hold either YAML or HCL
type RCParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *RCParser) CanParse(filename string) bool {
	return filepath.Base(filename) == RCFileName || filepath.Ext(filename) == RCFileName
}

// 📝 Parse tries YAML first, then HCL
func (p *RCParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	cfg, yamlErr := (&YAMLParser{}).Parse(ctx, data)
	if yamlErr == nil {
		return cfg, nil
	}

	cfg, hclErr := parseHCL(data, RCFileName)
	if hclErr == nil {
		return cfg, nil
	}

	return nil, errors.Errorf("failed to parse %s as YAML (%v) or HCL: %w", RCFileName, yamlErr, hclErr)
}
