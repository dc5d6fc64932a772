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
	"bytes"
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// UnmarshalYAML accepts either a sequence of {old, new, files} or a mapping of
// old: new, keeping document order in both cases.
func (r *Replacements) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []Replacement
		for i, item := range value.Content {
			if item.Kind != yaml.MappingNode {
				return errors.Errorf("line %d: replacements[%d] must be a mapping", item.Line, i)
			}
			var rep Replacement
			if err := decodeReplacementNode(item, &rep); err != nil {
				return errors.Errorf("replacements[%d]: %w", i, err)
			}
			list = append(list, rep)
		}
		*r = list
	case yaml.MappingNode:
		list := make([]Replacement, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return errors.Errorf("line %d: replacement %q must map a string to a string", k.Line, k.Value)
			}
			list = append(list, Replacement{Old: k.Value, New: v.Value})
		}
		*r = list
	case yaml.ScalarNode:
		if value.Tag != "!!null" {
			return errors.Errorf("line %d: replacements must be a list or a mapping", value.Line)
		}
		*r = nil
	default:
		return errors.Errorf("line %d: replacements must be a list or a mapping", value.Line)
	}
	return nil
}

// decodeReplacementNode decodes one long-form entry, rejecting unknown keys
func decodeReplacementNode(node *yaml.Node, rep *Replacement) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return errors.Errorf("line %d: %s must be a string", v.Line, k.Value)
		}
		switch k.Value {
		case "old":
			rep.Old = v.Value
		case "new":
			rep.New = v.Value
		case "files":
			rep.Files = v.Value
		default:
			return errors.Errorf("line %d: unknown field %q", k.Line, k.Value)
		}
	}
	return nil
}
