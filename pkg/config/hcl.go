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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/rebrand/pkg/rewrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	return parseHCL(data, "config.hcl")
}

func parseHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_extensions": defaultExtensionsValue(),
		},
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Root         string   `hcl:"root,optional"`
		Extensions   []string `hcl:"extensions,optional"`
		Exclude      []string `hcl:"exclude,optional"`
		Replacements []struct {
			Old   string `hcl:"old,label"`
			New   string `hcl:"new"`
			Files string `hcl:"files,optional"`
		} `hcl:"replace,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{
		Root:       hclCfg.Root,
		Extensions: hclCfg.Extensions,
		Exclude:    hclCfg.Exclude,
	}
	for _, r := range hclCfg.Replacements {
		cfg.Replacements = append(cfg.Replacements, Replacement{
			Old:   r.Old,
			New:   r.New,
			Files: r.Files,
		})
	}

	return cfg, nil
}

// defaultExtensionsValue exposes the default allowlist to HCL expressions, so a
// config can extend it with concat(default_extensions, [".mdx"])
func defaultExtensionsValue() cty.Value {
	vals := make([]cty.Value, 0, len(rewrite.DefaultExtensions))
	for _, ext := range rewrite.DefaultExtensions {
		vals = append(vals, cty.StringVal(ext))
	}
	return cty.ListVal(vals)
}
