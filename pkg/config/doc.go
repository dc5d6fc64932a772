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

/*
Package config loads and validates rebrand configuration.

	            +-------------+
	            |   Config    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	+----------+ +----------+ +----------+

A configuration names the root directory, the ordered replacements, the
extension allowlist and optional exclude globs. Replacement order is preserved by
every format, including the YAML and JSON mapping shorthand:

	root: src
	replacements:
	  KarrOS: Schrö
	  Karr OS: Schrö
	  karros: schrö

The long form allows restricting a replacement to some files:

	replacements:
	  - old: KarrOS
	    new: Schrö
	    files: "docs/guide/*.md"

In HCL each replacement is a labelled block:

	root = "src"

	replace "KarrOS" {
	  new = "Schrö"
	}

🔍 Example:

	cfg, err := config.Load(ctx, ".rebrand.yaml")
	if err != nil {
		return err
	}
	rules := cfg.Rules()
*/
package config
