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

package rewrite

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtensions is the allowlist used when none is configured
var DefaultExtensions = []string{".tsx", ".ts", ".js", ".jsx", ".json", ".md", ".css"}

// 🔍 Filter decides which files are candidates for rewriting
type Filter struct {
	// Extensions are exact, case-sensitive name suffixes
	Extensions []string
	// Exclude are doublestar globs matched against the slash-separated relative path
	Exclude []string
}

// NewFilter creates a filter, falling back to DefaultExtensions when extensions is empty
func NewFilter(extensions, exclude []string) (*Filter, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return &Filter{
		Extensions: slices.Clone(extensions),
		Exclude:    slices.Clone(exclude),
	}, nil
}

// Match reports whether the file at rel is a candidate
func (f *Filter) Match(rel string) bool {
	name := filepath.Base(filepath.FromSlash(rel))

	ok := false
	for _, ext := range f.Extensions {
		if strings.HasSuffix(name, ext) {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}

	for _, pattern := range f.Exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return false
		}
	}
	return true
}
