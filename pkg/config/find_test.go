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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		dirs  []string
		want  string
	}{
		{name: "none"},
		{name: "yaml", files: []string{".rebrand.yaml"}, want: ".rebrand.yaml"},
		{name: "rc_wins", files: []string{".rebrand.hcl", ".rebrand"}, want: ".rebrand"},
		{name: "yaml_before_json", files: []string{".rebrand.json", ".rebrand.yml"}, want: ".rebrand.yml"},
		{name: "directory_ignored", dirs: []string{".rebrand"}, files: []string{".rebrand.hcl"}, want: ".rebrand.hcl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, d := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(dir, d), 0o755))
			}
			for _, f := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o644))
			}

			got, ok := Find(dir)
			if tt.want == "" {
				assert.False(t, ok)
				assert.Empty(t, got)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, filepath.Join(dir, tt.want), got)
		})
	}
}
