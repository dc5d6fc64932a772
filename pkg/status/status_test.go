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

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestFileStatusString(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusSkipped, "skipped"},
		{StatusUnchanged, "unchanged"},
		{StatusUpdated, "updated"},
		{StatusFailed, "failed"},
		{StatusUnknown, "unknown"},
		{FileStatus(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestSummary(t *testing.T) {
	failure := Result{Path: "src/bad.ts", Status: StatusFailed, Err: errors.New("boom")}

	var s Summary
	s.Add(Result{Path: "src/a.ts", Status: StatusUpdated, Replacements: 3})
	s.Add(Result{Path: "src/b.ts", Status: StatusUpdated, Replacements: 1})
	s.Add(Result{Path: "src/c.ts", Status: StatusUnchanged})
	s.Add(Result{Path: "notes.txt", Status: StatusSkipped})
	s.Add(failure)

	assert.Equal(t, 5, s.Seen, "seen should count every result")
	assert.Equal(t, 4, s.Candidates, "skipped files are not candidates")
	assert.Equal(t, 2, s.Updated)
	assert.Equal(t, 1, s.Unchanged)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 4, s.Replacements)
	assert.True(t, s.HasFailures())
	assert.Equal(t, []Result{failure}, s.Failures)
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary *Summary
		want    string
	}{
		{
			name:    "nil",
			summary: nil,
			want:    "no files processed",
		},
		{
			name:    "single_candidate",
			summary: &Summary{Candidates: 1, Updated: 1, Replacements: 2},
			want:    "1 candidate file: 1 updated, 0 unchanged, 0 failed (2 replacements, 0 skipped by filter)",
		},
		{
			name:    "mixed",
			summary: &Summary{Candidates: 4, Updated: 2, Unchanged: 1, Failed: 1, Replacements: 5, Skipped: 3},
			want:    "4 candidate files: 2 updated, 1 unchanged, 1 failed (5 replacements, 3 skipped by filter)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSummary(tt.summary))
		})
	}
}
