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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rebrand/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLoggerReport(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		results  []status.Result
		wantLogs []string
	}{
		{
			name: "updated",
			results: []status.Result{
				{Path: "src/app.tsx", Status: status.StatusUpdated, Replacements: 2},
			},
			wantLogs: []string{"Updated: src/app.tsx"},
		},
		{
			name: "failed",
			results: []status.Result{
				{Path: "src/bad.ts", Status: status.StatusFailed, Err: errors.New("permission denied")},
			},
			wantLogs: []string{"Error processing src/bad.ts: permission denied"},
		},
		{
			name: "quiet_results",
			results: []status.Result{
				{Path: "src/same.ts", Status: status.StatusUnchanged},
				{Path: "notes.txt", Status: status.StatusSkipped},
			},
			wantLogs: nil,
		},
		{
			name: "mixed_in_order",
			results: []status.Result{
				{Path: "a.ts", Status: status.StatusUpdated},
				{Path: "b.ts", Status: status.StatusUnchanged},
				{Path: "c.ts", Status: status.StatusFailed, Err: errors.New("boom")},
				{Path: "d.md", Status: status.StatusUpdated},
			},
			wantLogs: []string{
				"Updated: a.ts",
				"Error processing c.ts: boom",
				"Updated: d.md",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop())

			for _, r := range tt.results {
				logger.Report(context.Background(), r)
			}

			output := strings.TrimSpace(buf.String())
			if len(tt.wantLogs) == 0 {
				assert.Empty(t, output)
				return
			}

			lines := strings.Split(output, "\n")
			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, lines[i], "log line %d should match", i)
			}
		})
	}
}

func TestLoggerReportStructured(t *testing.T) {
	zbuf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.New(zbuf).Level(zerolog.InfoLevel))

	logger.Report(context.Background(), status.Result{Path: "a.ts", Status: status.StatusUpdated, Replacements: 4})
	logger.Report(context.Background(), status.Result{Path: "b.ts", Status: status.StatusUnchanged})

	out := zbuf.String()
	assert.Contains(t, out, `"file":"a.ts"`)
	assert.Contains(t, out, `"replacements":4`)
	assert.NotContains(t, out, `"b.ts"`, "unchanged files are logged below info")
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx), "logger from context should be the same instance")
	assert.Nil(t, FromContext(context.Background()), "missing logger should be nil")
}
