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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/status"
)

// 🎯 Logger reports per-file results to a console and to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or nil
func FromContext(ctx context.Context) *Logger {
	logger, _ := ctx.Value(contextKey{}).(*Logger)
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatResult returns the console line for a result, or "" when the result
// is not shown
func formatResult(r status.Result) string {
	switch r.Status {
	case status.StatusUpdated:
		return fmt.Sprintf("%s %s", color.New(color.FgGreen).Sprint("Updated:"), r.Path)
	case status.StatusFailed:
		return fmt.Sprintf("%s %s: %v", color.New(color.FgRed).Sprint("Error processing"), r.Path, r.Err)
	default:
		return ""
	}
}

// 📝 Report prints one line per updated or failed file. Unchanged and skipped
// files only reach zerolog.
func (l *Logger) Report(ctx context.Context, r status.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if line := formatResult(r); line != "" {
		fmt.Fprintln(l.console, line)
	}

	// failures already have a console line
	var ev *zerolog.Event
	switch r.Status {
	case status.StatusFailed:
		ev = l.zlog.Debug().Err(r.Err)
	case status.StatusUpdated:
		ev = l.zlog.Info().Int("replacements", r.Replacements)
	case status.StatusSkipped:
		ev = l.zlog.Trace()
	default:
		ev = l.zlog.Debug()
	}
	ev.Str("file", r.Path).Str("status", r.Status.String()).Msg("file processed")
}
