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

// Package rewrite applies replacement rules to files in place.
package rewrite

import (
	"bytes"
	"context"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/status"
	"github.com/walteh/rebrand/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidUTF8 is returned for candidate files that are not valid UTF-8
var ErrInvalidUTF8 = errors.Base("invalid utf-8")

// 🔧 Options configures a Rewriter
type Options struct {
	// Rules are applied in order
	Rules []text.ReplacementRule
	// Filter selects candidate files; nil means DefaultExtensions with no excludes
	Filter *Filter
	// Replacer defaults to text.NewSimpleTextReplacer
	Replacer text.TextReplacer
}

// ✏️ Rewriter rewrites one file at a time
type Rewriter struct {
	rules    []text.ReplacementRule
	filter   *Filter
	replacer text.TextReplacer
}

// 🏭 New creates a Rewriter
func New(opts Options) *Rewriter {
	r := &Rewriter{
		rules:    opts.Rules,
		filter:   opts.Filter,
		replacer: opts.Replacer,
	}
	if r.filter == nil {
		r.filter = &Filter{Extensions: DefaultExtensions}
	}
	if r.replacer == nil {
		r.replacer = text.NewSimpleTextReplacer()
	}
	return r
}

// 📝 RewriteFile applies the rules to the file at path, writing it back only when
// the content changed. rel is the slash-separated path relative to the walk root
// and is what filters and per-rule globs are matched against.
//
// Failures are reported in the result, never returned.
func (r *Rewriter) RewriteFile(ctx context.Context, path, rel string) status.Result {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	result := status.Result{Path: path, Rel: rel}

	if !r.filter.Match(rel) {
		result.Status = status.StatusSkipped
		return result
	}

	original, err := readText(path)
	if err != nil {
		result.Status = status.StatusFailed
		result.Err = err
		logger.Debug().Err(err).Msg("reading candidate")
		return result
	}

	replaced, err := r.replacer.ReplaceText(ctx, bytes.NewReader(original), text.RulesForPath(r.rules, rel))
	if err != nil {
		result.Status = status.StatusFailed
		result.Err = errors.Errorf("replacing text: %w", err)
		return result
	}

	if !replaced.WasModified {
		result.Status = status.StatusUnchanged
		logger.Trace().Msg("no change")
		return result
	}

	if err := writeText(path, replaced.ModifiedContent); err != nil {
		result.Status = status.StatusFailed
		result.Err = err
		logger.Debug().Err(err).Msg("writing candidate")
		return result
	}

	result.Status = status.StatusUpdated
	result.Replacements = replaced.ReplacementCount
	logger.Debug().Int("replacements", replaced.ReplacementCount).Msg("rewrote file")
	return result
}

// readText reads the whole file and checks it decodes as UTF-8
func readText(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	if off := invalidUTF8Offset(content); off >= 0 {
		return nil, errors.WithDetails(
			errors.Errorf("decoding file: %w: byte 0x%02x at offset %d", ErrInvalidUTF8, content[off], off),
			"offset", off,
		)
	}

	return content, nil
}

// writeText truncates the existing file and writes content in full.
// The file is never created, so its permissions are kept.
func writeText(path string, content []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for write: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Errorf("closing file: %w", cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	return nil
}

// invalidUTF8Offset returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
