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

package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/rebrand/pkg/config"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/rewrite"
	"github.com/walteh/rebrand/pkg/status"
	"github.com/walteh/rebrand/pkg/text"
	"github.com/walteh/rebrand/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 📣 Reporter receives every per-file result as it is produced
type Reporter interface {
	Report(ctx context.Context, r status.Result)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(ctx context.Context, r status.Result)

// Report implements Reporter
func (f ReporterFunc) Report(ctx context.Context, r status.Result) {
	f(ctx, r)
}

// 🎯 Operator runs a rebrand over a tree
type Operator interface {
	// Run rewrites every candidate file and returns the tally. The error is
	// non-nil only when the walk could not start or the context was cancelled.
	Run(ctx context.Context) (*status.Summary, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is required
	Config *config.Config
	// Reporter defaults to the logger in the context, then to stdout
	Reporter Reporter
	// Replacer defaults to text.NewSimpleTextReplacer
	Replacer text.TextReplacer
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	filter, err := rewrite.NewFilter(opts.Config.Extensions, opts.Config.Exclude)
	if err != nil {
		return nil, errors.Errorf("creating filter: %w", err)
	}

	return &operator{
		root:     opts.Config.Root,
		reporter: opts.Reporter,
		rewriter: rewrite.New(rewrite.Options{
			Rules:    opts.Config.Rules(),
			Filter:   filter,
			Replacer: opts.Replacer,
		}),
	}, nil
}

// 🏃 Run is shorthand for New followed by Run
func Run(ctx context.Context, opts Options) (*status.Summary, error) {
	op, err := New(opts)
	if err != nil {
		return nil, err
	}
	return op.Run(ctx)
}

// 🎮 operator implements the Operator interface
type operator struct {
	root     string
	reporter Reporter
	rewriter *rewrite.Rewriter
}

// Run implements Operator.Run
func (op *operator) Run(ctx context.Context) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", op.root).Msg("starting rebrand")

	files, err := walk.Files(ctx, op.root)
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", op.root, err)
	}

	reporter := op.reporterFor(ctx)
	summary := &status.Summary{}

	for entry := range files {
		res := op.rewriter.RewriteFile(ctx, entry.Path(), entry.Rel)
		summary.Add(res)
		reporter.Report(ctx, res)
	}

	if err := ctx.Err(); err != nil {
		return summary, errors.Errorf("run cancelled: %w", err)
	}

	logger.Debug().
		Int("candidates", summary.Candidates).
		Int("updated", summary.Updated).
		Int("failed", summary.Failed).
		Msg("rebrand complete")

	return summary, nil
}

// reporterFor picks the configured reporter, then the context logger, then stdout
func (op *operator) reporterFor(ctx context.Context) Reporter {
	if op.reporter != nil {
		return op.reporter
	}
	if l := log.FromContext(ctx); l != nil {
		return l
	}
	return log.New(os.Stdout, *zerolog.Ctx(ctx))
}
