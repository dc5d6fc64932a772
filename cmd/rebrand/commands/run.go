package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rebrand/cmd/rebrand/opts"
	"github.com/walteh/rebrand/pkg/config"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/operation"
	"github.com/walteh/rebrand/pkg/ui"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		replacements []string
		extensions   []string
		exclude      []string
	)

	cmd := &cobra.Command{
		Use:   "run [root]",
		Short: "Replace brand terms in place across a directory tree",
		Long: `Run rewrites every matching file under root (default "src") in place.
It will:
1. Walk every file under root, at any depth
2. Keep only files whose name ends with an allowed extension
3. Apply each replacement in order, each one seeing the output of the last
4. Write a file back only when its content changed

A file that cannot be read or written is reported and skipped; the run goes on.
With no replacements every candidate is left as it is. A term listed twice is
applied twice; the second pass only sees what the first one left.
There is no undo: commit your work first.`,
		Example: `  rebrand run --replace KarrOS=Schrö --replace "Karr OS=Schrö" --replace karros=schrö
  rebrand run web/src --config .rebrand.hcl --exclude "**/generated/**"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())

			cfg, err := opts.ReadConfig(ctx)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			if len(args) == 1 {
				cfg.Root = args[0]
			}
			if cmd.Flags().Changed("replace") {
				cfg.Replacements = nil
				for _, raw := range replacements {
					r, err := config.ParseReplacementFlag(raw)
					if err != nil {
						return errors.Errorf("parsing --replace: %w", err)
					}
					cfg.Replacements = append(cfg.Replacements, r)
				}
			}
			if cmd.Flags().Changed("ext") {
				cfg.Extensions = extensions
			}
			if cmd.Flags().Changed("exclude") {
				cfg.Exclude = exclude
			}

			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			userLogger := ui.NewUserLogger(ctx, cmd.ErrOrStderr())
			userLogger.LogStart("rewriting " + cfg.String())

			summary, err := operation.Run(ctx, operation.Options{
				Config:   cfg,
				Reporter: log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx)),
			})
			if summary != nil {
				userLogger.LogSummary(summary)
			}
			if err != nil {
				return errors.Errorf("running rebrand: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&replacements, "replace", "r", nil, "replacement as old=new; repeat to add more, applied in the order given")
	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", nil, "file name suffixes to rewrite (default .tsx,.ts,.js,.jsx,.json,.md,.css)")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "doublestar glob of root-relative paths to leave alone; repeatable")

	return cmd
}
