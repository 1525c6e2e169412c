//go:build linux

// Package app is the thin CLI shell: flag parsing, exit codes, and nothing
// else. All behavior lives in the packages it calls.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/portscout/portscout/internal/filter"
	"github.com/portscout/portscout/internal/output"
	"github.com/portscout/portscout/internal/pipeline"
	"github.com/portscout/portscout/internal/proc"
)

var versionString = "dev"

func SetVersionBuildCommitString(version, commit, buildDate string) {
	if version == "" {
		return
	}
	versionString = version
	if commit != "" && buildDate != "" {
		versionString = fmt.Sprintf("%s (%s, %s)", version, commit, buildDate)
	}
}

type options struct {
	localhost bool
	all       bool
	port      uint16
	include   string
	exclude   string
	limit     uint
	detailed  bool
	compact   bool
	verbose   bool
}

func newRootCmd(empty *bool) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "portscout",
		Short:         "Show open ports with owning process information",
		Version:       versionString,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}

			cfg := pipeline.Config{
				Scope:   filter.ScopeLoopback,
				Include: opts.include,
				Exclude: opts.exclude,
			}
			if opts.all {
				cfg.Scope = filter.ScopeAll
			}
			if cmd.Flags().Changed("port") {
				p := opts.port
				cfg.Port = &p
			}
			if cmd.Flags().Changed("limit") {
				n := opts.limit
				cfg.Limit = &n
			}
			switch {
			case opts.detailed:
				cfg.Layout = output.LayoutDetailed
			case opts.compact:
				cfg.Layout = output.LayoutCompact
			}

			records, _, err := pipeline.Run(cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), pipeline.Render(records, cfg.Layout))
			*empty = len(records) == 0
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.localhost, "localhost", "l", false, "show only loopback ports (default)")
	flags.BoolVarP(&opts.all, "all", "a", false, "show all ports, not just loopback")
	flags.Uint16VarP(&opts.port, "port", "p", 0, "show only this local port")
	flags.StringVarP(&opts.include, "filter", "f", "", "keep records whose process name, command, or working dir contains TEXT")
	flags.StringVarP(&opts.exclude, "exclude", "x", "", "drop records whose process name, command, or working dir contains TEXT")
	flags.UintVarP(&opts.limit, "limit", "n", 0, "show at most N records")
	flags.BoolVarP(&opts.detailed, "detailed", "d", false, "one labeled block per record, nothing truncated")
	flags.BoolVarP(&opts.compact, "compact", "c", false, "table with wrapped wide columns")
	flags.BoolVar(&opts.verbose, "verbose", false, "log snapshot diagnostics to stderr")
	cmd.MarkFlagsMutuallyExclusive("detailed", "compact")
	cmd.MarkFlagsMutuallyExclusive("localhost", "all")

	return cmd
}

// Execute runs the command. Exit status: 0 on success, 1 on a valid but
// empty result, 2 when the host lacks the kernel interfaces or the run
// fails outright.
func Execute() {
	log.SetOutput(os.Stderr)

	empty := false
	cmd := newRootCmd(&empty)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, proc.ErrUnsupportedPlatform) {
			log.Error("this host does not expose the expected kernel socket tables", "err", err)
		} else {
			log.Error("run failed", "err", err)
		}
		os.Exit(2)
	}
	if empty {
		os.Exit(1)
	}
}
