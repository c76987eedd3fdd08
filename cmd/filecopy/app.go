package main

import (
	"fmt"
	"github.com/infobaleen/filecopy"
	"github.com/infobaleen/filecopy/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"io"
)

// exitUsage is returned for malformed invocations, following the flag package convention.
const exitUsage = 2

const usageTemplate = `Usage: {{.UseLine}}
{{if .HasAvailableLocalFlags}}
Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}`

type app struct {
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
}

func (a *app) command() *cobra.Command {
	var verbose bool
	var cmd = &cobra.Command{
		Use:                   "filecopy <src> <dest>",
		Short:                 "Copy a file and its permission bits",
		Args:                  cobra.ExactArgs(2),
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			var level = zap.InfoLevel
			if verbose {
				level = zap.DebugLevel
			}
			var logger = logging.NewLogger(a.stderr, level).Named("filecopy")
			defer func() { _ = logger.Sync() }()
			var _, err = filecopy.NewCopier(logger).Copy(args[0], args[1])
			return err
		},
	}
	cmd.SetUsageTemplate(usageTemplate)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each step to stderr")
	return cmd
}

// run parses args and copies the file. Every failure ends in a.exit; success returns without calling it.
func (a *app) run(args []string) {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	var cmd = a.command()
	cmd.SetArgs(args)
	var err = cmd.Execute()
	if err == nil {
		return
	}
	if stepErr, ok := err.(*filecopy.StepError); ok {
		var exiter = logging.Exiter{Logger: logging.NewExitLogger(a.stdout), Exit: a.exit}
		exiter.Exitf(1, "%s", stepErr)
		return
	}
	fmt.Fprintln(a.stderr, "Error:", err)
	fmt.Fprint(a.stderr, cmd.UsageString())
	a.exit(exitUsage)
}
