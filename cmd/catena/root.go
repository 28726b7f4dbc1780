package main

import (
	"fmt"

	"github.com/aretw0/catena/internal/cli"
	"github.com/aretw0/catena/pkg/domain"
	"github.com/spf13/cobra"
)

// newRootCmd builds the catena command. The exit code of the run is stored
// in exitCode, since a failed read is not a usage error.
func newRootCmd(exitCode *int) *cobra.Command {
	var flags cli.Flags

	cmd := &cobra.Command{
		Use:   "catena [OPTION]... [FILE]...",
		Short: "Concatenate FILE(s) to standard output",
		Long: `Concatenate FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.

  -e    equivalent to -vE
  -t    equivalent to -vT`,
		Example: `  catena f - g   Output f's contents, then standard input, then g's contents.
  catena         Copy standard input to standard output.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*exitCode = cli.Run(cli.RunOptions{
				Flags:  flags,
				Paths:  args,
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	f := cmd.Flags()
	f.SortFlags = false
	f.BoolVarP(&flags.ShowAll, "show-all", "A", false, "equivalent to -vET")
	f.BoolVarP(&flags.NumberNonBlank, "number-nonblank", "b", false, "number nonempty output lines, overrides -n")
	f.BoolVarP(&flags.ShowNonPrintEnd, "show-nonprinting-ends", "e", false, "equivalent to -vE")
	f.BoolVarP(&flags.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	f.BoolVarP(&flags.Number, "number", "n", false, "number all output lines")
	f.BoolVarP(&flags.SqueezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	f.BoolVarP(&flags.ShowNonPrintTab, "show-nonprinting-tabs", "t", false, "equivalent to -vT")
	f.BoolVarP(&flags.ShowTabs, "show-tabs", "T", false, "display TAB characters as ^I")
	f.BoolVarP(&flags.Unbuffered, "unbuffered", "u", false, "(ignored)")
	f.BoolVarP(&flags.ShowNonPrinting, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	// -e and -t only exist as shorthands.
	_ = f.MarkHidden("show-nonprinting-ends")
	_ = f.MarkHidden("show-nonprinting-tabs")
	f.StringVar(&flags.ConfigPath, "config", "", "defaults file (YAML or JSON); also read from $CATENA_CONFIG")
	f.BoolVar(&flags.Debug, "debug", false, "log source handling to standard error")
	f.BoolVar(&flags.Stats, "stats", false, "log run statistics to standard error")

	setVersion(cmd)
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	code := 0
	cmd := newRootCmd(&code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "catena: %v\n", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Try 'catena --help' for more information.")
		return domain.ExitFailure
	}
	return code
}
