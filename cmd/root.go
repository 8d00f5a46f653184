// Package cmd is for command line interactions with the overlap application
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// usageError is returned for bad flags and arguments. It exits with code 2 after printing the usage.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

// noArgs rejects positional arguments.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError{fmt.Errorf("unexpected arguments: %v", args)}
	}
	return nil
}

// newRootCmd creates the base command, which assembles the reads in a FASTA file.
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "overlap -f <fasta> -l <fraction>",
		Short: "Assemble sequencing reads into contigs with a greedy overlap algorithm",
		Long: `Assemble sequencing reads into contigs by greedily approximating their shortest
common superstring.

The overlap between every ordered pair of reads is scored: the longest suffix of
one read that matches a prefix of the other, with at least the fraction of
matching bases set by -l. The best scoring pair is merged, the merged read's
scores are updated, and this repeats until a single contig is left or no reads
overlap. Contigs are printed as FASTA to stdout.`,
		Example: `  overlap -f reads.fa -l 1.0
  overlap -f reads.fa.gz -l 0.9 --threads 4 --out report.json --plot contigs.png`,
		Version:       "0.1.0",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return assembleExec(cmd, v)
		},
	}

	rootCmd.Flags().StringP("fasta", "f", "", "FASTA file with the sequencing reads (plain or gzipped)")
	rootCmd.Flags().Float64P("min-match", "l", 0, "smallest fraction of matching bases allowed in an overlap (0.0 < l <= 1.0)")
	rootCmd.Flags().IntP("threads", "t", 1, "number of workers scoring overlaps")
	rootCmd.Flags().StringP("out", "o", "", "path to write a JSON report to")
	rootCmd.Flags().StringP("plot", "p", "", "path to save a plot of contig lengths to (.png, .svg, .pdf)")
	rootCmd.Flags().StringP("settings", "s", "", "settings file (yaml, json or toml)")
	rootCmd.Flags().BoolP("verbose", "v", false, "log each merge to stderr")

	for _, name := range []string{"fasta", "min-match", "threads", "out", "plot", "settings", "verbose"} {
		v.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newDocsCmd(rootCmd))

	return rootCmd
}

// Execute runs the root command against the process's arguments and exits.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes the command line in args and returns the process exit code:
// 0 on success (or help), 2 for usage errors and 1 for anything else.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}
	if cmd == nil {
		cmd = rootCmd
	}

	var uErr usageError
	if errors.As(err, &uErr) {
		fmt.Fprintf(stderr, "\nERROR! %v. Correct usage:\n%s", err, cmd.UsageString())
		return 2
	}

	fmt.Fprintf(stderr, "\nERROR! %v\n", err)
	return 1
}
