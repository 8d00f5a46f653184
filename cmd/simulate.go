package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jjtimmons/overlap/internal/io"
	"github.com/jjtimmons/overlap/internal/simulate"
	"github.com/spf13/cobra"
)

// simulation modes, in the order "all" runs them
var modes = []string{"basic", "repeat", "errors", "coverage"}

// newSimulateCmd is for generating synthetic reads to test the assembler with.
func newSimulateCmd() *cobra.Command {
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate sequencing reads from a random reference",
		Long: `Simulate sequencing reads from a random reference sequence.

Each mode writes its reads to Basic.fasta, Repeat.fasta, Error.fasta or
Coverage.fasta in the output directory and prints its reference to stdout:

  basic     reads tiled across the reference, overlapping by 10bp
  repeat    a reference with 100bp and 150bp repeats, reads overlapping by 80bp
  errors    ten tilings of the reference with random substitutions (-e)
  coverage  reads from random positions, ~10x coverage`,
		Example:                    "  overlap simulate -s 1000 -r 100 -e 0.01 --mode errors",
		SuggestionsMinimumDistance: 2,
		Args:                       noArgs,
		RunE:                       simulateExec,
	}

	simulateCmd.Flags().IntP("seq-length", "s", 0, "length of the reference sequence")
	simulateCmd.Flags().IntP("read-length", "r", 0, "length of each read")
	simulateCmd.Flags().Float64P("error-rate", "e", 0, "per base substitution rate in errors mode")
	simulateCmd.Flags().StringP("mode", "m", "all", "one of "+strings.Join(append(modes, "all"), ", "))
	simulateCmd.Flags().StringP("out", "o", ".", "directory to write the FASTA files to")
	simulateCmd.Flags().Int64("seed", 0, "random seed (default: current time)")

	return simulateCmd
}

// simulateExec runs the simulations named by --mode.
func simulateExec(cmd *cobra.Command, args []string) error {
	for _, required := range []string{"seq-length", "read-length"} {
		if !cmd.Flags().Changed(required) {
			return usageError{fmt.Errorf("--%s must be specified", required)}
		}
	}

	seqLen, _ := cmd.Flags().GetInt("seq-length")
	readLen, _ := cmd.Flags().GetInt("read-length")
	rate, _ := cmd.Flags().GetFloat64("error-rate")
	mode, _ := cmd.Flags().GetString("mode")
	out, _ := cmd.Flags().GetString("out")

	seed := time.Now().UnixNano()
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetInt64("seed")
	}

	run := modes
	if mode = strings.ToLower(mode); mode != "all" {
		run = nil
		for _, m := range modes {
			if m == mode {
				run = []string{m}
			}
		}
		if run == nil {
			return usageError{fmt.Errorf("unknown mode %q", mode)}
		}
	}

	stderr := log.New(cmd.ErrOrStderr(), "", 0)
	sim := simulate.New(seed)
	for _, m := range run {
		var sample *simulate.Sample
		var err error
		switch m {
		case "basic":
			sample, err = sim.Basic(seqLen, readLen)
		case "repeat":
			sample, err = sim.Repeat(seqLen, readLen)
		case "errors":
			sample, err = sim.Errors(seqLen, readLen, rate)
		case "coverage":
			sample, err = sim.Coverage(seqLen, readLen)
		}
		if err != nil {
			return usageError{err}
		}

		if err = writeSample(cmd, out, sample); err != nil {
			return err
		}
		if m == "errors" {
			stderr.Printf("Error Counter: %d", sample.Substitutions)
		}
	}

	return nil
}

// writeSample writes the sample's reads to <out>/<Name>.fasta and its reference to stdout.
func writeSample(cmd *cobra.Command, out string, sample *simulate.Sample) error {
	records := make([]io.Record, len(sample.Reads))
	for i, r := range sample.Reads {
		records[i] = io.Record{ID: "read_" + strconv.Itoa(i), Seq: r}
	}

	filename := filepath.Join(out, sample.Name+".fasta")
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", filename, err)
	}
	if err = io.WriteFASTA(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %v", filename, err)
	}
	if err = f.Close(); err != nil {
		return err
	}

	return io.WriteFASTA(cmd.OutOrStdout(), []io.Record{{ID: sample.Name, Seq: sample.Reference}})
}
