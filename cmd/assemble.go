package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jjtimmons/overlap/config"
	"github.com/jjtimmons/overlap/internal/assemble"
	"github.com/jjtimmons/overlap/internal/io"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleExec reads the FASTA, assembles its reads and writes the contigs.
func assembleExec(cmd *cobra.Command, v *viper.Viper) error {
	conf, err := config.New(v)
	if err != nil {
		return usageError{err}
	}
	if err = conf.Validate(); err != nil {
		return usageError{err}
	}
	if info, err := os.Stat(conf.Fasta); err != nil || info.IsDir() {
		return usageError{fmt.Errorf("input file must exist: %s", conf.Fasta)}
	}

	// stderr is for logging without an annoying timestamp
	stderr := log.New(cmd.ErrOrStderr(), "", 0)
	if conf.Verbose {
		stderr.Printf("Using FASTA file %s", conf.Fasta)
	}

	records, err := io.ReadFASTA(conf.Fasta)
	if err != nil {
		return err
	}

	opts := []assemble.Option{assemble.WithThreads(conf.Threads)}
	if conf.Verbose {
		opts = append(opts, assemble.WithLogger(stderr))
	}

	start := time.Now()
	res, err := assemble.AssembleCtx(cmd.Context(), io.Seqs(records), conf.MinMatch, opts...)
	if err != nil {
		return fmt.Errorf("assembly stopped after %d merges: %v", len(res.Merges), err)
	}
	elapsed := time.Since(start)

	if err = io.WriteContigs(cmd.OutOrStdout(), res.Contigs); err != nil {
		return fmt.Errorf("failed to write contigs: %v", err)
	}

	if conf.Out != "" {
		report := io.NewReport(conf.Fasta, conf.MinMatch, len(records), res, elapsed)
		if _, err = io.WriteJSON(conf.Out, report); err != nil {
			return err
		}
	}

	if conf.Plot != "" {
		if err = io.PlotContigLengths(conf.Plot, res.Contigs); err != nil {
			return err
		}
	}

	if conf.Verbose {
		stderr.Printf("%d reads assembled into %d contigs (%s) in %s", len(records), len(res.Contigs), res.State, elapsed)
	}

	return nil
}
