package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/jjtimmons/overlap/internal/assemble"
)

// Contig is a single assembled sequence in the JSON report.
type Contig struct {
	// ID is the contig's name in the stdout output, ex: "Result1"
	ID string `json:"id"`

	// Length of the contig in bp
	Length int `json:"length"`

	// Seq of the contig
	Seq string `json:"seq"`
}

// Report is the JSON output of an assembly run.
type Report struct {
	// Input is the path to the FASTA with the reads
	Input string `json:"input"`

	// MinMatch is the minimum fraction of matching bases in an overlap
	MinMatch float64 `json:"minMatch"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to assemble
	Execution float64 `json:"execution"`

	// Reads is the number of input reads
	Reads int `json:"reads"`

	// State is "done" if everything merged into one contig, "stuck" otherwise
	State string `json:"state"`

	// Contigs in output order
	Contigs []Contig `json:"contigs"`

	// Merges are the assembly steps, in order
	Merges []assemble.Merge `json:"merges"`
}

// NewReport summarizes an assembly of reads from input.
func NewReport(input string, minMatch float64, reads int, res *assemble.Result, elapsed time.Duration) Report {
	// same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	contigs := make([]Contig, len(res.Contigs))
	for i, c := range res.Contigs {
		contigs[i] = Contig{
			ID:     contigID(i),
			Length: len(c),
			Seq:    c,
		}
	}

	merges := res.Merges
	if merges == nil {
		merges = []assemble.Merge{}
	}

	return Report{
		Input:     input,
		MinMatch:  minMatch,
		Time:      stamp,
		Execution: elapsed.Seconds(),
		Reads:     reads,
		State:     res.State.String(),
		Contigs:   contigs,
		Merges:    merges,
	}
}

// WriteContigs writes each contig as a ">ResultN <length>" header followed by its sequence.
func WriteContigs(w io.Writer, contigs []string) error {
	bw := bufio.NewWriter(w)
	for i, c := range contigs {
		if _, err := fmt.Fprintf(bw, ">%s %d\n%s\n", contigID(i), len(c), c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJSON serializes the report to filename.
func WriteJSON(filename string, report Report) (output []byte, err error) {
	output, err = json.MarshalIndent(report, "", "  ")
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = ioutil.WriteFile(filename, output, 0666); err != nil {
		return output, fmt.Errorf("failed to write the output: %v", err)
	}

	return output, nil
}

// contigID is the 1-based name of the i-th contig.
func contigID(i int) string {
	return fmt.Sprintf("Result%d", i+1)
}
