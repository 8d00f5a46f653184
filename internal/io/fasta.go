// Package io reads reads from FASTA files and writes assembled contigs.
package io

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Record is a single FASTA entry.
type Record struct {
	// ID is the first whitespace delimited token of the header
	ID string

	// Seq is the uppercased sequence, line breaks removed
	Seq string
}

// ReadFASTA reads a FASTA file (by its path on local FS) to a slice of Records.
// Files ending in .gz are decompressed.
func ReadFASTA(path string) (records []Record, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to FASTA file: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA file: %v", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}

	return ParseFASTA(r, path)
}

// ParseFASTA parses multi-FASTA text into Records. name identifies the
// source in error messages.
//
// Sequence lines before the first header, a source without any records, and
// records without a sequence are all errors.
func ParseFASTA(r io.Reader, name string) ([]Record, error) {
	var records []Record
	var seq strings.Builder

	// flush the sequence lines gathered for the last header
	flush := func() error {
		if len(records) == 0 {
			return nil
		}
		last := &records[len(records)-1]
		if seq.Len() == 0 {
			return fmt.Errorf("failed to parse %s: record %q has no sequence", name, last.ID)
		}
		last.Seq = strings.ToUpper(seq.String())
		seq.Reset()
		return nil
	}

	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read %s: %v", name, readErr)
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case line[0] == '>':
			if err := flush(); err != nil {
				return nil, err
			}
			id := ""
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				id = fields[0]
			}
			records = append(records, Record{ID: id})
		default:
			if len(records) == 0 {
				return nil, fmt.Errorf("failed to parse %s: line %d has sequence before any '>' header", name, lineNo)
			}
			seq.WriteString(line)
		}

		if readErr == io.EOF {
			break
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	// opened and parsed file but found nothing
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse any records from %s", name)
	}

	return records, nil
}

// Seqs returns the sequence of each record, in order.
func Seqs(records []Record) []string {
	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}
	return seqs
}

// WriteFASTA writes records to w, one sequence line per record.
func WriteFASTA(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", r.ID, r.Seq); err != nil {
			return err
		}
	}
	return bw.Flush()
}
