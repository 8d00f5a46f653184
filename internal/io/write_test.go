package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/jjtimmons/overlap/internal/assemble"
)

func TestWriteContigs(t *testing.T) {
	tests := []struct {
		name    string
		contigs []string
		want    string
	}{
		{
			"single contig",
			[]string{"ABCDEFGHIJ"},
			">Result1 10\nABCDEFGHIJ\n",
		},
		{
			"contigs numbered in order",
			[]string{"AAAA", "TTTTT"},
			">Result1 4\nAAAA\n>Result2 5\nTTTTT\n",
		},
		{
			"no contigs",
			nil,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteContigs(&buf, tt.contigs); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteContigs() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	res := assemble.Assemble([]string{"AAAA", "TTTT"}, 1.0)
	report := NewReport("reads.fa", 1.0, 2, res, 1500*time.Millisecond)

	filename := filepath.Join(t.TempDir(), "out.json")
	output, err := WriteJSON(filename, report)
	if err != nil {
		t.Fatal(err)
	}

	written, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, output) {
		t.Errorf("WriteJSON() returned output that differs from the file")
	}

	var got Report
	if err := json.Unmarshal(written, &got); err != nil {
		t.Fatal(err)
	}

	wantContigs := []Contig{
		{ID: "Result1", Length: 4, Seq: "AAAA"},
		{ID: "Result2", Length: 4, Seq: "TTTT"},
	}
	if !reflect.DeepEqual(got.Contigs, wantContigs) {
		t.Errorf("report contigs = %v, want %v", got.Contigs, wantContigs)
	}
	if got.State != "stuck" || got.Reads != 2 || got.Execution != 1.5 {
		t.Errorf("report = %+v", got)
	}
	if got.Merges == nil || len(got.Merges) != 0 {
		t.Errorf("report merges = %v, want an empty list", got.Merges)
	}
}
