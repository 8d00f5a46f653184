package simulate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jjtimmons/overlap/internal/assemble"
)

func TestTile(t *testing.T) {
	type args struct {
		ref     string
		readLen int
		overlap int
	}
	tests := []struct {
		name    string
		args    args
		want    []string
		wantErr bool
	}{
		{
			"even tiling",
			args{"ABCDEFGHIJ", 4, 1},
			[]string{"ABCD", "DEFG", "GHIJ"},
			false,
		},
		{
			"last read flush with the end",
			args{"ABCDEFGHIJK", 4, 1},
			[]string{"ABCD", "DEFG", "GHIJ", "HIJK"},
			false,
		},
		{
			"read as long as the reference",
			args{"ACGT", 4, 2},
			[]string{"ACGT"},
			false,
		},
		{
			"overlap as long as the read",
			args{"ABCDEFGHIJ", 4, 4},
			nil,
			true,
		},
		{
			"overlap longer than the read",
			args{"ABCDEFGHIJ", 4, 6},
			nil,
			true,
		},
		{
			"read longer than the reference",
			args{"ACGT", 6, 2},
			nil,
			true,
		},
		{
			"empty read",
			args{"ACGT", 0, -1},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tile(tt.args.ref, tt.args.readLen, tt.args.overlap)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Tile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimulator_deterministic(t *testing.T) {
	a, err := New(42).Errors(500, 50, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(42).Errors(500, 50, 0.01)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("Errors() differed between simulators with the same seed")
	}
}

func TestSimulator_Basic(t *testing.T) {
	sample, err := New(1).Basic(400, 50)
	if err != nil {
		t.Fatal(err)
	}

	if len(sample.Reference) != 400 || strings.Trim(sample.Reference, nucleotides) != "" {
		t.Errorf("Basic() reference = %q", sample.Reference)
	}
	for _, r := range sample.Reads {
		if len(r) != 50 || !strings.Contains(sample.Reference, r) {
			t.Errorf("Basic() read %q isn't a 50bp slice of the reference", r)
		}
	}
	if !strings.HasSuffix(sample.Reference, sample.Reads[len(sample.Reads)-1]) {
		t.Error("Basic() last read doesn't end with the reference")
	}
}

func TestSimulator_Basic_assembles(t *testing.T) {
	sample, err := New(7).Basic(1000, 100)
	if err != nil {
		t.Fatal(err)
	}

	res := assemble.Assemble(sample.Reads, 1.0)
	if len(res.Contigs) != 1 || res.Contigs[0] != sample.Reference {
		t.Errorf("Assemble() of Basic reads = %d contigs, want the reference", len(res.Contigs))
	}
}

func TestSimulator_Repeat(t *testing.T) {
	sample, err := New(1).Repeat(900, 100)
	if err != nil {
		t.Fatal(err)
	}

	ref := sample.Reference
	third := ref[:300]
	if ref[300:400] != third[200:] {
		t.Error("Repeat() reference is missing the 100bp repeat")
	}
	if ref[400:550] != ref[250:400] {
		t.Error("Repeat() reference is missing the 150bp repeat")
	}
	if len(ref) != 900 {
		t.Errorf("Repeat() reference length = %d, want 900", len(ref))
	}
}

func TestSimulator_Errors(t *testing.T) {
	sample, err := New(3).Errors(200, 40, 0)
	if err != nil {
		t.Fatal(err)
	}
	if sample.Name != "Error" {
		t.Errorf("Errors() name = %s, want Error", sample.Name)
	}

	tiles, err := Tile(sample.Reference, 40, basicOverlap)
	if err != nil {
		t.Fatal(err)
	}
	if len(sample.Reads) != errorPasses*len(tiles) {
		t.Errorf("Errors() made %d reads, want %d", len(sample.Reads), errorPasses*len(tiles))
	}
	if sample.Substitutions != 0 || !reflect.DeepEqual(sample.Reads[:len(tiles)], tiles) {
		t.Error("Errors() with a 0 rate changed the reads")
	}

	sample, err = New(3).Errors(200, 40, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := errorPasses * len(tiles) * 40; sample.Substitutions != want {
		t.Errorf("Errors() with a rate of 1 made %d substitutions, want %d", sample.Substitutions, want)
	}
}

func TestSimulator_Coverage(t *testing.T) {
	sample, err := New(5).Coverage(300, 30)
	if err != nil {
		t.Fatal(err)
	}

	if len(sample.Reads) != coverage*10 {
		t.Errorf("Coverage() made %d reads, want %d", len(sample.Reads), coverage*10)
	}
	for _, r := range sample.Reads {
		if len(r) != 30 || !strings.Contains(sample.Reference, r) {
			t.Errorf("Coverage() read %q isn't a 30bp slice of the reference", r)
		}
	}
}

func TestSimulator_invalid(t *testing.T) {
	s := New(1)
	tests := []struct {
		name string
		run  func() (*Sample, error)
	}{
		{"read shorter than the overlap", func() (*Sample, error) { return s.Basic(100, 10) }},
		{"read longer than the sequence", func() (*Sample, error) { return s.Basic(100, 200) }},
		{"repeat reads shorter than 80bp", func() (*Sample, error) { return s.Repeat(900, 50) }},
		{"repeat sequence too short", func() (*Sample, error) { return s.Repeat(250, 100) }},
		{"error rate above 1", func() (*Sample, error) { return s.Errors(100, 20, 1.5) }},
		{"empty reads", func() (*Sample, error) { return s.Coverage(100, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.run(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
