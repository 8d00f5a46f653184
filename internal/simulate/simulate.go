// Package simulate makes synthetic read sets, with known references, for
// exercising the assembler.
package simulate

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	// nucleotides reads are drawn from
	nucleotides = "ACGT"

	// basicOverlap is the bp shared by neighboring reads in Basic and Errors
	basicOverlap = 10

	// repeatOverlap is the bp shared by neighboring reads in Repeat
	repeatOverlap = 80

	// errorPasses is how many times Errors tiles the reference
	errorPasses = 10

	// coverage is the read depth Coverage aims for
	coverage = 10
)

// Sample is a reference sequence and the reads simulated from it.
type Sample struct {
	// Name of the simulation, ex: "Basic"
	Name string

	// Reference the reads came from
	Reference string

	// Reads in the order they were made
	Reads []string

	// Substitutions is the number of bases randomly replaced in Reads
	Substitutions int
}

// Simulator makes samples from a seeded source, so the same seed always gives
// the same samples.
type Simulator struct {
	rand *rand.Rand
}

// New returns a Simulator seeded with seed.
func New(seed int64) *Simulator {
	return &Simulator{rand: rand.New(rand.NewSource(seed))}
}

// Random returns a uniformly random sequence of length n.
func (s *Simulator) Random(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(s.base())
	}
	return sb.String()
}

// Basic tiles a random reference with reads that overlap their neighbors by 10bp.
func (s *Simulator) Basic(seqLen, readLen int) (*Sample, error) {
	if err := checkLengths(seqLen, readLen, basicOverlap); err != nil {
		return nil, err
	}

	ref := s.Random(seqLen)
	reads, err := Tile(ref, readLen, basicOverlap)
	if err != nil {
		return nil, err
	}
	return &Sample{
		Name:      "Basic",
		Reference: ref,
		Reads:     reads,
	}, nil
}

// Repeat tiles a reference containing two repeated stretches (100bp and 150bp)
// with reads that overlap their neighbors by 80bp.
func (s *Simulator) Repeat(seqLen, readLen int) (*Sample, error) {
	if err := checkLengths(seqLen, readLen, repeatOverlap); err != nil {
		return nil, err
	}
	if seqLen/3 < 100 {
		return nil, fmt.Errorf("sequence length %d is too short for repeats, need at least 300", seqLen)
	}

	ref := s.Random(seqLen / 3)
	ref += ref[len(ref)-100:]
	ref += ref[len(ref)-150:]
	if len(ref) < seqLen {
		ref += s.Random(seqLen - len(ref))
	}

	reads, err := Tile(ref, readLen, repeatOverlap)
	if err != nil {
		return nil, err
	}
	return &Sample{
		Name:      "Repeat",
		Reference: ref,
		Reads:     reads,
	}, nil
}

// Errors tiles a random reference ten times over. Each base of each read is
// replaced by a random base with probability rate.
func (s *Simulator) Errors(seqLen, readLen int, rate float64) (*Sample, error) {
	if err := checkLengths(seqLen, readLen, basicOverlap); err != nil {
		return nil, err
	}
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("error rate %v is outside [0, 1]", rate)
	}

	sample := &Sample{
		Name:      "Error",
		Reference: s.Random(seqLen),
	}
	tiles, err := Tile(sample.Reference, readLen, basicOverlap)
	if err != nil {
		return nil, err
	}
	for pass := 0; pass < errorPasses; pass++ {
		for _, tile := range tiles {
			read, n := s.mutate(tile, rate)
			sample.Reads = append(sample.Reads, read)
			sample.Substitutions += n
		}
	}

	return sample, nil
}

// Coverage draws reads from random positions of a random reference so that
// some regions are covered more deeply than others.
func (s *Simulator) Coverage(seqLen, readLen int) (*Sample, error) {
	if err := checkLengths(seqLen, readLen, 0); err != nil {
		return nil, err
	}

	ref := s.Random(seqLen)
	sample := &Sample{
		Name:      "Coverage",
		Reference: ref,
	}
	for i := 0; i < coverage*(seqLen/readLen); i++ {
		start := s.rand.Intn(seqLen + 1)
		if start+readLen >= seqLen {
			// too close to the end, take the read ending at start instead
			start -= readLen
			if start < 0 {
				start = 0
			}
		}
		sample.Reads = append(sample.Reads, ref[start:start+readLen])
	}

	return sample, nil
}

// Tile slices ref into reads of readLen that overlap their neighbors by
// overlap bp. The last read always ends flush with ref, so it may overlap
// its neighbor by more. readLen must be longer than overlap and no longer
// than ref.
func Tile(ref string, readLen, overlap int) (reads []string, err error) {
	if err := checkLengths(len(ref), readLen, overlap); err != nil {
		return nil, err
	}

	step := readLen - overlap
	for j := 0; j < len(ref)-readLen; j += step {
		reads = append(reads, ref[j:j+readLen])
	}
	return append(reads, ref[len(ref)-readLen:]), nil
}

// mutate replaces each base of seq with a random one with probability rate. The
// replacement may be the same base. Returns the read and the number of draws.
func (s *Simulator) mutate(seq string, rate float64) (string, int) {
	read := []byte(seq)
	n := 0
	for i := range read {
		if rate > s.rand.Float64() {
			read[i] = s.base()
			n++
		}
	}
	return string(read), n
}

func (s *Simulator) base() byte {
	return nucleotides[s.rand.Intn(len(nucleotides))]
}

func checkLengths(seqLen, readLen, overlap int) error {
	if readLen <= overlap {
		return fmt.Errorf("read length %d must be longer than the %dbp overlap", readLen, overlap)
	}
	if readLen < 1 || seqLen < readLen {
		return fmt.Errorf("read length %d must be between 1 and the sequence length %d", readLen, seqLen)
	}
	return nil
}
