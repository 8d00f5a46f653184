// Package assemble pieces reads together into contigs by greedily merging
// the pair of sequences with the longest suffix-prefix overlap.
package assemble

import (
	"context"
)

// State is where an assembly run stopped (or is).
type State int

const (
	// Running means at least two sequences remain and some pair overlaps
	Running State = iota

	// Stuck means two or more sequences remain but none of them overlap
	Stuck

	// Done means at most one sequence remains
	Done
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stuck:
		return "stuck"
	case Done:
		return "done"
	}
	return "unknown"
}

// Merge is a single step of an assembly: the sequence at Source was joined onto
// the front of the sequence at Target, sharing Overlap bp. Indexes are those of
// the live sequence list at the time of the merge.
type Merge struct {
	Source  int `json:"source"`
	Target  int `json:"target"`
	Overlap int `json:"overlap"`
}

// Result is the outcome of an assembly run.
type Result struct {
	// Contigs are the remaining sequences, in slot order
	Contigs []string

	// Merges are the steps taken, in order
	Merges []Merge

	// State is Stuck or Done for a finished run
	State State
}

// Assemble merges seqs into contigs. See AssembleCtx.
func Assemble(seqs []string, minMatch float64, opts ...Option) *Result {
	res, _ := AssembleCtx(context.Background(), seqs, minMatch, opts...)
	return res
}

// AssembleCtx greedily builds a shortest common superstring of seqs.
//
// Each step finds the highest score in the overlap matrix (first in row-major
// order on ties), joins the source sequence minus its overlapping tail onto the
// target, and keeps the result in the target's slot. It stops once a single
// sequence remains or no pair has a non-zero overlap. Contigs are returned in
// their final slot order, unsorted.
//
// ctx is checked between merges. If it's cancelled the partial result is
// returned, in the Running state, along with ctx's error.
func AssembleCtx(ctx context.Context, seqs []string, minMatch float64, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	m := NewMatrix(seqs, minMatch, opts...)
	defer m.Close()

	res := &Result{State: Done}

	// each merge removes a sequence, so there can be at most n-1 of them
	for steps := m.Len() - 1; steps > 0; steps-- {
		if err := ctx.Err(); err != nil {
			res.State = Running
			res.Contigs = m.Seqs()
			return res, err
		}

		source, target, overlap := m.Max()
		if overlap == 0 {
			res.State = Stuck
			break
		}

		survivor, err := m.Merge(source, target)
		if err != nil {
			// Max never returns a diagonal cell, so this is unreachable
			panic(err)
		}

		res.Merges = append(res.Merges, Merge{
			Source:  source,
			Target:  target,
			Overlap: overlap,
		})
		o.logger.Printf(
			"merged %d into %d: %d bp overlap, %d bp contig, %d sequences left",
			source, target, overlap, len(m.Seq(survivor)), m.Len(),
		)
	}

	res.Contigs = m.Seqs()
	return res, nil
}
