package assemble

import (
	"fmt"

	"github.com/pbenner/threadpool"
)

// Matrix holds the pairwise overlap scores of the live sequences. cells[i][j] is
// the overlap of i's suffix with j's prefix, so it is not symmetric, and the
// diagonal is always zero.
//
// Merges shrink the matrix in place: the source's row, column and sequence are
// dropped and only the surviving sequence's row and column are rescored.
type Matrix struct {
	// seqs are the live sequences, one per row/column
	seqs []string

	// cells are the overlap scores, cells[source][target]
	cells [][]int

	// score returns the overlap between two sequences
	score func(source, target string) int

	// threads is the number of workers for filling rows and columns
	threads int

	// pool runs the row/column fills when threads > 1
	pool threadpool.ThreadPool
}

// NewMatrix scores every ordered pair of seqs against the minMatch fraction.
// seqs is copied; the caller's slice is never mutated. Close the matrix when
// done with it to stop its workers.
func NewMatrix(seqs []string, minMatch float64, opts ...Option) *Matrix {
	return newMatrix(seqs, func(source, target string) int {
		return Score(source, target, minMatch)
	}, opts...)
}

// newMatrix builds a matrix with a custom scorer.
func newMatrix(seqs []string, score func(source, target string) int, opts ...Option) *Matrix {
	o := newOptions(opts)

	m := &Matrix{
		seqs:    append([]string(nil), seqs...),
		cells:   make([][]int, len(seqs)),
		score:   score,
		threads: o.threads,
	}
	if m.threads > 1 {
		m.pool = threadpool.New(m.threads, 100*m.threads)
	}

	n := len(m.seqs)
	m.each(n, func(i int) {
		row := make([]int, n)
		for j := range row {
			if i != j {
				row[j] = m.score(m.seqs[i], m.seqs[j])
			}
		}
		m.cells[i] = row
	})

	return m
}

// Close stops the matrix's workers, if it has any. Merges after a Close score
// serially.
func (m *Matrix) Close() {
	if m.threads > 1 {
		m.pool.Stop()
		m.threads = 1
	}
}

// Len is the number of live sequences.
func (m *Matrix) Len() int {
	return len(m.seqs)
}

// Score returns the overlap of i's suffix with j's prefix.
func (m *Matrix) Score(i, j int) int {
	return m.cells[i][j]
}

// Seq returns the live sequence at index i.
func (m *Matrix) Seq(i int) string {
	return m.seqs[i]
}

// Seqs returns a copy of the live sequences in their current order.
func (m *Matrix) Seqs() []string {
	return append([]string(nil), m.seqs...)
}

// Max returns the highest scoring cell. Cells are scanned in row-major order and
// the first cell holding the maximum wins ties. An all zero (or empty) matrix
// returns 0, 0, 0.
func (m *Matrix) Max() (source, target, score int) {
	for i, row := range m.cells {
		for j, s := range row {
			if s > score {
				source, target, score = i, j, s
			}
		}
	}
	return
}

// Merge joins source onto the front of target using their current overlap score.
// The merged sequence takes target's slot, source is removed, and the index of
// the merged sequence (shifted if source preceded it) is returned.
func (m *Matrix) Merge(source, target int) (int, error) {
	n := len(m.seqs)
	if source < 0 || source >= n || target < 0 || target >= n {
		return -1, fmt.Errorf("merge of %d into %d is out of range for %d sequences", source, target, n)
	}
	if source == target {
		return -1, fmt.Errorf("cannot merge sequence %d into itself", source)
	}

	k := m.cells[source][target]
	head := m.seqs[source]
	m.seqs[target] = head[:len(head)-k] + m.seqs[target]

	m.remove(source)
	if source < target {
		target--
	}
	m.rescore(target)

	return target, nil
}

// remove drops the sequence at i along with its row and column.
func (m *Matrix) remove(i int) {
	m.seqs = append(m.seqs[:i], m.seqs[i+1:]...)
	m.cells = append(m.cells[:i], m.cells[i+1:]...)
	for r, row := range m.cells {
		m.cells[r] = append(row[:i], row[i+1:]...)
	}
}

// rescore recomputes row t and column t. Every other cell is left as is
// since neither of its sequences changed.
func (m *Matrix) rescore(t int) {
	m.each(len(m.seqs), func(k int) {
		if k == t {
			m.cells[t][t] = 0
			return
		}
		m.cells[t][k] = m.score(m.seqs[t], m.seqs[k])
		m.cells[k][t] = m.score(m.seqs[k], m.seqs[t])
	})
}

// each calls f for every index in [0, n). Calls run on the pool if there is one,
// and each returns only once every call has finished.
func (m *Matrix) each(n int, f func(i int)) {
	if m.threads < 2 || n < 2 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	m.pool.RangeJob(0, n, func(i int, pool threadpool.ThreadPool, erf func() error) error {
		f(i)
		return nil
	})
}
