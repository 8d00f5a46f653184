package assemble

// Score returns the length of the longest suffix of source that overlaps a
// prefix of target with at least minMatch fraction of identical bases.
//
// Candidate windows are tested from the longest (the shorter of the two sequences)
// down to 2 bp. The first window that meets minMatch is returned. A single bp
// overlap is never accepted, so an exhausted scan always returns 0.
func Score(source, target string, minMatch float64) int {
	// an overlap can't be longer than the target, so only the source's tail matters
	if len(source) > len(target) {
		source = source[len(source)-len(target):]
	}

	for window := len(source); window > 1; window-- {
		offset := len(source) - window

		matches := 0
		for i := 0; i < window; i++ {
			if source[offset+i] == target[i] {
				matches++
			}
		}

		if float64(matches)/float64(window) >= minMatch {
			return window
		}
	}

	return 0
}
