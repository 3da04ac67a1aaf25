package masking

import (
	"sort"
)

// resolveOverlaps deduplicates raw candidates with a first-claimed-wins
// policy: each candidate, in arrival order, is accepted only if it conflicts
// with no already-accepted span; otherwise it is discarded and never retried.
// An earlier-evaluated rule can therefore shadow a more specific later rule
// over the same region; that precedence is part of the redaction contract.
// The accepted set is returned sorted ascending by Start.
func resolveOverlaps(candidates []Span) []Span {
	accepted := make([]Span, 0, len(candidates))
	for _, cand := range candidates {
		if conflicts(accepted, cand) {
			continue
		}
		accepted = append(accepted, cand)
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}

// conflicts reports whether cand intersects any accepted span. The test is
// inclusive at both ends, so a candidate that merely touches an accepted
// span ([0,5) against [5,8)) is rejected as well. That is stricter than a
// half-open intersection check and drops some legitimately adjacent spans,
// but downstream consumers depend on the current coverage; do not relax it.
func conflicts(accepted []Span, cand Span) bool {
	for _, a := range accepted {
		if cand.Start <= a.End && cand.End >= a.Start {
			return true
		}
	}
	return false
}
