// SPDX-License-Identifier: MIT

package oracle

import "github.com/lvlath-research/triangle-inflation/event"

// StopMode selects whether Optimize should find the true minimum (Opt) or
// merely a witness of non-positive score (Sat), short-circuiting as soon
// as one is found (spec.md §4.11).
type StopMode int

const (
	Opt StopMode = iota
	Sat
)

// Solution is the result of one Optimize call: the minimizing inflation
// event and its integer score.
type Solution struct {
	Score int64
	Event event.Event
}

// better reports whether candidate improves on the current best, treating
// an unset best (ok == false) as losing to any candidate.
func better(best Solution, bestOK bool, candidate Solution) bool {
	return !bestOK || candidate.Score < best.Score
}
