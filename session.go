// session.go - Sort session controller: one algorithm run per session

/*
SortScope - watch and hear five sorting algorithms at work

(c) 2025 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/SortScope
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"iter"
)

// Controller ticks per second. The host advances the session exactly once
// per tick; suspension happens only at step boundaries.
const TICK_RATE = 60

// How long the fully green verified state is held before marks clear.
const VERIFY_HOLD_TICKS = TICK_RATE / 2 // 0.5s

type SessionState int

const (
	SESSION_IDLE SessionState = iota
	SESSION_SORTING
	SESSION_VERIFYING
	SESSION_HOLDING
)

func (s SessionState) String() string {
	switch s {
	case SESSION_IDLE:
		return "idle"
	case SESSION_SORTING:
		return "sorting"
	case SESSION_VERIFYING:
		return "verifying"
	case SESSION_HOLDING:
		return "verified"
	}
	return "unknown"
}

// SessionOutcome records how the last session ended.
type SessionOutcome int

const (
	OUTCOME_NONE SessionOutcome = iota
	OUTCOME_SORTED
	OUTCOME_NOT_SORTED
	OUTCOME_TERMINATED
)

// SortSession drives one step engine to completion, one step per tick, then
// runs the verification sweep. At most one session is ever running; start
// and randomize commands issued meanwhile are silently ignored by callers
// checking Running(). Cancellation is cooperative, checked at step
// boundaries, idempotent and instantaneous.
//
// Owned exclusively by the stepping lane.
type SortSession struct {
	arr       *SortArray
	algorithm SortAlgorithm
	state     SessionState
	outcome   SessionOutcome
	steps     uint64

	next func() (SortOp, bool)
	stop func()

	verifyPos int
	holdLeft  int
}

func NewSortSession(arr *SortArray) *SortSession {
	return &SortSession{arr: arr}
}

func (s *SortSession) State() SessionState       { return s.state }
func (s *SortSession) Algorithm() SortAlgorithm  { return s.algorithm }
func (s *SortSession) Outcome() SessionOutcome   { return s.outcome }
func (s *SortSession) StepCount() uint64         { return s.steps }
func (s *SortSession) Running() bool             { return s.state != SESSION_IDLE }

// Start begins a session for the chosen algorithm. Accepted only from idle;
// returns false (and does nothing) while another session is running.
func (s *SortSession) Start(alg SortAlgorithm) bool {
	if s.state != SESSION_IDLE {
		return false
	}
	s.arr.UnmarkAll()
	s.algorithm = alg
	s.outcome = OUTCOME_NONE
	s.steps = 0
	s.next, s.stop = iter.Pull(alg.Steps(s.arr))
	s.state = SESSION_SORTING
	return true
}

// Terminate abandons a running session: remaining steps are dropped, marks
// cleared, and the array left in its current permutation with no
// verification. A no-op when nothing is running.
func (s *SortSession) Terminate() {
	if s.state == SESSION_IDLE {
		return
	}
	s.release()
	s.arr.UnmarkAll()
	s.outcome = OUTCOME_TERMINATED
	s.state = SESSION_IDLE
	fmt.Printf("%s terminated after %d steps\n", s.algorithm, s.steps)
}

func (s *SortSession) release() {
	if s.stop != nil {
		s.stop()
	}
	s.next = nil
	s.stop = nil
}

// Advance performs exactly one unit of progress: one engine step while
// sorting, one adjacent-pair check while verifying, one tick of the green
// hold. A no-op when idle.
func (s *SortSession) Advance() {
	switch s.state {
	case SESSION_SORTING:
		if _, ok := s.next(); !ok {
			s.release()
			s.arr.UnmarkAll()
			s.verifyPos = 0
			s.state = SESSION_VERIFYING
			return
		}
		s.steps++

	case SESSION_VERIFYING:
		s.advanceVerify()

	case SESSION_HOLDING:
		s.holdLeft--
		if s.holdLeft <= 0 {
			s.arr.UnmarkAll()
			s.outcome = OUTCOME_SORTED
			s.state = SESSION_IDLE
			fmt.Printf("%s: sorted (%d steps)\n", s.algorithm, s.steps)
		}
	}
}

// advanceVerify checks one adjacent pair per tick, sounding and marking the
// left element, and fails fast on the first inversion. Full success marks
// the last element too and enters the hold state.
func (s *SortSession) advanceVerify() {
	n := s.arr.Size()
	if s.verifyPos >= n-1 {
		if n > 0 {
			s.arr.Mark(n-1, COLOR_VERIFIED)
		}
		s.holdLeft = VERIFY_HOLD_TICKS
		s.state = SESSION_HOLDING
		return
	}
	s.arr.PlayIndex(s.verifyPos)
	s.arr.Mark(s.verifyPos, COLOR_VERIFIED)
	if s.arr.Value(s.verifyPos) > s.arr.Value(s.verifyPos+1) {
		s.arr.UnmarkAll()
		s.outcome = OUTCOME_NOT_SORTED
		s.state = SESSION_IDLE
		fmt.Printf("%s: not sorted - inversion at index %d\n", s.algorithm, s.verifyPos)
		return
	}
	s.verifyPos++
}
