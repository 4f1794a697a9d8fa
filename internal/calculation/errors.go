package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInstant marks an instant outside the supported calendar range.
	ErrInvalidInstant = errors.New("invalid instant")
	// ErrConvergence marks an iterative astronomical search that did not settle.
	ErrConvergence = errors.New("astronomical search did not converge")
	// ErrInvalidLunarDate marks a lunar year/month/day that does not exist.
	ErrInvalidLunarDate = errors.New("invalid lunar date")
)

// ConvergenceError carries the state of a failed iterative search.
type ConvergenceError struct {
	Op         string
	Target     float64
	Last       float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: target %.6f, last approximation JD %.6f after %d iterations",
		e.Op, e.Target, e.Last, e.Iterations)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }
