package kmeans

import (
	"context"
	"fmt"

	"github.com/hupe1980/lloyd/model"
)

// Phase is the state of a refinement run.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseIterating
	PhaseConverged
	PhaseIterationLimitReached
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseIterating:
		return "Iterating"
	case PhaseConverged:
		return "Converged"
	case PhaseIterationLimitReached:
		return "IterationLimitReached"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Terminal reports whether no further step may be taken.
func (p Phase) Terminal() bool {
	return p == PhaseConverged || p == PhaseIterationLimitReached
}

// State is an immutable snapshot of a run between iterations.
type State struct {
	Phase       Phase
	Centroids   []model.Point
	Assignments []int
	// Sizes holds the number of points per cluster after the last update.
	Sizes []int
	// Iteration is the number of completed iterations.
	Iteration int
	// Shift is the largest centroid movement in the last iteration.
	Shift float64
	// Changes is the number of points that switched cluster in the last iteration.
	Changes int
}

// Config holds the loop parameters used by Step.
type Config struct {
	MaxIterations int
	Tolerance     float64
	Exec          Exec
}

// Start runs the initializer and returns the first iterating state.
func Start(data model.Dataset, k int, init Initializer) (State, error) {
	if init == nil {
		init = FirstK{}
	}

	centroids, err := init.Init(data, k)
	if err != nil {
		return State{Phase: PhaseInitializing}, err
	}
	if len(centroids) != k {
		return State{Phase: PhaseInitializing}, &ErrLengthMismatch{What: "initial centroid", Expected: k, Actual: len(centroids)}
	}

	assignments := make([]int, len(data))
	for i := range assignments {
		assignments[i] = Unassigned
	}

	return State{
		Phase:       PhaseIterating,
		Centroids:   centroids,
		Assignments: assignments,
	}, nil
}

// Step performs one Assign/Update/Converged cycle and returns the next state.
// s is not modified.
func Step(ctx context.Context, s State, data model.Dataset, cfg Config) (State, error) {
	if s.Phase != PhaseIterating {
		return s, ErrNotIterating
	}

	assignments, err := Assign(ctx, data, s.Centroids, cfg.Exec)
	if err != nil {
		return s, err
	}

	next, sizes, err := Update(ctx, data, assignments, s.Centroids, cfg.Exec)
	if err != nil {
		return s, err
	}

	converged, shift, err := Converged(s.Centroids, next, cfg.Tolerance)
	if err != nil {
		return s, err
	}

	ns := State{
		Phase:       PhaseIterating,
		Centroids:   next,
		Assignments: assignments,
		Sizes:       sizes,
		Iteration:   s.Iteration + 1,
		Shift:       shift,
		Changes:     Changes(s.Assignments, assignments),
	}

	switch {
	case converged:
		ns.Phase = PhaseConverged
	case ns.Iteration >= cfg.MaxIterations:
		ns.Phase = PhaseIterationLimitReached
	}

	return ns, nil
}
