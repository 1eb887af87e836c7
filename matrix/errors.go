package matrix

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput is matched by every *DegenerateInputError via errors.Is.
var ErrDegenerateInput = errors.New("matrix: degenerate chromaticity input")

// Stages at which a derivation can be rejected.
const (
	StageChromaticity = "chromaticity"
	StagePrimaries    = "primaries"
	StageForward      = "forward"
)

// DegenerateInputError reports chromaticities that cannot produce an
// invertible RGB to XYZ matrix: a zero or non-finite coordinate, collinear
// primaries, or a singular forward matrix.
type DegenerateInputError struct {
	Stage  string
	Detail string
	Value  float64
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%v: %s: %s (%g)", ErrDegenerateInput, e.Stage, e.Detail, e.Value)
}

func (e *DegenerateInputError) Unwrap() error {
	return ErrDegenerateInput
}
