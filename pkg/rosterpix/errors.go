package rosterpix

import (
	"errors"
	"fmt"
)

// ErrEmptyRegion indicates the merged region computes to zero drawable
// area, which only happens with corrupt stored dimensions.
var ErrEmptyRegion = errors.New("merged region has no drawable area")

// PlacementError reports a failure while placing photos on one sheet.
type PlacementError struct {
	Sheet string
	Err   error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placing photos on sheet %q: %v", e.Sheet, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
