package ribbon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by every [*InvalidParameterError].
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNotDrawing is returned when a sample arrives while no stroke is
	// active.
	ErrNotDrawing = errors.New("no stroke in progress")
	// ErrNotTracking is returned when a stroke is started while the camera
	// isn't tracking normally.
	ErrNotTracking = errors.New("camera tracking is not normal")
)

// InvalidParameterError describes a construction parameter that was rejected.
type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %g", e.Name, e.Value)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}
