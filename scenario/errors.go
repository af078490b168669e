package scenario

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrNoStart indicates that the map has no 'S' cell.
	ErrNoStart = errors.New("scenario: map has no start cell")

	// ErrNoGoal indicates that the map has no 'G' cell.
	ErrNoGoal = errors.New("scenario: map has no goal cell")

	// ErrDuplicateMarker indicates more than one 'S' or 'G'.
	ErrDuplicateMarker = errors.New("scenario: duplicate start or goal marker")

	// ErrBadSymbol indicates a map rune outside the legend.
	ErrBadSymbol = errors.New("scenario: unknown map symbol")

	// ErrBadCell indicates an obstacle coordinate that is malformed or outside the map.
	ErrBadCell = errors.New("scenario: bad obstacle cell")
)
