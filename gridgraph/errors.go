package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrBadSymbol indicates an unknown character in an ASCII map.
	ErrBadSymbol = errors.New("gridgraph: unknown map symbol")
	// ErrBadRole indicates a Role value outside RoleNone..RoleEnd.
	ErrBadRole = errors.New("gridgraph: unknown role")
	// ErrRoleConflict indicates a role change that would leave the grid without a start.
	ErrRoleConflict = errors.New("gridgraph: role conflict")
	// ErrDuplicateRole indicates an ASCII map with more than one start or end.
	ErrDuplicateRole = errors.New("gridgraph: duplicate start or end")
	// ErrRunInProgress indicates a mutation or second run while a search owns the grid.
	ErrRunInProgress = errors.New("gridgraph: search run in progress")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)
