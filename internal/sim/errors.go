package sim

import "errors"

// Generation and simulation failures are fatal to the current run. The
// dataset is purely derived, so there is no recovery path beyond re-running
// from scratch with a corrected input.
var (
	// ErrInvalidInput covers malformed generator parameters, such as an
	// odd or too-small club count for a round-robin schedule.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownClub is returned when a fixture references a club that is
	// absent from the roster or strength table.
	ErrUnknownClub = errors.New("unknown club")

	// ErrConfigurationDefect is returned when a club has no computable
	// strength, e.g. an empty roster with no fallback rating.
	ErrConfigurationDefect = errors.New("configuration defect")
)
