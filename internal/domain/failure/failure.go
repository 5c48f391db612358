// Where: internal/domain/failure/failure.go
// What: Error taxonomy shared by every layer.
// Why: Let the command boundary classify failures with errors.Is.
package failure

import "errors"

var (
	// ErrNameConflict reports a component name that already exists.
	ErrNameConflict = errors.New("name conflict")
	// ErrIO reports a file that could not be read or written.
	ErrIO = errors.New("io failure")
	// ErrParse reports a persisted document with an invalid structure.
	ErrParse = errors.New("parse failure")
	// ErrSelectionCancelled reports an aborted interactive prompt.
	ErrSelectionCancelled = errors.New("selection cancelled")
	// ErrArityMismatch reports unequal key and value counts.
	ErrArityMismatch = errors.New("arity mismatch")
	// ErrEmptyInput reports a component creation without keys or values.
	ErrEmptyInput = errors.New("empty input")
)

// Kind returns a short label for the first taxonomy error found in err.
// It returns an empty string for errors outside the taxonomy.
func Kind(err error) string {
	for _, sentinel := range []error{
		ErrNameConflict,
		ErrIO,
		ErrParse,
		ErrSelectionCancelled,
		ErrArityMismatch,
		ErrEmptyInput,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return ""
}
