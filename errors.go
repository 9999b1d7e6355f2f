package ere

import (
	"errors"
	"strconv"
)

// ErrSyntax reports that a pattern is not a valid extended regular
// expression. Errors returned by [Compile] match it via [errors.Is].
var ErrSyntax = errors.New("invalid extended regular expression")

// ErrNotCompiled is returned by [Matcher.IsMatch] on a zero-value Matcher,
// which holds no compiled pattern. Matchers obtained from [Compile] never
// return it.
var ErrNotCompiled = errors.New("ere: matcher holds no compiled pattern")

// errRepetitionOperand is the diagnostic for a repetition operator that has
// nothing before it to repeat, such as the ? in "(?".
var errRepetitionOperand = errors.New("repetition operator has no preceding expression")

// A SyntaxError describes a pattern the engine could not compile. It wraps
// the engine's own diagnostic.
type SyntaxError struct {
	Pattern string
	Err     error
}

func (e *SyntaxError) Error() string {
	return "ere: parsing " + strconv.Quote(e.Pattern) + ": " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrSyntax], so callers can classify compile
// failures without depending on the underlying engine's error types.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
