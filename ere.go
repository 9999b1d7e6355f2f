package ere

import (
	"time"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// A Matcher is a compiled extended-regular-expression pattern. It is
// immutable after compilation (SetMatchTimeout aside) and safe for
// concurrent use by multiple goroutines.
//
// The zero value holds no pattern; its IsMatch returns [ErrNotCompiled].
type Matcher struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses an extended regular expression and returns a Matcher for
// it. The pattern is matched leftmost-longest, the POSIX rule. Patterns
// containing a numbered backreference, a GNU extension to the dialect, are
// compiled with the backtracking backend; everything else runs on the linear
// one. Invalid patterns yield a [SyntaxError], which matches [ErrSyntax]
// via [errors.Is].
func Compile(pattern string) (*Matcher, error) {
	if err := checkPOSIX(pattern); err != nil {
		return nil, &SyntaxError{Pattern: pattern, Err: err}
	}

	expr := translate(pattern)

	if hasBackreference(pattern) {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, &SyntaxError{Pattern: pattern, Err: err}
		}
		return &Matcher{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, &SyntaxError{Pattern: pattern, Err: err}
	}
	re.Longest()

	return &Matcher{pattern: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Match compiles pattern and reports whether input contains a match of it.
// For repeated queries against one pattern, compile once and reuse the
// Matcher.
func Match(pattern, input string) (bool, error) {
	m, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return m.IsMatch(input)
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern used to compile the Matcher.
func (m *Matcher) String() string {
	return m.pattern
}

// IsMatch reports whether input contains any match of the pattern. The
// pattern is not anchored unless it anchors itself with ^ or $.
//
// A clean miss is (false, nil). A non-nil error means the engine itself
// failed, such as a backtracking timeout; callers must not read it as
// "no match".
func (m *Matcher) IsMatch(input string) (bool, error) {
	switch {
	case m.core != nil:
		return m.core.MatchString(input), nil
	case m.pcre != nil:
		return m.pcre.MatchString(input)
	default:
		return false, ErrNotCompiled
	}
}

// SetMatchTimeout bounds how long a single IsMatch call may run on the
// backtracking backend; past the deadline IsMatch returns an error. It has
// no effect on the linear backend, which runs in time proportional to the
// input.
func (m *Matcher) SetMatchTimeout(d time.Duration) {
	if m.pcre != nil {
		m.pcre.MatchTimeout = d
	}
}
