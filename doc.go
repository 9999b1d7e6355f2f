// Package ere compiles and matches POSIX extended regular expressions.
//
// Patterns compile to an accelerated RE2-compatible engine (coregex) running
// in leftmost-longest mode, the POSIX matching rule. Numbered backreferences,
// a GNU extension to the ERE dialect that finite-automaton engines cannot
// execute, fall back to a backtracking engine ([regexp2]). Perl-only syntax
// such as (?=...) has no meaning in the POSIX dialect and is rejected at
// compile time.
//
// A Matcher answers match or no match only; it never reports capture
// positions. Matchers are immutable after compilation and safe for
// concurrent use.
package ere
