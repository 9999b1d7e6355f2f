package ere

import "strings"

// checkPOSIX rejects constructs the POSIX extended dialect gives no meaning
// to. The only lexical giveaway is "(?": every group extension in the Perl
// dialects starts with it, while in an ERE a ? directly after ( is a
// repetition operator with nothing to repeat.
func checkPOSIX(pattern string) error {
	escaped := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '[':
			i = skipBracket(pattern, i) - 1
		case '(':
			if i+1 < len(pattern) && pattern[i+1] == '?' {
				return errRepetitionOperand
			}
		}
	}
	return nil
}

// translate rewrites the GNU escape extensions into forms both backends
// accept: \< and \> (word edges) become \b, \` and \' (buffer edges) become
// \A and \z. Bracket expressions pass through verbatim since POSIX treats a
// backslash inside them as a literal.
func translate(pattern string) string {
	if !strings.ContainsRune(pattern, '\\') {
		return pattern
	}

	var b strings.Builder
	b.Grow(len(pattern) + 2)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '[' {
			end := skipBracket(pattern, i)
			b.WriteString(pattern[i:end])
			i = end - 1
			continue
		}
		if c != '\\' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}

		i++
		switch pattern[i] {
		case '<', '>':
			b.WriteString(`\b`)
		case '`':
			b.WriteString(`\A`)
		case '\'':
			b.WriteString(`\z`)
		default:
			b.WriteByte('\\')
			b.WriteByte(pattern[i])
		}
	}

	return b.String()
}

// hasBackreference reports whether the pattern contains a numbered
// backreference \1..\9 outside a bracket expression, tracking escapes so
// that \\1 (a literal backslash followed by a digit) does not count.
func hasBackreference(pattern string) bool {
	escaped := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
				return true
			}
			escaped = true
		case '[':
			i = skipBracket(pattern, i) - 1
		}
	}
	return false
}

// skipBracket returns the index just past the bracket expression opening at
// pattern[i], or len(pattern) if it never closes. A leading ^ and a ] in
// first position are part of the expression, as are the [:class:], [=equiv=]
// and [.collate.] forms.
func skipBracket(pattern string, i int) int {
	i++
	if i < len(pattern) && pattern[i] == '^' {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for i < len(pattern) {
		switch pattern[i] {
		case ']':
			return i + 1
		case '[':
			if i+1 < len(pattern) {
				if d := pattern[i+1]; d == ':' || d == '=' || d == '.' {
					end := strings.Index(pattern[i+2:], string(d)+"]")
					if end < 0 {
						return len(pattern)
					}
					i += 2 + end + 2
					continue
				}
			}
			i++
		default:
			i++
		}
	}
	return i
}
