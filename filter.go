package ere

// A FilterSet narrows a stream of names with include and exclude patterns.
// A name passes when every include pattern matches it and no exclude
// pattern does. The zero value passes everything.
//
// Rules are compiled as they are added, so a bad pattern surfaces at
// Include or Exclude time rather than on every Keep call.
type FilterSet struct {
	rules []filterRule
}

type filterRule struct {
	m       *Matcher
	exclude bool
}

// Include adds a rule requiring names to match pattern.
func (f *FilterSet) Include(pattern string) error {
	m, err := Compile(pattern)
	if err != nil {
		return err
	}
	f.rules = append(f.rules, filterRule{m: m})
	return nil
}

// Exclude adds a rule rejecting names that match pattern.
func (f *FilterSet) Exclude(pattern string) error {
	m, err := Compile(pattern)
	if err != nil {
		return err
	}
	f.rules = append(f.rules, filterRule{m: m, exclude: true})
	return nil
}

// Keep reports whether name passes every rule in the set.
func (f *FilterSet) Keep(name string) (bool, error) {
	for _, r := range f.rules {
		ok, err := r.m.IsMatch(name)
		if err != nil {
			return false, err
		}
		if ok == r.exclude {
			return false, nil
		}
	}
	return true, nil
}
