package ere

import "sync"

// A Cache memoizes compiled patterns so hot paths can look a Matcher up by
// its source text instead of recompiling it on every use. The zero value is
// ready to use and safe for concurrent use.
//
// Only successful compilations are cached; asking again for a bad pattern
// recompiles it and returns the same error.
type Cache struct {
	mu       sync.RWMutex
	matchers map[string]*Matcher
}

// Get returns the Matcher for pattern, compiling and caching it on first
// use.
func (c *Cache) Get(pattern string) (*Matcher, error) {
	c.mu.RLock()
	m, ok := c.matchers[pattern]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.matchers == nil {
		c.matchers = make(map[string]*Matcher)
	}
	// Keep the first entry if another goroutine compiled the same pattern
	// concurrently, so all callers share one Matcher.
	if prev, ok := c.matchers[pattern]; ok {
		m = prev
	} else {
		c.matchers[pattern] = m
	}
	c.mu.Unlock()

	return m, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.matchers)
}
