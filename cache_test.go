package ere

import (
	"errors"
	"testing"
)

func TestCacheGet(t *testing.T) {
	var c Cache

	first, err := c.Get("foo|bar")
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	second, err := c.Get("foo|bar")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if first != second {
		t.Fatalf("cache returned distinct matchers for the same pattern")
	}
	if c.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", c.Len())
	}

	if ok, _ := first.IsMatch("a bar b"); !ok {
		t.Fatalf("cached matcher lost its pattern")
	}
}

func TestCacheDoesNotCacheErrors(t *testing.T) {
	var c Cache

	for range 2 {
		if _, err := c.Get("["); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Get with bad pattern: got %v, want ErrSyntax", err)
		}
	}
	if c.Len() != 0 {
		t.Fatalf("bad pattern ended up cached, Len = %d", c.Len())
	}
}

func TestCacheConcurrentGet(t *testing.T) {
	var c Cache

	done := make(chan *Matcher, 8)
	for range 8 {
		go func() {
			m, err := c.Get("a{2,3}")
			if err != nil {
				t.Errorf("Get: %v", err)
			}
			done <- m
		}()
	}

	first := <-done
	for range 7 {
		if m := <-done; m != first {
			t.Fatalf("concurrent Gets returned distinct matchers")
		}
	}
	if c.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", c.Len())
	}
}
