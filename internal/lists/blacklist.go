// fnmatch pattern list
package lists

import (
	"fmt"
	"path/filepath"
)

// Blacklist excludes values matching any of its shell patterns.
type Blacklist []string

// Check verify patterns are valid.
//
// Use it before using MatchString().
func (bl Blacklist) Check() error {
	for _, pattern := range bl {
		_, err := filepath.Match(pattern, "pouet")
		if err != nil {
			return fmt.Errorf("pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// MatchString returns the first pattern that matches the item.
//
// Use Check() before using MatchString().
// panics if pattern is invalid.
// returns empty string if no match.
func (bl Blacklist) MatchString(item string) string {
	for _, pattern := range bl {
		ok, err := filepath.Match(pattern, item)
		if err != nil {
			// Use Check() before using MatchString().
			panic(err)
		}
		if ok {
			return pattern
		}
	}
	return ""
}

// Allows is the negation of MatchString, to use as a filter predicate.
func (bl Blacklist) Allows(item string) bool {
	return bl.MatchString(item) == ""
}

func (bl Blacklist) Filter(items []string) []string {
	return Filter(items, bl.Allows)
}
