package normalize

import (
	"fmt"
	"slices"
	"strings"
)

// Alias rename a key in a map.
//
// Returns an error if alias and key already co-exists.
func Alias(yaml map[string]any, key, alias string) (err error) {
	value, hasAlias := yaml[alias]
	if !hasAlias {
		return
	}

	_, hasKey := yaml[key]
	if hasKey {
		return &conflict{
			key0: key,
			key1: alias,
		}
	}

	delete(yaml, alias)
	yaml[key] = value
	return
}

type conflict struct {
	key0 string
	key1 string
}

func (err *conflict) Error() string {
	return fmt.Sprintf("key conflict between %s and %s", err.key0, err.key1)
}

// SpuriousKeys checks for unknown keys in a YAML map.
//
// Reports all unknown keys, sorted.
func SpuriousKeys(yaml map[string]any, knownKeys ...string) error {
	var unknown []string
	for key := range yaml {
		if !slices.Contains(knownKeys, key) {
			unknown = append(unknown, key)
		}
	}
	switch len(unknown) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("unknown key '%s'", unknown[0])
	}
	slices.Sort(unknown)
	return fmt.Errorf("unknown keys '%s'", strings.Join(unknown, "', '"))
}

// ExactlyOne checks that one and only one of keys is set.
//
// Returns the key found.
func ExactlyOne(yaml map[string]any, keys ...string) (string, error) {
	var found []string
	for _, key := range keys {
		if _, ok := yaml[key]; ok {
			found = append(found, key)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return "", fmt.Errorf("missing one of %s", strings.Join(keys, ", "))
	default:
		return "", fmt.Errorf("conflicting keys %s", strings.Join(found, ", "))
	}
}

// IsString checks for string type.
func IsString(yaml any) error {
	_, ok := yaml.(string)
	if !ok && yaml != nil {
		return fmt.Errorf("bad value %v, must be string", yaml)
	}
	return nil
}
