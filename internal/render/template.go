// Render combinations as text, JSON or YAML.
package render

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dalibo/xprod/internal/errorlist"
	"github.com/dalibo/xprod/internal/lists"
	"github.com/dalibo/xprod/internal/pyfmt"
	mapset "github.com/deckarep/golang-set/v2"
)

// Template turns a combination into a line.
//
// Fields reference dimensions by name or by zero-based index. Without a
// format, values are joined with a tab.
type Template struct {
	Names  []string
	format pyfmt.Format
	index  map[string]int
}

// NewTemplate parses format and resolves its fields against names.
func NewTemplate(format string, names []string) (t Template, err error) {
	t.Names = names
	if format == "" {
		return
	}
	t.format, err = pyfmt.Parse(format)
	if err != nil {
		return t, fmt.Errorf("format: %w", err)
	}

	fields := t.format.Fields
	slots := lists.NullFilled[int](len(fields))
	errs := errorlist.New("format")
	for i, field := range fields {
		found, err := resolve(names, field.FieldName)
		if err != nil {
			if !errs.Append(err) {
				break
			}
			continue
		}
		slots[i] = found
	}
	if err := errs.Err(); err != nil {
		return t, err
	}

	t.index = make(map[string]int)
	for i, slot := range slots {
		t.index[fields[i].FieldName] = slot.OrElse(-1)
	}

	used := mapset.NewThreadUnsafeSet[string]()
	pyfmt.FieldNames(t.format).Each(func(field string) bool {
		used.Add(names[t.index[field]])
		return false
	})
	unused := lists.AsSet[string](lists.Slice[string](names)).Difference(used)
	if unused.Cardinality() > 0 {
		slog.Debug("Dimensions unused by format.", "dimensions", unused)
	}
	return
}

// resolve finds the dimension referenced by a field name.
func resolve(names []string, field string) (lists.Optional[int], error) {
	if i, err := strconv.Atoi(field); err == nil {
		if i < 0 || i >= len(names) {
			return lists.None[int](), fmt.Errorf("field {%s}: index out of range, %d dimensions", field, len(names))
		}
		return lists.Some(i), nil
	}
	var matches lists.Slice[int]
	for i, name := range names {
		if name == field {
			matches = append(matches, i)
		}
	}
	found, err := lists.GetSingleOrNone[int](matches)
	if err != nil {
		return found, fmt.Errorf("field {%s}: ambiguous: %w", field, err)
	}
	if found.IsNone() {
		return found, fmt.Errorf("field {%s}: unknown dimension", field)
	}
	return found, nil
}

// IsRaw tells whether the template prints values without a format.
func (t Template) IsRaw() bool {
	return t.format.Input == ""
}

// Line renders a combination.
func (t Template) Line(values []string) string {
	if t.IsRaw() {
		return strings.Join(values, "\t")
	}
	return t.format.FormatFunc(func(name string) string {
		return values[t.index[name]]
	})
}
