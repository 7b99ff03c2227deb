// Python-like format strings: "{env}-{region.upper()}".
package pyfmt

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gosimple/slug"
)

type Format struct {
	Input string
	// List of either literal or field, in order.
	Sections []Section
	Fields   []*Field
}

// Section is either a literal or a reference to a field.
type Section struct {
	Literal string
	Field   *Field
}

func (f Format) IsStatic() bool {
	return len(f.Fields) == 0
}

type Field struct {
	FieldName  string
	FormatSpec string
	Conversion string
	Method     string
}

var methods = map[string]func(string) string{
	"":      func(s string) string { return s },
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"slug":  slug.Make,
	"identifier": func(s string) string {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	},
	"string": func(s string) string {
		return "'" + strings.ReplaceAll(s, "'", "''") + "'"
	},
}

func Parse(f string) (format Format, err error) {
	err = format.Parse(f)
	return
}

func (f *Format) Parse(s string) (err error) {
	f.Input = s
	var (
		end     = len(s)
		inField = false
		next    byte
		start   int
	)

	for i := 0; i < end; { // Loops sections in s.
		start = i // Track the start of the section. i will move to the end.
		if inField {
			loc := strings.IndexByte(s[i:], '}')
			if loc == -1 {
				return errors.New("end of string before end of field")
			}
			i += loc // Move before }
			field, err := parseField(s[start:i])
			if err != nil {
				return err
			}
			f.Sections = append(f.Sections, Section{Field: field})
			f.Fields = append(f.Fields, field)
			i++ // Move after }
			inField = false
			continue
		}

		loc := strings.IndexByte(s[i:], '{')
		if loc == -1 {
			// toto
			//     ^
			i = end
		} else {
			// toto{titi} OR toto{{titi
			//     ^             ^
			i += loc // Move before {
			if i < end-1 {
				next = s[i+1]
			} else {
				next = 0
			}
			if next == '{' {
				// Escaped {{: keep the first { in this literal, skip the second.
				i++
			} else {
				inField = true
			}
		}
		if i > start { // Avoid empty literal.
			f.appendLiteral(strings.ReplaceAll(s[start:i], "}}", "}"))
		}
		i++ // Move after {, literal or escape.
	}
	if inField {
		err = errors.New("unexpected end of format")
	}
	return
}

func (f *Format) appendLiteral(s string) {
	last := len(f.Sections) - 1
	if last >= 0 && f.Sections[last].Field == nil {
		f.Sections[last].Literal += s
		return
	}
	f.Sections = append(f.Sections, Section{Literal: s})
}

func parseField(s string) (*Field, error) {
	f := &Field{}
	before, after, found := strings.Cut(s, "!")
	if found {
		// case {0!r} OR {0!r:>30}
		f.FieldName = before
		before, after, _ = strings.Cut(after, ":")
		f.Conversion = before
	} else {
		// case {0} OR {0:>30}
		before, after, _ = strings.Cut(before, ":")
		f.FieldName = before
	}
	f.FormatSpec = after
	if strings.HasSuffix(f.FieldName, "()") {
		lastPoint := strings.LastIndex(f.FieldName, ".")
		if lastPoint == -1 {
			return nil, fmt.Errorf("method without field: %s", s)
		}
		f.Method = strings.TrimSuffix(f.FieldName[lastPoint+1:], "()")
		f.FieldName = f.FieldName[:lastPoint]
		if _, ok := methods[f.Method]; !ok {
			return nil, fmt.Errorf("unknown method %s()", f.Method)
		}
	}
	return f, nil
}

// Format renders values indexed by field name.
//
// Missing values are rendered empty.
func (f Format) Format(values map[string]string) string {
	return f.FormatFunc(func(name string) string {
		return values[name]
	})
}

// FormatFunc renders using lookup to resolve field names.
func (f Format) FormatFunc(lookup func(name string) string) string {
	b := strings.Builder{}
	for _, section := range f.Sections {
		if section.Field == nil {
			b.WriteString(section.Literal)
			continue
		}
		v := lookup(section.Field.FieldName)
		b.WriteString(methods[section.Field.Method](v))
	}
	return b.String()
}

func (f Format) String() string {
	return f.Input
}

// FieldNames returns the distinct field names referenced by formats.
func FieldNames(fmts ...Format) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, f := range fmts {
		for _, field := range f.Fields {
			set.Add(field.FieldName)
		}
	}
	return set
}
