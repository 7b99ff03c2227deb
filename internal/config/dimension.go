package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalibo/xprod/internal/lists"
	"github.com/dalibo/xprod/internal/normalize"
	"github.com/dalibo/xprod/internal/product"
	"github.com/dalibo/xprod/internal/source"
	"github.com/knadh/koanf/maps"
	"github.com/mitchellh/mapstructure"
)

// Dimension describes one input of the cross product.
//
// Exactly one of Values, File or Range is set.
type Dimension struct {
	Name    string
	Values  []string
	File    string
	Range   *RangeSpec
	Exclude lists.Blacklist
	Unique  bool
}

type RangeSpec struct {
	Start int
	Stop  int
	Step  int
}

var dimensionKeys = []string{"name", "values", "file", "range", "exclude", "unique"}

// DecodeDimension reads a dimension from loose YAML.
func DecodeDimension(yaml any) (d Dimension, err error) {
	m, ok := yaml.(map[string]any)
	if !ok {
		return d, fmt.Errorf("bad dimension %v, must be a map", yaml)
	}
	// Normalization mutates the map, don't touch koanf internals.
	m = maps.Copy(m)

	err = normalize.Alias(m, "values", "value")
	if err != nil {
		return
	}
	err = normalize.SpuriousKeys(m, dimensionKeys...)
	if err != nil {
		return
	}
	if err = normalize.IsString(m["name"]); err != nil {
		return d, fmt.Errorf("name: %w", err)
	}
	kind, err := normalize.ExactlyOne(m, "values", "file", "range")
	if err != nil {
		return
	}
	if kind == "values" {
		m["values"], err = normalize.Strings(m["values"])
		if err != nil {
			return d, fmt.Errorf("values: %w", err)
		}
	}
	if v, ok := m["exclude"]; ok {
		m["exclude"], err = normalize.Strings(v)
		if err != nil {
			return d, fmt.Errorf("exclude: %w", err)
		}
	}
	if v, ok := m["unique"]; ok {
		m["unique"] = normalize.Boolean(v)
	}
	if r, ok := m["range"].(map[string]any); ok {
		if _, ok := r["step"]; !ok {
			r["step"] = 1
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &d,
	})
	if err != nil {
		return
	}
	err = decoder.Decode(m)
	return
}

// ParseArg reads a dimension from a NAME=V1,V2 command line argument.
func ParseArg(arg string) (d Dimension, err error) {
	name, values, found := strings.Cut(arg, "=")
	if !found {
		return d, fmt.Errorf("bad argument %q, expected NAME=V1,V2", arg)
	}
	d.Name = strings.TrimSpace(name)
	if values != "" {
		d.Values = lists.Map(strings.Split(values, ","), strings.TrimSpace)
	} else {
		d.Values = []string{}
	}
	return d, nil
}

// Check validates a decoded dimension.
func (d Dimension) Check() error {
	if d.Name == "" {
		return fmt.Errorf("missing name")
	}
	if _, err := strconv.Atoi(d.Name); err == nil {
		return fmt.Errorf("name %s: numeric names conflict with positional fields", d.Name)
	}
	if err := d.Exclude.Check(); err != nil {
		return fmt.Errorf("%s: exclude: %w", d.Name, err)
	}
	if d.Range != nil && d.Range.Step == 0 {
		return fmt.Errorf("%s: range step must not be zero", d.Name)
	}
	return nil
}

// Sequence builds the reopenable source of the dimension values.
func (d Dimension) Sequence(retries uint) (seq product.Sequence[string], err error) {
	switch {
	case d.File != "":
		seq = source.File(d.File, retries)
		if d.Unique {
			seq = uniqueSequence(seq)
		}
	case d.Range != nil:
		// A range never repeats a value.
		var ints product.Sequence[int]
		ints, err = source.Range(d.Range.Start, d.Range.Stop, d.Range.Step)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		seq = product.Map(ints, strconv.Itoa)
	default:
		values := d.Values
		if d.Unique {
			values = unique(values)
		}
		seq = product.Slice(values)
	}

	if len(d.Exclude) > 0 {
		seq = product.Filter(seq, d.Exclude.Allows)
	}
	return seq, nil
}
