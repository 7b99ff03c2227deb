package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var Outputs = []string{"text", "json", "yaml"}

// Writer prints combinations one at a time.
//
// Close flushes buffered output. The Writer does not close the underlying
// io.Writer.
type Writer interface {
	Write(values []string) error
	Close() error
}

// New returns the Writer for output.
func New(output string, w io.Writer, t Template) (Writer, error) {
	b := bufio.NewWriter(w)
	switch output {
	case "text":
		return &textWriter{w: b, t: t}, nil
	case "json":
		return &jsonWriter{w: b, t: t}, nil
	case "yaml":
		return &yamlWriter{w: b, t: t}, nil
	default:
		return nil, fmt.Errorf("unknown output %q, must be one of %s", output, strings.Join(Outputs, ", "))
	}
}

type textWriter struct {
	w *bufio.Writer
	t Template
}

func (w *textWriter) Write(values []string) error {
	_, err := w.w.WriteString(w.t.Line(values) + "\n")
	return err
}

func (w *textWriter) Close() error {
	return w.w.Flush()
}

// jsonWriter writes one object per line, keys in dimension order.
type jsonWriter struct {
	w *bufio.Writer
	t Template
}

func (w *jsonWriter) Write(values []string) error {
	keys, fields := pairs(w.t, values)
	w.w.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			w.w.WriteString(", ")
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(fields[i])
		if err != nil {
			return err
		}
		w.w.Write(k)
		w.w.WriteString(": ")
		w.w.Write(v)
	}
	_, err := w.w.WriteString("}\n")
	return err
}

func (w *jsonWriter) Close() error {
	return w.w.Flush()
}

// yamlWriter writes a block sequence, one mapping per combination.
type yamlWriter struct {
	w     *bufio.Writer
	t     Template
	count int
}

func (w *yamlWriter) Write(values []string) error {
	keys, fields := pairs(w.t, values)
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for i, key := range keys {
		mapping.Content = append(mapping.Content, str(key), str(fields[i]))
	}
	item := &yaml.Node{Kind: yaml.SequenceNode, Content: []*yaml.Node{mapping}}
	// One encoder per item avoids document separators.
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(item); err != nil {
		return err
	}
	w.count++
	return encoder.Close()
}

func (w *yamlWriter) Close() error {
	if w.count == 0 {
		w.w.WriteString("[]\n")
	}
	return w.w.Flush()
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// pairs returns keys and values of the object describing a combination.
func pairs(t Template, values []string) ([]string, []string) {
	if t.IsRaw() {
		return t.Names, values
	}
	return []string{"name"}, []string{t.Line(values)}
}
