package render_test

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/dalibo/xprod/internal/render"
	"gopkg.in/yaml.v3"
)

var combinations = [][]string{
	{"dev", "1"},
	{"prod", "yes"},
}

func (suite *Suite) write(output, format string) string {
	r := suite.Require()

	t, err := render.NewTemplate(format, []string{"env", "shard"})
	r.Nil(err)
	var b bytes.Buffer
	w, err := render.New(output, &b, t)
	r.Nil(err)
	for _, values := range combinations {
		r.Nil(w.Write(values))
	}
	r.Nil(w.Close())
	return b.String()
}

func (suite *Suite) TestText() {
	r := suite.Require()

	r.Equal("dev\t1\nprod\tyes\n", suite.write("text", ""))
	r.Equal("dev-1\nprod-yes\n", suite.write("text", "{env}-{shard}"))
}

func (suite *Suite) TestJSON() {
	r := suite.Require()

	out := suite.write("json", "")
	r.Equal("{\"env\": \"dev\", \"shard\": \"1\"}\n{\"env\": \"prod\", \"shard\": \"yes\"}\n", out)

	out = suite.write("json", "{env.upper()}")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	r.Len(lines, 2)
	var item map[string]string
	r.Nil(json.Unmarshal([]byte(lines[1]), &item))
	r.Equal(map[string]string{"name": "PROD"}, item)
}

func (suite *Suite) TestYAML() {
	r := suite.Require()

	var items []map[string]string
	r.Nil(yaml.Unmarshal([]byte(suite.write("yaml", "")), &items))
	r.Equal([]map[string]string{
		{"env": "dev", "shard": "1"},
		{"env": "prod", "shard": "yes"},
	}, items)

	// Values stay strings.
	var raw []map[string]any
	r.Nil(yaml.Unmarshal([]byte(suite.write("yaml", "")), &raw))
	r.Equal("1", raw[0]["shard"])

	items = nil
	r.Nil(yaml.Unmarshal([]byte(suite.write("yaml", "{shard}")), &items))
	r.Equal([]map[string]string{{"name": "1"}, {"name": "yes"}}, items)
}

func (suite *Suite) TestEmptyYAML() {
	r := suite.Require()

	t, err := render.NewTemplate("", nil)
	r.Nil(err)
	var b bytes.Buffer
	w, err := render.New("yaml", &b, t)
	r.Nil(err)
	r.Nil(w.Close())
	r.Equal("[]\n", b.String())
}

func (suite *Suite) TestUnknownOutput() {
	r := suite.Require()

	_, err := render.New("xml", &bytes.Buffer{}, render.Template{})
	r.ErrorContains(err, `unknown output "xml"`)
}
