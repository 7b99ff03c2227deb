package pyfmt_test

import (
	"fmt"

	"github.com/dalibo/xprod/internal/pyfmt"
)

func ExampleFormat_Format() {
	f, _ := pyfmt.Parse("{env}-{region.upper()}-{0}")
	fmt.Println(f.Format(map[string]string{"env": "prod", "region": "eu-west", "0": "x"}))
	// Output: prod-EU-WEST-x
}

func (suite *Suite) TestParseLiteralOnly() {
	r := suite.Require()
	f, err := pyfmt.Parse("toto")
	r.Nil(err)
	r.True(f.IsStatic())
	r.Equal(1, len(f.Sections))
	r.Equal("toto", f.Sections[0].Literal)
	r.Equal("toto", f.Format(nil))
}

func (suite *Suite) TestParseMethod() {
	r := suite.Require()
	f, err := pyfmt.Parse("{region.lower()}")
	r.Nil(err)
	r.Equal(1, len(f.Fields))
	r.Equal(1, len(f.Sections))
	r.Equal("region", f.Fields[0].FieldName)
	r.Equal("lower", f.Fields[0].Method)
}

func (suite *Suite) TestParseUnknownMethod() {
	r := suite.Require()
	_, err := pyfmt.Parse("{region.shout()}")
	r.ErrorContains(err, "unknown method shout()")
}

func (suite *Suite) TestParseCombination() {
	r := suite.Require()

	f, err := pyfmt.Parse("ext_{env}")
	r.Nil(err)
	r.Equal(2, len(f.Sections))
	r.Equal("ext_", f.Sections[0].Literal)
	r.Equal("env", f.Fields[0].FieldName)
	r.Same(f.Fields[0], f.Sections[1].Field)
}

func (suite *Suite) TestParseEscaped() {
	r := suite.Require()
	f, err := pyfmt.Parse("literal {{toto}} pouet")
	r.Nil(err)
	r.Equal(0, len(f.Fields))
	r.Equal(1, len(f.Sections))
	r.Equal("literal {toto} pouet", f.Sections[0].Literal)
}

func (suite *Suite) TestParseUnterminatedField() {
	r := suite.Require()
	_, err := pyfmt.Parse("literal{unterminated_field")
	r.Error(err)
	_, err = pyfmt.Parse("trailing {")
	r.Error(err)
}

func (suite *Suite) TestParseConversionAndSpec() {
	r := suite.Require()

	f, err := pyfmt.Parse("{0!r:>30}")
	r.Nil(err)
	r.Equal(1, len(f.Fields))
	r.Equal(&pyfmt.Field{FieldName: "0", Conversion: "r", FormatSpec: ">30"}, f.Fields[0])
}

func (suite *Suite) TestFormat() {
	r := suite.Require()

	f, err := pyfmt.Parse("ext_{env}_{owner.upper()}_{title.slug()}_{owner.identifier()}_{quote.string()}")
	r.Nil(err)

	s := f.Format(map[string]string{
		"env":   "dba",
		"owner": "alice",
		"title": "Hello World!",
		"quote": "l'eau",
	})
	r.Equal(`ext_dba_ALICE_hello-world_"alice"_'l''eau'`, s)
}

func (suite *Suite) TestFieldNames() {
	r := suite.Require()

	f0, err := pyfmt.Parse("{env}-{region}")
	r.Nil(err)
	f1, err := pyfmt.Parse("{env.upper()}_{1}")
	r.Nil(err)

	names := pyfmt.FieldNames(f0, f1)
	r.Equal(3, names.Cardinality())
	r.True(names.Contains("env", "region", "1"))
}
