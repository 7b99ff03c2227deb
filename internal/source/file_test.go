package source_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dalibo/xprod/internal/product"
	"github.com/dalibo/xprod/internal/source"
	"github.com/lithammer/dedent"
)

func (suite *Suite) writeFile(name, content string) string {
	path := filepath.Join(suite.T().TempDir(), name)
	suite.Require().Nil(os.WriteFile(path, []byte(dedent.Dedent(content)), 0o600))
	return path
}

func (suite *Suite) TestFile() {
	r := suite.Require()

	path := suite.writeFile("regions.txt", `
	# Regions
	eu-west

	  us-east  
	ap-south
	`)
	seq := source.File(path, 3)
	values, err := product.Values(seq)
	r.Nil(err)
	r.Equal([]string{"eu-west", "us-east", "ap-south"}, values)

	// File is read again on each open.
	values, err = product.Values(seq)
	r.Nil(err)
	r.Len(values, 3)
}

func (suite *Suite) TestFileInProduct() {
	r := suite.Require()

	path := suite.writeFile("shards.txt", `
	a
	b
	`)
	p := product.New(product.Slice([]string{"x", "y"}), source.File(path, 1))
	combinations, err := p.Collect()
	r.Nil(err)
	r.Equal([][]string{{"x", "a"}, {"x", "b"}, {"y", "a"}, {"y", "b"}}, combinations)
}

func (suite *Suite) TestFileMissing() {
	r := suite.Require()

	seq := source.File(filepath.Join(suite.T().TempDir(), "missing.txt"), 5)
	_, err := seq.Open()
	r.ErrorIs(err, fs.ErrNotExist)

	_, err = product.New(product.Slice([]int{1}), product.Map(seq, func(s string) int { return len(s) })).Collect()
	r.ErrorIs(err, product.ErrIteration)
}

func (suite *Suite) TestIsErrorRecoverable() {
	r := suite.Require()

	r.False(source.IsErrorRecoverable(fs.ErrNotExist))
	r.False(source.IsErrorRecoverable(&fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}))
	r.True(source.IsErrorRecoverable(errors.New("too many open files")))
}
