package source_test

import (
	"math"

	"github.com/dalibo/xprod/internal/product"
	"github.com/dalibo/xprod/internal/source"
)

func (suite *Suite) TestRange() {
	r := suite.Require()

	seq, err := source.Range(1, 4, 1)
	r.Nil(err)
	values, err := product.Values(seq)
	r.Nil(err)
	r.Equal([]int{1, 2, 3}, values)

	seq, err = source.Range(10, 0, -4)
	r.Nil(err)
	values, err = product.Values(seq)
	r.Nil(err)
	r.Equal([]int{10, 6, 2}, values)

	seq, err = source.Range(3, 3, 1)
	r.Nil(err)
	values, err = product.Values(seq)
	r.Nil(err)
	r.Empty(values)

	_, err = source.Range(0, 1, 0)
	r.Error(err)
}

func (suite *Suite) TestRangeOverflow() {
	r := suite.Require()

	seq, err := source.Range[uint8](250, math.MaxUint8, 10)
	r.Nil(err)
	values, err := product.Values(seq)
	r.Nil(err)
	r.Equal([]uint8{250}, values)
}
