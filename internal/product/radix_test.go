package product_test

import (
	"math"

	"github.com/dalibo/xprod/internal/product"
)

func (suite *Suite) TestSize() {
	r := suite.Require()

	n, ok := product.Size()
	r.True(ok)
	r.Equal(1, n)

	n, ok = product.Size(2, 3, 4)
	r.True(ok)
	r.Equal(24, n)

	n, ok = product.Size(math.MaxInt, 2)
	r.False(ok)
	r.Equal(0, n)

	// Zero wins over overflow.
	n, ok = product.Size(math.MaxInt, math.MaxInt, 0)
	r.True(ok)
	r.Equal(0, n)

	_, ok = product.Size(-1)
	r.False(ok)
}

func (suite *Suite) TestDecode() {
	r := suite.Require()

	indexes, err := product.Decode([]int{2, 3}, 4)
	r.Nil(err)
	r.Equal([]int{1, 1}, indexes)

	indexes, err = product.Decode(nil, 0)
	r.Nil(err)
	r.Empty(indexes)

	_, err = product.Decode([]int{2, 3}, 6)
	r.ErrorContains(err, "out of range")

	_, err = product.Decode([]int{2, 0}, 0)
	r.Error(err)
}

func (suite *Suite) TestAt() {
	r := suite.Require()

	lists := [][]string{{"1", "2"}, {"a", "b", "c"}}
	var walked [][]string
	for combination := range product.Of(lists...) {
		walked = append(walked, combination)
	}
	for i, want := range walked {
		got, err := product.At(i, lists...)
		r.Nil(err)
		r.Equal(want, got)
	}
}
