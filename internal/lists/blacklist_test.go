package lists_test

import (
	"testing"

	"github.com/dalibo/xprod/internal/lists"
	"github.com/stretchr/testify/require"
)

func TestBlacklist(t *testing.T) {
	r := require.New(t)
	bl := lists.Blacklist{"pif", "paf*"}
	r.Nil(bl.Check())
	r.Equal("", bl.MatchString("pouf"))
	r.Equal("paf*", bl.MatchString("paf"))
	r.True(bl.Allows("pouf"))
	r.False(bl.Allows("pafpaf"))
	r.Equal([]string{"pouf", "pof"}, bl.Filter([]string{"pif", "pouf", "paf0", "pof"}))
}

func TestBlacklistError(t *testing.T) {
	r := require.New(t)
	// filepath fails if pattern has bad escaping.
	bl := lists.Blacklist{"\\"}
	r.ErrorContains(bl.Check(), `pattern "\\"`)
	r.Panics(func() { bl.MatchString("pouet") })
}
