package walk_test

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/knotwalk/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_Formats accepts blanks, commas, comments and an explicit closure.
func TestRead_Formats(t *testing.T) {
	in := `# unit square, lifted corner
0 0 0
1,0,0
1	1	0.5

0 1 0
0 0 0
`
	w, err := walk.Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, w, 5)
	assert.Equal(t, r3.Vector{X: 1, Y: 1, Z: 0.5}, w[2])
	assert.Equal(t, w[0], w[4])
}

// TestRead_Errors reports the offending line.
func TestRead_Errors(t *testing.T) {
	_, err := walk.Read(strings.NewReader("0 0 0\n1 0\n"))
	require.ErrorIs(t, err, walk.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2")

	_, err = walk.Read(strings.NewReader("0 0 x\n"))
	require.ErrorIs(t, err, walk.ErrSyntax)

	_, err = walk.Read(strings.NewReader("# nothing but a point\n0 0 0\n"))
	require.ErrorIs(t, err, walk.ErrTooShort)
}
