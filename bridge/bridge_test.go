package bridge

import (
	"bytes"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
)

func TestParseFan(t *testing.T) {
	input := `# secondary fan of the quadric
RAYS
1 0 0 1   # first diagonal
0 1 1 0

CONES
{0}
{1}
{0, 1}
`
	data, err := ParseFan(strings.NewReader(input), false)
	assert.NoError(t, err)
	expectedRays, err := ratmat.NewFromInt64Array([]int64{
		1, 0, 0, 1,
		0, 1, 1, 0,
	}, 2, 4)
	assert.NoError(t, err)
	assert.True(t, expectedRays.Equals(data.Rays))
	assert.Equal(t, [][]int{{0}, {1}, {0, 1}}, data.Cones)
	assert.Empty(t, data.ConeOrbits)
}

func TestParseFanNegateRays(t *testing.T) {
	input := "RAYS\n1 -2 1/2\n"
	data, err := ParseFan(strings.NewReader(input), true)
	assert.NoError(t, err)
	row, err := data.Rays.Row(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, row[0].Cmp(big.NewRat(-1, 1)))
	assert.Equal(t, 0, row[1].Cmp(big.NewRat(2, 1)))
	assert.Equal(t, 0, row[2].Cmp(big.NewRat(-1, 2)))
}

func TestParseFanBlankLineResetsSection(t *testing.T) {
	// The ray after the blank line is outside any section and is skipped
	input := `RAYS
1 0

0 1

CONES
0 1
`
	data, err := ParseFan(strings.NewReader(input), false)
	assert.NoError(t, err)
	assert.Equal(t, 1, data.Rays.NumRows())
	assert.Equal(t, [][]int{{0, 1}}, data.Cones)
}

func TestParseFanConeOrbits(t *testing.T) {
	input := `CONES_ORBITS
{0 3 7}
{1 2}
`
	data, err := ParseFan(strings.NewReader(input), false)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3, 7}, {1, 2}}, data.ConeOrbits)
	assert.Empty(t, data.Cones)
}

func TestParseFanSkipsUnknownSections(t *testing.T) {
	input := `MAXIMAL_CONES_DIMENSION
3

RAYS
1 1
`
	data, err := ParseFan(strings.NewReader(input), false)
	assert.NoError(t, err)
	assert.Equal(t, 1, data.Rays.NumRows())
}

func TestParseFanErrors(t *testing.T) {
	_, err := ParseFan(strings.NewReader("RAYS\none two\n"), false)
	assert.Error(t, err)
	_, err = ParseFan(strings.NewReader("CONES\n{0 x}\n"), false)
	assert.Error(t, err)
	_, err = ParseFan(strings.NewReader("CONES\n{-1}\n"), false)
	assert.Error(t, err)
}

func TestWriteIdeal(t *testing.T) {
	ring, err := polyring.NewRing([]string{"x1", "x2", "x3", "x4"})
	assert.NoError(t, err)
	gen, err := polyring.NewPolynomial(ring, []polyring.Term{
		polyring.NewTermInt64(1, []int{1, 0, 0, 1}),
		polyring.NewTermInt64(-1, []int{0, 1, 1, 0}),
	})
	assert.NoError(t, err)
	ideal, err := polyring.NewIdeal(ring, []*polyring.Polynomial{gen})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteIdeal(&buf, ideal))
	assert.Equal(t,
		"ring r = 0, (x1,x2,x3,x4), dp;\nideal I = x1*x4 - x2*x3;\n",
		buf.String(),
	)
}

func TestWriteIdealPadsNumericSuffixes(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i+1)
	}
	ring, err := polyring.NewRing(names)
	assert.NoError(t, err)
	gen, err := polyring.NewVariable(ring, 9)
	assert.NoError(t, err)
	ideal, err := polyring.NewIdeal(ring, []*polyring.Polynomial{gen})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteIdeal(&buf, ideal))
	assert.Equal(t,
		"ring r = 0, (x01,x02,x03,x04,x05,x06,x07,x08,x09,x10), dp;\nideal I = x10;\n",
		buf.String(),
	)
}

func TestWriteIdealZeroIdeal(t *testing.T) {
	ring, err := polyring.NewRing([]string{"x", "y"})
	assert.NoError(t, err)
	ideal, err := polyring.Zero(ring)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteIdeal(&buf, ideal))
	assert.Equal(t, "ring r = 0, (x,y), dp;\nideal I = 0;\n", buf.String())
}

func TestWriteCones(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteCones(&buf, [][]int{{0, 1, 2}, {4}}))
	assert.Equal(t, "CONES\n{1 2 3}\n{5}\n\n", buf.String())
}

func TestWriteThenParseCones(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteCones(&buf, [][]int{{0, 2}}))
	data, err := ParseFan(&buf, false)
	assert.NoError(t, err)
	// Output is one-based, input is zero-based; the round trip shifts
	assert.Equal(t, [][]int{{1, 3}}, data.Cones)
}
