package fanfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
)

func TestNewFan(t *testing.T) {
	rays, err := ratmat.NewFromInt64Array([]int64{
		1, 0, 0, 1,
		0, 1, 1, 0,
	}, 2, 4)
	assert.NoError(t, err)
	cones := [][]bool{{false, false}, {true, false}, {false, true}}

	fan, err := NewFan(rays, cones, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, fan.NumRays())
	assert.Equal(t, 3, fan.NumCones())
	assert.Equal(t, 0, fan.Lineality().NumRows())
	assert.Equal(t, 4, fan.Lineality().NumCols())
	assert.True(t, rays.Equals(fan.Rays()))
}

func TestNewFanValidation(t *testing.T) {
	rays, err := ratmat.NewFromInt64Array([]int64{1, 0, 0, 1}, 1, 4)
	assert.NoError(t, err)

	_, err = NewFan(nil, nil, nil)
	assert.Error(t, err)

	// Incidence row of the wrong length
	_, err = NewFan(rays, [][]bool{{true, false}}, nil)
	assert.Error(t, err)

	// Lineality space of the wrong width
	lineality, err := ratmat.NewFromInt64Array([]int64{1, 1}, 1, 2)
	assert.NoError(t, err)
	_, err = NewFan(rays, [][]bool{{true}}, lineality)
	assert.Error(t, err)
}

func TestConeRayIndices(t *testing.T) {
	rays, err := ratmat.NewFromInt64Array([]int64{
		1, 0,
		0, 1,
		1, 1,
	}, 3, 2)
	assert.NoError(t, err)
	fan, err := NewFan(rays, [][]bool{{true, false, true}, {false, false, false}}, nil)
	assert.NoError(t, err)

	indices, err := fan.ConeRayIndices(0)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 2}, indices)
	indices, err = fan.ConeRayIndices(1)
	assert.NoError(t, err)
	assert.Nil(t, indices)
	_, err = fan.ConeRayIndices(2)
	assert.Error(t, err)
}

func TestFanAccessorsReturnCopies(t *testing.T) {
	rays, err := ratmat.NewFromInt64Array([]int64{1, 0, 0, 1}, 2, 2)
	assert.NoError(t, err)
	fan, err := NewFan(rays, [][]bool{{true, true}}, nil)
	assert.NoError(t, err)

	cones := fan.Cones()
	cones[0][0] = false
	assert.True(t, fan.Cones()[0][0])
}

func TestSecondaryInputNormalize(t *testing.T) {
	rays, err := ratmat.NewFromInt64Array([]int64{1, 0, 0, 1}, 1, 4)
	assert.NoError(t, err)

	_, _, _, err = SecondaryInput{}.normalize()
	assert.Error(t, err)

	_, _, lineality, err := FromPairs(rays, [][]bool{{true}}).normalize()
	assert.NoError(t, err)
	assert.Nil(t, lineality)

	_, _, _, err = FromPairs(rays, [][]bool{{true, false}}).normalize()
	assert.Error(t, err)

	fan, err := NewFan(rays, [][]bool{{true}}, nil)
	assert.NoError(t, err)
	_, _, lineality, err = FromFan(fan).normalize()
	assert.NoError(t, err)
	assert.NotNil(t, lineality)
}
