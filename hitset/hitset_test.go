package hitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandtrace/bandtrace/hit"
	"github.com/bandtrace/bandtrace/hitset"
)

type testHit struct {
	plane int
	pos   float64
}

func (h *testHit) PlaneNum() int { return h.plane }

func (h *testHit) Compare(other hit.Hit, maxDist float64) int {
	o := other.(*testHit)
	if h.plane != o.plane {
		if h.plane < o.plane {
			return -1
		}
		return 1
	}
	d := h.pos - o.pos
	if d < -maxDist {
		return -1
	}
	if d > maxDist {
		return 1
	}
	return 0
}

func TestNew_EmptyReturnsError(t *testing.T) {
	_, err := hitset.New(nil)
	assert.ErrorIs(t, err, hitset.ErrEmptyHits)
}

func TestGetMatchValue_OrsPlaneBits(t *testing.T) {
	hits := []hit.Hit{
		&testHit{plane: 0, pos: 1},
		&testHit{plane: 2, pos: 1},
		&testHit{plane: 3, pos: 1},
	}
	assert.Equal(t, uint32(1<<0|1<<2|1<<3), hitset.GetMatchValue(hits))
}

// TestIsSimilarTo_S6 reproduces the literal S6 scenario: a base set
// occupying planes {0,2,3,4}. A comparison set that swaps plane 0 for
// plane 1 must not match (plane 1 has no counterpart in the base set),
// but a comparison set restricted to the shared planes {2,3,4} must.
func TestIsSimilarTo_S6(t *testing.T) {
	this, err := hitset.New([]hit.Hit{
		&testHit{plane: 0, pos: 30},
		&testHit{plane: 2, pos: 32},
		&testHit{plane: 3, pos: 40},
		&testHit{plane: 4, pos: 50},
	})
	require.NoError(t, err)

	mismatch, err := hitset.New([]hit.Hit{
		&testHit{plane: 1, pos: 31},
		&testHit{plane: 2, pos: 32},
		&testHit{plane: 3, pos: 40},
		&testHit{plane: 4, pos: 50},
	})
	require.NoError(t, err)

	match, err := hitset.New([]hit.Hit{
		&testHit{plane: 2, pos: 32},
		&testHit{plane: 3, pos: 40},
		&testHit{plane: 4, pos: 50},
	})
	require.NoError(t, err)

	assert.False(t, this.IsSimilarTo(mismatch))
	assert.True(t, this.IsSimilarTo(match))
}

func TestIsSimilarTo_ExtraPlaneInBaseStillMatches(t *testing.T) {
	this, err := hitset.New([]hit.Hit{
		&testHit{plane: 0, pos: 10},
		&testHit{plane: 1, pos: 20},
	})
	require.NoError(t, err)

	try, err := hitset.New([]hit.Hit{
		&testHit{plane: 1, pos: 20},
	})
	require.NoError(t, err)

	assert.True(t, this.IsSimilarTo(try))
}

func TestIsSimilarTo_MissingPlaneFails(t *testing.T) {
	this, err := hitset.New([]hit.Hit{
		&testHit{plane: 0, pos: 10},
	})
	require.NoError(t, err)

	try, err := hitset.New([]hit.Hit{
		&testHit{plane: 0, pos: 10},
		&testHit{plane: 1, pos: 20},
	})
	require.NoError(t, err)

	assert.False(t, this.IsSimilarTo(try))
}
