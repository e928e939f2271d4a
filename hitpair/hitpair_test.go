package hitpair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandtrace/bandtrace/hit"
	"github.com/bandtrace/bandtrace/hitpair"
)

// testHit is a minimal hit.Hit backed by a plain position, used only to
// drive the ordered-merge state machine in isolation from any concrete
// detector geometry.
type testHit struct {
	plane int
	pos   float64
}

func (h *testHit) PlaneNum() int { return h.plane }

func (h *testHit) Compare(other hit.Hit, maxDist float64) int {
	o := other.(*testHit)
	d := h.pos - o.pos
	if d < -maxDist {
		return -1
	}
	if d > maxDist {
		return 1
	}
	return 0
}

func hits(positions ...float64) []hit.Hit {
	out := make([]hit.Hit, len(positions))
	for i, p := range positions {
		out[i] = &testHit{plane: 0, pos: p}
	}
	return out
}

func drain(t *testing.T, it *hitpair.Iterator) []hitpair.Pair {
	t.Helper()
	var out []hitpair.Pair
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

func TestNew_BothEmptyReturnsError(t *testing.T) {
	_, err := hitpair.New(nil, nil, 1.0)
	assert.ErrorIs(t, err, hitpair.ErrNilCollection)
}

// TestNext_S4OneToOneWithLeftovers reproduces the literal S4 scenario: A
// has two hits, B has two hits, only the first pair falls within
// tolerance; the remaining A and B hits emit as singleton pairs.
func TestNext_S4OneToOneWithLeftovers(t *testing.T) {
	a := hits(10.0, 50.0)
	b := hits(10.2, 90.0)

	it, err := hitpair.New(a, b, 1.0)
	require.NoError(t, err)

	got := drain(t, it)
	require.Len(t, got, 3)

	assert.Same(t, a[0], got[0].A)
	assert.Same(t, b[0], got[0].B)

	assert.Same(t, a[1], got[1].A)
	assert.Nil(t, got[1].B)

	assert.Nil(t, got[2].A)
	assert.Same(t, b[1], got[2].B)
}

// TestNext_S5OneToManyScan reproduces the literal S5 scenario: a single A
// hit sits within tolerance of three consecutive B hits, so it pairs
// with each of them in turn before the iterator terminates.
func TestNext_S5OneToManyScan(t *testing.T) {
	a := hits(10.0)
	b := hits(10.1, 10.2, 10.3)

	it, err := hitpair.New(a, b, 0.5)
	require.NoError(t, err)

	got := drain(t, it)
	require.Len(t, got, 3)

	for i, p := range got {
		assert.Same(t, a[0], p.A, "emission %d", i)
		assert.Same(t, b[i], p.B, "emission %d", i)
	}
}

func TestNext_TerminatesOnBothExhausted(t *testing.T) {
	it, err := hitpair.New(hits(1.0), hits(1.0), 0.1)
	require.NoError(t, err)

	got := drain(t, it)
	require.Len(t, got, 1)

	_, ok := it.Next()
	assert.False(t, ok)
}

// TestClone_CopiesMaxDistFromSource guards the fixed copy-bug: a cloned
// iterator must keep pairing at the source's tolerance, not fall back to
// a zero tolerance that would split every close pair into singletons.
func TestClone_CopiesMaxDistFromSource(t *testing.T) {
	a := hits(10.0)
	b := hits(10.4)

	it, err := hitpair.New(a, b, 1.0)
	require.NoError(t, err)

	clone := it.Clone()

	got := drain(t, clone)
	require.Len(t, got, 1, "clone must still pair within the original 1.0 tolerance")
	assert.Same(t, a[0], got[0].A)
	assert.Same(t, b[0], got[0].B)
}

func TestClone_IsIndependentOfSource(t *testing.T) {
	a := hits(1.0, 2.0)
	b := hits(1.0, 2.0)

	it, err := hitpair.New(a, b, 0.1)
	require.NoError(t, err)

	_, ok := it.Next()
	require.True(t, ok)

	clone := it.Clone()
	cloneResults := drain(t, clone)
	sourceResults := drain(t, it)

	assert.Equal(t, sourceResults, cloneResults, "draining the clone must not affect the source's remaining output")
}
