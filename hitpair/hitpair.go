// Package hitpair implements HitPairIter: an ordered-merge iterator
// that walks two sorted hit collections and yields matched pairs within
// a positional tolerance, plus singleton pairs for hits with no
// within-tolerance counterpart on the other side.
//
// Errors:
//
//	ErrNilCollection - both input collections were nil or empty at construction.
package hitpair

import (
	"errors"

	"github.com/bandtrace/bandtrace/hit"
)

// ErrNilCollection indicates New was given two nil/empty collections;
// an iterator over nothing is never useful to a caller.
var ErrNilCollection = errors.New("hitpair: both collections are empty")

// Pair is one emission of the iterator: A and/or B may be nil, but not
// both — a pair with both nil marks the end of iteration and is only
// returned by Next together with false.
type Pair struct {
	A, B hit.Hit
}

// Iterator is the ordered-merge state machine described by hitpair's
// package doc. Zero value is not usable; construct with New.
type Iterator struct {
	a, b    []hit.Hit
	maxDist float64

	ia, ib int // next unread index into a, b

	scanning bool
	saveIB   int
	saveHit  hit.Hit

	started bool
	current Pair
	next    Pair
}

// New returns an Iterator over sorted collections a and b, pairing hits
// within maxDist of each other. a and b must already be sorted
// consistently with hit.Hit.Compare; New does not sort them.
func New(a, b []hit.Hit, maxDist float64) (*Iterator, error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, ErrNilCollection
	}
	return &Iterator{a: a, b: b, maxDist: maxDist}, nil
}

// Clone returns an independent copy of it: advancing the copy does not
// affect it, and vice versa. Clone initializes maxDist from the
// receiver being copied, not from the (zero-valued) destination.
func (it *Iterator) Clone() *Iterator {
	return &Iterator{
		a: it.a, b: it.b,
		maxDist:  it.maxDist,
		ia:       it.ia,
		ib:       it.ib,
		scanning: it.scanning,
		saveIB:   it.saveIB,
		saveHit:  it.saveHit,
		started:  it.started,
		current:  it.current,
		next:     it.next,
	}
}

func (it *Iterator) advanceA() hit.Hit {
	if it.ia >= len(it.a) {
		return nil
	}
	h := it.a[it.ia]
	it.ia++
	return h
}

func (it *Iterator) advanceB() hit.Hit {
	if it.ib >= len(it.b) {
		return nil
	}
	h := it.b[it.ib]
	it.ib++
	return h
}

// Next returns the next pair and true, or a zero Pair and false once
// both collections are exhausted. The very first call primes the
// iterator; there is no separate priming step.
func (it *Iterator) Next() (Pair, bool) {
	if !it.started {
		it.next = Pair{A: it.advanceA(), B: it.advanceB()}
		it.started = true
	}

	it.current = it.next
	a, b := it.current.A, it.current.B

	switch {
	case a != nil && b != nil:
		switch a.Compare(b, it.maxDist) {
		case -1:
			it.next.A = it.advanceA()
			it.current.B = nil
		case 1:
			it.next.B = it.advanceB()
			it.current.A = nil
		default:
			nextB := it.advanceB()
			if nextB == nil || a.Compare(nextB, it.maxDist) < 0 {
				if it.scanning {
					it.scanning = false
					it.ib = it.saveIB
					savedB := it.saveHit
					nextA := it.advanceA()
					if nextA != nil {
						for savedB != nil && savedB != nextB && savedB.Compare(nextA, it.maxDist) < 0 {
							savedB = it.advanceB()
						}
					} else {
						savedB = nextB
					}
					it.next = Pair{A: nextA, B: savedB}
				} else {
					it.next = Pair{A: it.advanceA(), B: nextB}
				}
			} else {
				if !it.scanning {
					it.scanning = true
					it.saveIB = it.ib
					it.saveHit = b
				}
				it.next.B = nextB
			}
		}
	case a != nil:
		it.next.A = it.advanceA()
	case b != nil:
		it.next.B = it.advanceB()
	}

	return it.current, it.current.A != nil || it.current.B != nil
}
