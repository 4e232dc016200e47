package qgram

import (
	"cmp"
	"math"

	"github.com/katalvlaran/strdist/core"
)

// QGram is the L1 distance between the two q-gram count profiles:
// Σ over all grams of |countA(g) − countB(g)|.
//
// Immutable after construction; safe for concurrent use — as are all
// metrics in this package.
type QGram[T cmp.Ordered] struct{ q int }

// NewQGram constructs a QGram metric of fragment length q.
// Returns ErrFragmentLength if q < 1.
func NewQGram[T cmp.Ordered](q int) (*QGram[T], error) {
	if err := validateQ(q); err != nil {
		return nil, err
	}

	return &QGram[T]{q: q}, nil
}

// Distance returns Exact of the raw L1 profile distance, always an
// integral value.
func (m *QGram[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(float64(newTally(a, b, m.q).l1))
}

// NormalizedDistance divides the raw L1 distance by |A|+|B|;
// two empty profiles yield 0.
func (m *QGram[T]) NormalizedDistance(a, b []T) float64 {
	t := newTally(a, b, m.q)
	if t.sizeA+t.sizeB == 0 {
		return 0
	}

	return float64(t.l1) / float64(t.sizeA+t.sizeB)
}

// Cosine is 1 − dot(A,B)/(‖A‖₂·‖B‖₂) over the q-gram count profiles;
// 0 if either norm is 0.
type Cosine[T cmp.Ordered] struct{ q int }

// NewCosine constructs a Cosine metric of fragment length q.
// Returns ErrFragmentLength if q < 1.
func NewCosine[T cmp.Ordered](q int) (*Cosine[T], error) {
	if err := validateQ(q); err != nil {
		return nil, err
	}

	return &Cosine[T]{q: q}, nil
}

// Distance returns Exact of the cosine distance; the raw value already
// lies in [0,1].
func (m *Cosine[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(m.NormalizedDistance(a, b))
}

// NormalizedDistance returns the cosine distance in [0,1].
func (m *Cosine[T]) NormalizedDistance(a, b []T) float64 {
	t := newTally(a, b, m.q)
	if t.normA == 0 || t.normB == 0 {
		return 0
	}

	// single sqrt keeps identical profiles at exactly 0
	d := 1 - float64(t.dot)/math.Sqrt(float64(t.normA)*float64(t.normB))
	if d < 0 {
		return 0
	}

	return d
}

// Jaccard is 1 − intersection/union over the q-gram multisets;
// 0 if the union is empty.
type Jaccard[T cmp.Ordered] struct{ q int }

// NewJaccard constructs a Jaccard metric of fragment length q.
// Returns ErrFragmentLength if q < 1.
func NewJaccard[T cmp.Ordered](q int) (*Jaccard[T], error) {
	if err := validateQ(q); err != nil {
		return nil, err
	}

	return &Jaccard[T]{q: q}, nil
}

// Distance returns Exact of the Jaccard distance; the raw value already
// lies in [0,1].
func (m *Jaccard[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(m.NormalizedDistance(a, b))
}

// NormalizedDistance returns the Jaccard distance in [0,1].
func (m *Jaccard[T]) NormalizedDistance(a, b []T) float64 {
	t := newTally(a, b, m.q)
	if t.union() == 0 {
		return 0
	}

	return 1 - float64(t.intersection)/float64(t.union())
}

// SorensenDice is 1 − 2·intersection/(|A|+|B|) over the q-gram
// multisets; 0 if both profiles are empty.
type SorensenDice[T cmp.Ordered] struct{ q int }

// NewSorensenDice constructs a Sorensen-Dice metric of fragment
// length q. Returns ErrFragmentLength if q < 1.
func NewSorensenDice[T cmp.Ordered](q int) (*SorensenDice[T], error) {
	if err := validateQ(q); err != nil {
		return nil, err
	}

	return &SorensenDice[T]{q: q}, nil
}

// Distance returns Exact of the Sorensen-Dice distance; the raw value
// already lies in [0,1].
func (m *SorensenDice[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(m.NormalizedDistance(a, b))
}

// NormalizedDistance returns the Sorensen-Dice distance in [0,1].
func (m *SorensenDice[T]) NormalizedDistance(a, b []T) float64 {
	t := newTally(a, b, m.q)
	if t.sizeA+t.sizeB == 0 {
		return 0
	}

	return 1 - 2*float64(t.intersection)/float64(t.sizeA+t.sizeB)
}

// Overlap is 1 − intersection/min(|A|,|B|) over the q-gram multisets;
// 0 if either profile is empty.
type Overlap[T cmp.Ordered] struct{ q int }

// NewOverlap constructs an Overlap metric of fragment length q.
// Returns ErrFragmentLength if q < 1.
func NewOverlap[T cmp.Ordered](q int) (*Overlap[T], error) {
	if err := validateQ(q); err != nil {
		return nil, err
	}

	return &Overlap[T]{q: q}, nil
}

// Distance returns Exact of the overlap distance; the raw value already
// lies in [0,1].
func (m *Overlap[T]) Distance(a, b []T) core.DistanceValue {
	return core.Exact(m.NormalizedDistance(a, b))
}

// NormalizedDistance returns the overlap distance in [0,1].
func (m *Overlap[T]) NormalizedDistance(a, b []T) float64 {
	t := newTally(a, b, m.q)
	if t.sizeA == 0 || t.sizeB == 0 {
		return 0
	}

	return 1 - float64(t.intersection)/float64(min(t.sizeA, t.sizeB))
}
