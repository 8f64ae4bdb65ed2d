// Package swag provides the shared vocabulary for sliding-window
// aggregation (SWAG): the caller-supplied operator, the window contracts
// every aggregator in this module satisfies, and the time domain used by
// the time-keyed windows.
//
// An aggregator never chooses its own operator; it is handed one at
// construction, the same way the btree and heap packages take a LessFn
// instead of baking in an ordering.
package swag

import (
	"math"

	g "github.com/zyedidia/generic"
	"golang.org/x/exp/constraints"
)

// Time is the time domain for the time-keyed windows (FiBA). It is a
// totally ordered integer key; equal times identify the same slot and
// cause an insert to merge with the existing value via the operator.
type Time int64

// NegInf and PosInf are sentinel range-query bounds meaning "unbounded on
// this side". They must not be used as real timestamps.
const (
	NegInf Time = math.MinInt64
	PosInf Time = math.MaxInt64
)

// Operator is the monoid supplied by the caller: Combine must be
// associative and Identity must be a two-sided identity for it.
//
//	Combine(Identity(), v) == v == Combine(v, Identity())
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
type Operator[V any] interface {
	Identity() V
	Combine(a, b V) V
}

// InvOperator is an Operator whose monoid is in fact a group: Inverse(v)
// is a two-sided inverse of v under Combine. SOE and SlideSide require
// this; FiBA, Two-Stacks, DABA, FOA and the FAT-based aggregators do not.
type InvOperator[V any] interface {
	Operator[V]
	Inverse(v V) V
}

// FIFOWindow is satisfied by the aggregators that only ever insert at the
// back and evict from the front: RFS, SOE, Two-Stacks, DABA, FOA, and the
// ring-buffered Reactive Aggregator.
type FIFOWindow[V any] interface {
	Push(v V)
	Pop()
	Query() V
}

// TimeWindow is satisfied by FiBA: an aggregator over (time, value) pairs
// that may arrive and be evicted out of order.
type TimeWindow[V any] interface {
	Insert(t Time, v V)
	Evict(t Time)
	Query() V
	RangeQuery(lo, hi Time) V
}

// MultiWindow is satisfied by SlideSide: a single insertion stream viewed
// through several fixed-size trailing windows at once.
type MultiWindow[V any] interface {
	Insert(v V)
	Queries() []V
}

// funcOperator adapts a pair of plain functions into an Operator, mirroring
// how the github.com/zyedidia/generic library prefers function values
// (LessFn, HashFn) over one-method interfaces.
type funcOperator[V any] struct {
	identity V
	combine  func(a, b V) V
}

func (o funcOperator[V]) Identity() V      { return o.identity }
func (o funcOperator[V]) Combine(a, b V) V { return o.combine(a, b) }

// NewOperator builds an Operator from an identity value and a combine
// function.
func NewOperator[V any](identity V, combine func(a, b V) V) Operator[V] {
	return funcOperator[V]{identity: identity, combine: combine}
}

type funcInvOperator[V any] struct {
	funcOperator[V]
	inverse func(v V) V
}

func (o funcInvOperator[V]) Inverse(v V) V { return o.inverse(v) }

// NewInvOperator builds an InvOperator from an identity value, a combine
// function and an inverse function.
func NewInvOperator[V any](identity V, combine func(a, b V) V, inverse func(v V) V) InvOperator[V] {
	return funcInvOperator[V]{funcOperator: funcOperator[V]{identity: identity, combine: combine}, inverse: inverse}
}

// SumOp returns the additive group over any numeric type: Identity is the
// type's zero value, Combine is +, Inverse is unary -.
func SumOp[V constraints.Integer | constraints.Float]() InvOperator[V] {
	return NewInvOperator(
		V(0),
		func(a, b V) V { return a + b },
		func(v V) V { return -v },
	)
}

// MaxOp returns the (monoid-only, no inverse) max operator over an ordered
// type, with 'minVal' as its identity.
// Used by the DABA/Two-Stacks "max aggregate" property checks.
func MaxOp[V constraints.Ordered](minVal V) Operator[V] {
	return NewOperator(minVal, func(a, b V) V { return g.Max(a, b) })
}
