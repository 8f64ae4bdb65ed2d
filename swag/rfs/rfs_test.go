package rfs

import (
	"reflect"
	"runtime/debug"
	"testing"

	"github.com/zendesk/swag"
)

func checkEq[T any](t *testing.T, got, want T) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v\n%s", got, want, debug.Stack())
	}
}

func TestLIFO(t *testing.T) {
	w := New[int](swag.SumOp[int]())
	for i := 1; i <= 100; i++ {
		w.Push(1)
		checkEq(t, w.Query(), i)
	}
	for i := 100; i >= 1; i-- {
		checkEq(t, w.Query(), i)
		w.Pop()
	}
	checkEq(t, w.Query(), 0)
}

func TestEmptyQueryIsIdentity(t *testing.T) {
	w := New[int](swag.SumOp[int]())
	checkEq(t, w.Query(), 0)
	checkEq(t, w.Query(), 0)
}

func TestInsertThenEvict(t *testing.T) {
	w := New[int](swag.SumOp[int]())
	w.Push(5)
	w.Push(7)
	checkEq(t, w.Query(), 12)
	w.Pop()
	checkEq(t, w.Query(), 7)
	w.Pop()
	checkEq(t, w.Query(), 0)
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic popping an empty window")
		}
	}()
	New[int](swag.SumOp[int]()).Pop()
}

func TestMaxOperator(t *testing.T) {
	w := New[int](swag.MaxOp[int](0))
	w.Push(3)
	checkEq(t, w.Query(), 3)
	w.Push(4)
	checkEq(t, w.Query(), 4)
	w.Push(5)
	checkEq(t, w.Query(), 5)
}
