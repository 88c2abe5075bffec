package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type divArgs struct {
	A, B int
}

var errDivideByZero = errors.New("integer divide by zero")

// newDiv builds the canonical contracted division function used across the
// engine tests. calls counts body executions to observe bypassed bodies.
func newDiv(t *testing.T, calls *int) *Contract[divArgs, int] {
	t.Helper()
	return New("div", func(a divArgs) (int, error) {
		if calls != nil {
			*calls++
		}
		if a.B == 0 {
			return 0, errDivideByZero
		}
		return a.A / a.B, nil
	}).
		WithSpecification("Divides two integers and returns the result").
		WithPreDescription("Divisor cannot be zero").
		WithPrecondition(Pred(func(a divArgs) bool { return a.B != 0 }))
}

func TestPreconditionViolationSkipsBody(t *testing.T) {
	Enable()
	defer Disable()

	var calls int
	div := newDiv(t, &calls)

	_, err := div.Call(divArgs{A: 10, B: 0})
	require.Error(t, err)

	v := AsViolation(err)
	require.NotNil(t, v, "expected a contract violation, got %v", err)
	assert.Equal(t, KindPrecondition, v.Kind)
	assert.Equal(t, "div", v.Func)
	assert.Equal(t, 0, calls, "body must not execute when a precondition fails")
}

func TestSatisfiedContractReturnsResult(t *testing.T) {
	Enable()
	defer Disable()

	div := newDiv(t, nil)

	result, err := div.Call(divArgs{A: 10, B: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, result)
}

func TestDisabledVerificationIsFullBypass(t *testing.T) {
	Disable()

	var calls int
	div := newDiv(t, &calls)

	// The violating arguments reach the body, which returns its own error.
	_, err := div.Call(divArgs{A: 10, B: 0})
	require.ErrorIs(t, err, errDivideByZero)
	assert.False(t, IsViolation(err))
	assert.Equal(t, 1, calls)

	result, err := div.Call(divArgs{A: 10, B: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, result)
}

func TestToggleObservedAtCallTime(t *testing.T) {
	Disable()
	div := newDiv(t, nil)

	// Wrapped while disabled, checked once enabled: the toggle is consulted
	// at invocation time, not decoration time.
	_, err := div.Call(divArgs{A: 1, B: 0})
	require.ErrorIs(t, err, errDivideByZero)

	Enable()
	defer Disable()
	_, err = div.Call(divArgs{A: 1, B: 0})
	require.True(t, IsViolation(err))
}

func TestStackedPreconditionsCheckInApplicationOrder(t *testing.T) {
	Enable()
	defer Disable()

	var order []string
	c := New("stacked", func(int) (int, error) { return 0, nil }).
		WithPrecondition(func(int) (bool, error) {
			order = append(order, "p1")
			return false, nil
		}).
		WithPrecondition(func(int) (bool, error) {
			order = append(order, "p2")
			return false, nil
		})

	_, err := c.Call(0)
	require.True(t, IsViolation(err))
	assert.Equal(t, []string{"p1"}, order, "first applied predicate checks first and short-circuits")
}

func TestPostconditionRunsAfterBody(t *testing.T) {
	Enable()
	defer Disable()

	var calls int
	c := New("post", func(int) (int, error) {
		calls++
		return 42, nil
	}).WithPostcondition(ResultPred(func(result, _ int) bool {
		return result < 0
	}))

	_, err := c.Call(0)
	v := AsViolation(err)
	require.NotNil(t, v)
	assert.Equal(t, KindPostcondition, v.Kind)
	assert.Equal(t, 1, calls, "postconditions cannot prevent the call")
}

func TestBodyErrorSkipsPostconditions(t *testing.T) {
	Enable()
	defer Disable()

	bodyErr := errors.New("boom")
	var checked bool
	c := New("failing-body", func(int) (int, error) {
		return 0, bodyErr
	}).WithPostcondition(func(int, int) (bool, error) {
		checked = true
		return false, nil
	})

	_, err := c.Call(0)
	require.ErrorIs(t, err, bodyErr)
	assert.False(t, IsViolation(err))
	assert.False(t, checked, "no postcondition runs when the body errors")
}

func TestInvariantCheckedBeforeAndAfter(t *testing.T) {
	Enable()
	defer Disable()

	t.Run("false before execution skips body", func(t *testing.T) {
		var calls int
		c := New("inv-pre", func(int) (int, error) {
			calls++
			return 0, nil
		}).WithInvariant(Pred(func(int) bool { return false }))

		_, err := c.Call(0)
		v := AsViolation(err)
		require.NotNil(t, v)
		assert.Equal(t, KindInvariant, v.Kind)
		assert.Contains(t, v.Message, "before execution")
		assert.Equal(t, 0, calls)
	})

	t.Run("false after execution runs body once", func(t *testing.T) {
		var calls int
		c := New("inv-post", func(int) (int, error) {
			calls++
			return 0, nil
		}).WithInvariant(func(int) (bool, error) {
			// Holds before the body, broken afterwards.
			return calls == 0, nil
		})

		_, err := c.Call(0)
		v := AsViolation(err)
		require.NotNil(t, v)
		assert.Contains(t, v.Message, "after execution")
		assert.Equal(t, 1, calls)
	})

	t.Run("body error skips the after check", func(t *testing.T) {
		bodyErr := errors.New("boom")
		var checks int
		c := New("inv-err", func(int) (int, error) {
			return 0, bodyErr
		}).WithInvariant(func(int) (bool, error) {
			checks++
			return true, nil
		})

		_, err := c.Call(0)
		require.ErrorIs(t, err, bodyErr)
		assert.Equal(t, 1, checks, "only the pre-check runs when the body errors")
	})
}

func TestPredicateErrorHandling(t *testing.T) {
	Enable()
	defer Disable()

	t.Run("violation from predicate propagates unchanged", func(t *testing.T) {
		custom := &Violation{Kind: KindPrecondition, Func: "custom", Message: "custom check failed"}
		c := New("custom-violation", func(int) (int, error) { return 0, nil }).
			WithPrecondition(func(int) (bool, error) { return false, custom })

		_, err := c.Call(0)
		require.Same(t, custom, AsViolation(err))
	})

	t.Run("other predicate error is wrapped", func(t *testing.T) {
		evalErr := errors.New("lookup failed")
		c := New("eval-error", func(int) (int, error) { return 0, nil }).
			WithPostcondition(func(int, int) (bool, error) { return false, evalErr })

		_, err := c.Call(0)
		v := AsViolation(err)
		require.NotNil(t, v)
		assert.Equal(t, KindPostcondition, v.Kind)
		assert.ErrorIs(t, err, evalErr)
		assert.Contains(t, v.Message, "error evaluating postcondition")
	})

	t.Run("predicate panic is wrapped", func(t *testing.T) {
		c := New("panicking-predicate", func(int) (int, error) { return 0, nil }).
			WithPrecondition(func(int) (bool, error) { panic("bad index") })

		_, err := c.Call(0)
		v := AsViolation(err)
		require.NotNil(t, v)
		assert.Equal(t, KindPrecondition, v.Kind)
		assert.Contains(t, v.Message, "bad index")
	})
}

func TestMetadataAccumulation(t *testing.T) {
	c := New("accumulate", func(int) (int, error) { return 0, nil }).
		WithPrecondition(Pred(func(int) bool { return true })).
		WithSpecification("first").
		WithPreDescription("args must be sane").
		WithPrecondition(Pred(func(int) bool { return true })).
		WithSpecification("second")

	meta := c.Metadata()
	assert.Len(t, meta.Preconditions, 2, "preconditions accumulate across intervening metadata decorators")
	assert.Equal(t, "second", meta.Specification, "single-slot metadata is last-writer-wins")
	assert.Equal(t, "args must be sane", meta.PreDescription)
}

func TestDeclaredErrorsReplaceWholeList(t *testing.T) {
	c := New("declares", func(int) (int, error) { return 0, nil }).
		WithDeclaredErrors(ImplementThis("stub"), errDivideByZero).
		WithDeclaredErrors(errDivideByZero)

	meta := c.Metadata()
	require.Len(t, meta.Raises, 1)
	assert.ErrorIs(t, meta.Raises[0], errDivideByZero)
}

func TestMetadataSnapshotIsDefensive(t *testing.T) {
	c := New("snapshot", func(int) (int, error) { return 0, nil }).
		WithPrecondition(Pred(func(int) bool { return true }))

	meta := c.Metadata()
	meta.Preconditions = append(meta.Preconditions, Pred(func(int) bool { return false }))
	meta.Specification = "mutated"

	fresh := c.Metadata()
	assert.Len(t, fresh.Preconditions, 1)
	assert.Empty(t, fresh.Specification)
}

func TestFuncHasOriginalCallingConvention(t *testing.T) {
	Enable()
	defer Disable()

	div := newDiv(t, nil)
	fn := div.Func()

	result, err := fn(divArgs{A: 9, B: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, result)

	_, err = fn(divArgs{A: 9, B: 0})
	assert.True(t, IsViolation(err))
}
