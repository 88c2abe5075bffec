package contract

import "fmt"

// Func is the calling convention shared by contracted functions and their
// wrappers: one args value in, one result and an error out. Functions taking
// several parameters use a small args struct.
type Func[A, R any] func(A) (R, error)

// Predicate is a condition over a call's arguments. It should be
// side-effect-free by contract convention, but the engine does not assume
// that: a returned error (or a panic during evaluation) is a distinct
// failure mode handled by the condition wrappers.
type Predicate[A any] func(A) (bool, error)

// ResultPredicate is a condition over a call's result and original
// arguments, with the same error-handling convention as Predicate.
type ResultPredicate[A, R any] func(R, A) (bool, error)

// Pred adapts a plain boolean predicate that cannot fail.
func Pred[A any](fn func(A) bool) Predicate[A] {
	return func(args A) (bool, error) {
		return fn(args), nil
	}
}

// ResultPred adapts a plain boolean result predicate that cannot fail.
func ResultPred[A, R any](fn func(R, A) bool) ResultPredicate[A, R] {
	return func(result R, args A) (bool, error) {
		return fn(result, args), nil
	}
}

// evalPredicate runs a predicate, converting a panic during evaluation into
// an error so the caller can apply the uniform wrapping rule.
func evalPredicate[A any](p Predicate[A], args A) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if e, isErr := r.(error); isErr {
				err = e
			} else {
				err = fmt.Errorf("predicate panicked: %v", r)
			}
		}
	}()
	return p(args)
}

// evalResultPredicate runs a result predicate with the same panic handling
// as evalPredicate.
func evalResultPredicate[A, R any](p ResultPredicate[A, R], result R, args A) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if e, isErr := r.(error); isErr {
				err = e
			} else {
				err = fmt.Errorf("predicate panicked: %v", r)
			}
		}
	}()
	return p(result, args)
}
