package contract

// Contract wraps a function together with its metadata carrier and the
// ordered condition chains evaluated around each call. It is the concrete
// wrapper the builder methods accumulate into; conditions are kept as
// inspectable sequences rather than nested closures.
type Contract[A, R any] struct {
	name string
	fn   Func[A, R]
	meta Metadata[A, R]
}

// New creates a contract for fn and registers it under name for
// introspection. Builder methods attach metadata and conditions; their
// application order is the decoration order.
func New[A, R any](name string, fn Func[A, R]) *Contract[A, R] {
	c := &Contract[A, R]{name: name, fn: fn}
	register(c)
	return c
}

// Name returns the contracted function's name.
func (c *Contract[A, R]) Name() string {
	return c.name
}

// WithSpecification sets the free-text specification slot. Applying it again
// overwrites the previous value. Metadata decorators never alter runtime
// behavior.
func (c *Contract[A, R]) WithSpecification(text string) *Contract[A, R] {
	c.meta.Specification = text
	return c
}

// WithPreDescription sets the prose precondition description slot.
func (c *Contract[A, R]) WithPreDescription(text string) *Contract[A, R] {
	c.meta.PreDescription = text
	return c
}

// WithPostDescription sets the prose postcondition description slot.
func (c *Contract[A, R]) WithPostDescription(text string) *Contract[A, R] {
	c.meta.PostDescription = text
	return c
}

// WithInvariantDescription sets the prose invariant description slot.
func (c *Contract[A, R]) WithInvariantDescription(text string) *Contract[A, R] {
	c.meta.InvariantDescription = text
	return c
}

// WithDeclaredErrors declares the error kinds the function may return.
// Unlike the condition sequences this replaces the whole list; the
// declaration is descriptive, never enforced.
func (c *Contract[A, R]) WithDeclaredErrors(kinds ...error) *Contract[A, R] {
	c.meta.Raises = kinds
	return c
}

// WithPrecondition appends a precondition. Stacked preconditions are
// evaluated on every call in application order, short-circuiting on the
// first violation. The predicate is recorded in the carrier at decoration
// time whether or not it ever triggers.
func (c *Contract[A, R]) WithPrecondition(p Predicate[A]) *Contract[A, R] {
	c.meta.Preconditions = append(c.meta.Preconditions, p)
	return c
}

// WithPostcondition appends a postcondition evaluated with the call's result
// and original arguments, after the function body has already run.
func (c *Contract[A, R]) WithPostcondition(p ResultPredicate[A, R]) *Contract[A, R] {
	c.meta.Postconditions = append(c.meta.Postconditions, p)
	return c
}

// WithInvariant appends an invariant over the call's arguments, checked once
// before and once after the function body.
func (c *Contract[A, R]) WithInvariant(p Predicate[A]) *Contract[A, R] {
	c.meta.Invariants = append(c.meta.Invariants, p)
	return c
}

// Metadata returns a snapshot of the carrier. The snapshot's sequences are
// copies; mutating them does not affect the contract.
func (c *Contract[A, R]) Metadata() Metadata[A, R] {
	return c.meta.clone()
}

// Describe returns the type-erased metadata view used by doc tooling.
func (c *Contract[A, R]) Describe() Descriptor {
	kinds := make([]string, 0, len(c.meta.Raises))
	for _, k := range c.meta.Raises {
		kinds = append(kinds, kindName(k))
	}
	return Descriptor{
		Name:                 c.name,
		Specification:        c.meta.Specification,
		PreDescription:       c.meta.PreDescription,
		PostDescription:      c.meta.PostDescription,
		InvariantDescription: c.meta.InvariantDescription,
		Raises:               kinds,
		Preconditions:        len(c.meta.Preconditions),
		Postconditions:       len(c.meta.Postconditions),
		Invariants:           len(c.meta.Invariants),
	}
}

// Call invokes the contracted function with checking around it.
//
// Order: preconditions, invariant pre-checks, the body, invariant
// post-checks, postconditions. The toggle is consulted separately before and
// after the body, so a body that flips verification mid-call behaves like
// the equivalent stack of independent wrappers.
func (c *Contract[A, R]) Call(args A) (R, error) {
	var zero R

	if Enabled() {
		if err := c.checkBefore(args); err != nil {
			return zero, err
		}
	}

	result, err := c.fn(args)
	if err != nil {
		// The body's own error propagates unchanged; no post-checks run.
		return result, err
	}

	if Enabled() {
		if err := c.checkAfter(result, args); err != nil {
			return zero, err
		}
	}

	return result, nil
}

// Func returns a callable with the same calling convention as the original
// function, checks included.
func (c *Contract[A, R]) Func() Func[A, R] {
	return c.Call
}

// checkBefore evaluates preconditions then invariant pre-checks, in
// application order, stopping at the first violation.
func (c *Contract[A, R]) checkBefore(args A) error {
	for _, p := range c.meta.Preconditions {
		ok, err := evalPredicate(p, args)
		if err != nil {
			return wrapEvalError(KindPrecondition, c.name, "precondition", err)
		}
		if !ok {
			return NewPreconditionViolation(c.name)
		}
	}
	for _, p := range c.meta.Invariants {
		ok, err := evalPredicate(p, args)
		if err != nil {
			return wrapEvalError(KindInvariant, c.name, "invariant", err)
		}
		if !ok {
			return NewInvariantViolation(c.name, "before")
		}
	}
	return nil
}

// checkAfter evaluates invariant post-checks then postconditions. Any
// externally visible effects of the body have already happened; the engine
// cannot roll them back.
func (c *Contract[A, R]) checkAfter(result R, args A) error {
	for _, p := range c.meta.Invariants {
		ok, err := evalPredicate(p, args)
		if err != nil {
			return wrapEvalError(KindInvariant, c.name, "invariant", err)
		}
		if !ok {
			return NewInvariantViolation(c.name, "after")
		}
	}
	for _, p := range c.meta.Postconditions {
		ok, err := evalResultPredicate(p, result, args)
		if err != nil {
			return wrapEvalError(KindPostcondition, c.name, "postcondition", err)
		}
		if !ok {
			return NewPostconditionViolation(c.name)
		}
	}
	return nil
}
