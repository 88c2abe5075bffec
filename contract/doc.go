// Package contract implements runtime Design-by-Contract checking for Go
// functions: preconditions, postconditions, and invariants, plus purely
// descriptive specification metadata, behind a process-wide verification
// toggle.
//
// A Contract wraps a function together with its metadata carrier and an
// ordered set of condition predicates. Conditions are attached with builder
// methods and evaluated at call time, so verification can be enabled or
// disabled at any point in the process lifetime without re-wrapping.
//
// # Features
//
//   - Precondition, postcondition, and invariant checks with a typed
//     violation taxonomy (Violation, Kind)
//   - Descriptive metadata (specification, condition descriptions, declared
//     error kinds) that never affects control flow
//   - Process-wide atomic toggle seeded from GOCONTRACT_ENABLED
//   - ImplementThis / DontImplementThis stub markers, distinguishable from
//     contract violations
//   - A named-contract registry for documentation tooling
//
// # Usage
//
//	div := contract.New("div", func(a DivArgs) (int, error) {
//		return a.A / a.B, nil
//	}).
//		WithSpecification("Divides two integers").
//		WithPrecondition(contract.Pred(func(a DivArgs) bool {
//			return a.B != 0
//		}))
//
//	contract.Enable()
//	result, err := div.Call(DivArgs{A: 10, B: 2})
//
// When verification is disabled every check is a no-op passthrough; a
// violating call simply runs the underlying function.
package contract
