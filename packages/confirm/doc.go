// Package confirm validates environment-variable values at process
// startup through a fluent confirmation chain.
//
// A chain wraps one variable lookup and applies comparison predicates
// in order, stopping at the first one that does not hold:
//
//	err := confirm.Confirm("SERVER_PORT", "4000").
//		IsGE(1000).
//		IsLE(60000).
//		Err()
//
// Not negates exactly the next predicate. Chains are immutable values:
// every call returns a fresh Chain, and the first failure is carried
// through the rest of the chain untouched. MustConfirm keeps the same
// API but terminates the process on the first failure instead of
// returning an error.
package confirm
