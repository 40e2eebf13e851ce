// Package interview implements a few small array and ledger algorithms:
// the shortest window covering k positions, a count of strictly
// decreasing index triples, and the identities left with the most
// negative balance after netting a list of debts.
//
// All functions are pure and report malformed input with errors that
// match ErrInvalidInput.
package interview
