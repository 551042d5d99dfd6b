// Package engine computes the derived views of the traceability records:
// expiry alerts, temperature compliance and cleaning due-lists.
//
// Everything here is a pure function of its arguments. Callers recompute on
// every request instead of caching results.
package engine
