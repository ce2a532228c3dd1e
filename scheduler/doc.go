// Package scheduler assigns one-on-one supplier/rep meetings to calendar slots.
//
// A run resolves each supplier request to ranked candidate reps, orders
// suppliers (Peak first, then by request specificity) and performs a pass:
// every request is tried against its candidates, then against substitutes
// drawn from the leadership hierarchy, and committed to the first slot where
// both the rep and the supplier are free. The Optimizer repeats the pass for
// several seeds, each with its own slot shuffle and private state, and keeps
// the pass with the fewest unfulfilled requests.
package scheduler
