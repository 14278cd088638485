// SPDX-License-Identifier: MIT

// Package event defines the Event type (an outcome assignment to an ordered
// list of parties) together with its canonical hashing, and the Tensor type,
// a dense rational-valued function over the event space with integer
// numerators and a shared positive denominator (spec.md §3, §4.1).
package event
