// SPDX-License-Identifier: MIT

// Package orbit computes orbits of events under the action of a symmetry
// group: given a group G acting on events of some fixed length over some
// fixed outcome base, it partitions the event space into orbits, picks a
// canonical (lexicographically smallest) representative for each, and
// exposes lookup from any event hash to its orbit's representative and
// index (spec.md §4.2).
package orbit
