// SPDX-License-Identifier: MIT

// Package feas implements the feasibility and visibility drivers of
// spec.md §4.13-§4.14: the top-level loop that alternates a Frank-Wolfe
// engine and a linear-minimization oracle to certify nonlocality, plus the
// dichotomic search over a visibility parameter that calls it repeatedly.
package feas
