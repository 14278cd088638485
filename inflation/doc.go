// SPDX-License-Identifier: MIT

// Package inflation specializes the inflation relaxation to the triangle
// network: it enumerates inflation parties for a given inflation size,
// derives the source-induced and (optionally) distribution-lifted
// symmetry group, and exposes the D-separation and injectable-set
// predicates the constraint parser needs (spec.md §3, §4.3).
package inflation
