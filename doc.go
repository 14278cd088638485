// Package triangleinflation is the root of a solver for causal-inflation
// nonlocality certification in the triangle network: three parties, each
// pairwise-connected through an unobserved common source, with no direct
// communication allowed between them.
//
// The solver pipeline is laid out as a sequence of small packages, each
// owning one stage:
//
//	symmetry/      — permutation groups acting on inflation events
//	event/         — event tensors, hashing, and probability bookkeeping
//	orbit/         — symmetry orbits of inflation events
//	network/       — the fixed triangle network and target distributions
//	inflation/     — inflation copies, parties, and their induced symmetries
//	eventtree/     — compressed, symmetry-reduced event trees
//	constraint/    — LPI-style linear constraints and dual vectors
//	oracle/        — exact minimization of a dual vector over inflation events
//	frankwolfe/    — the separating-hyperplane search driving the dual vector
//	feas/          — the feasibility loop and visibility search tying it together
//	distributions/ — worked target-distribution families (SRB, EJM)
//
// See DESIGN.md for the grounding of each package and SPEC_FULL.md for the
// full specification this module implements.
package triangleinflation
