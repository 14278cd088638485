// SPDX-License-Identifier: MIT

package feas

import "errors"

// ErrBadSearchMode is returned when a FeasOptions names an unrecognized
// oracle search mode.
var ErrBadSearchMode = errors.New("feas: unrecognized search mode")

// ErrBadFWAlgo is returned when a FeasOptions names an unrecognized
// Frank-Wolfe algorithm.
var ErrBadFWAlgo = errors.New("feas: unrecognized Frank-Wolfe algorithm")

// ErrCertificateVersionMismatch is returned when a certificate file's
// version line does not match the reader's expected version.
var ErrCertificateVersionMismatch = errors.New("feas: certificate version mismatch")

// ErrCertificateMetadataMismatch is returned when a certificate file's
// metadata string does not match the value supplied at read time.
var ErrCertificateMetadataMismatch = errors.New("feas: certificate metadata mismatch")

// ErrCertificateMalformed is returned when a certificate file's structural
// markers ("METADATA", "CONSTRAINT SET", "DUAL VECTOR") or a constraint's
// pretty description do not match what the reader expects.
var ErrCertificateMalformed = errors.New("feas: malformed certificate file")

// ErrNoVisibilityBracket is returned when VisibilityDriver cannot find a
// feasible/nonlocal bracket within [v_min, v_max].
var ErrNoVisibilityBracket = errors.New("feas: no feasible/nonlocal bracket found in range")

// ErrSymtreeMetadataMismatch is returned when a cached symmetric event
// tree's stored metadata string does not match the inflation it is being
// loaded against.
var ErrSymtreeMetadataMismatch = errors.New("feas: symtree cache metadata mismatch")
