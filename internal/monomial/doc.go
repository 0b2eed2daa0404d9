// Package monomial implements the q-character monomial algebra used by qxs.
//
// A Mapping is an ordered sequence of (label, coefficient) terms. By
// construction convention the first term is the highest monomial; the
// package does not check any dominance ordering. Extremal monomials are
// found by applying externally supplied Weyl actions to the highest
// monomial and keeping the images that appear in the mapping with
// coefficient exactly 1. This is a membership filter, not a computation of
// algebraic extremality.
package monomial
