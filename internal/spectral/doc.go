// Package spectral computes the diagonal time evolution of a toy spectral
// operator.
//
// The operator is strictly diagonal: a Spectrum is an ordered list of real
// eigenvalues, the Hamiltonian is their elementwise square, and the time
// evolution at time t is exp(-i·t·λ²) per eigenvalue. There is no basis,
// no Hilbert space structure and no operator composition.
//
// FromOperator derives a Spectrum from a real symmetric operator matrix.
//
// All functions are pure: inputs are never mutated and every result is a
// freshly allocated slice.
package spectral
