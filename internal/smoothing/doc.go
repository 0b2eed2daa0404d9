// Package smoothing averages spectral time evolutions over a window of
// sample times with normalised Gaussian weights, and injects the result as
// complex coefficients into an X-series skeleton.
//
// Window layout follows linspace(t - w/2, t + w/2, w) with integer division.
// For even w the target time itself is not sampled; this is kept as is.
package smoothing
