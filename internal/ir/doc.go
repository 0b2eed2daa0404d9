// Package ir provides the value types shared by every qxs package.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal. This keeps ir the foundational
// layer with no circular dependencies.
//
// Key design constraints:
//   - Monomial labels are opaque strings, compared for equality only
//   - Ordered data is a slice of terms, never a Go map
//   - Coefficient is sealed: Int, Float and Complex are the only kinds
//   - Compute failures are *ComputeError values matched with errors.Is
package ir
