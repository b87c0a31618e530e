// Package cl3 is your double-precision toolbox for Cl(3,0) — the
// Geometric Algebra of 3-dimensional physical space — from graded
// arithmetic to spectral transcendental functions.
//
// 🚀 What is cl3?
//
//	A modern, pure-value library that brings together:
//		• Core primitives: eleven grade-combination variants of one Cliffor type
//		• Graded arithmetic: addition, geometric product, reciprocal, conjugations
//		• Norms & ordering: singular values, signum, tolerance-based reduction
//		• Spectral engine: projectors, eigenvalues, boosts, Jordan fallback
//		• Transcendentals: exp, log, sqrt, trig, hyperbolic & their inverses
//		• Interop: fixed 64-byte binary layout, deterministic random values
//
// ✨ Why choose cl3?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure immutable values, IEEE-754 semantics throughout
//   - Pure Go – no cgo, no hidden deps
//   - Closed algebra – every operation lands on the minimal variant for its grades
//
// Under the hood, everything is organized under four subpackages:
//
//	cliffor/ — the Cliffor value type, arithmetic, norms & the spectral engine
//	codec/   — fixed 64-byte binary layout for array/FFI interop
//	clrand/  — deterministic random Cliffor generation for tests & sampling
//	format/  — human-readable rendering of graded terms
//
// Quick algebra example:
//
//	    e1 * e2 = i·e3
//
//	the product of two orthogonal unit vectors is the unit bivector of
//	their plane — a quaternion-like imaginary unit.
//
// Dive into README.md for full examples, a feature matrix, and our roadmap
// to rotor utilities, bulk array kernels and beyond.
//
//	go get github.com/katalvlaran/cl3/cliffor
package cl3
