// Package gkrzk is a GKR / sum-check / KZG proving core: the GKR
// interactive-proof engine for layered arithmetic circuits, the sum-check
// protocol (plain and composed-polynomial variants), and the KZG polynomial
// commitment scheme, unified via a Fiat-Shamir transcript into a
// non-interactive argument of correct circuit evaluation.
//
// See gkr/protocol for the prover/verifier entry points and kzg for the
// commitment scheme.
// merkle, shamir, fft and fibonacci are standalone collaborators, not on
// the GKR/KZG soundness-critical path.
package gkrzk
