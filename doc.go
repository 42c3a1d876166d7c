// Package resvar computes feature-wise residual statistics over large
// expression matrices — the per-row mean and the variance left after
// projecting out a fitted linear model through its QR decomposition.
//
// 🚀 What is resvar?
//
//	A focused numeric kernel for mean/variance-trend workflows:
//		• Row sources: dense & compressed-sparse-row matrices, integer or float backing
//		• Transforms: identity, log2 size-factor normalization with pseudocount
//		• Projection: Householder QTx via LAPACK (gonum), no hat matrix ever formed
//		• Driver: one deterministic sweep, mean + residual variance per row
//		• Scaling: opt-in worker fan-out with per-worker scratch, bit-identical output
//
// ✨ Why choose resvar?
//
//   - Numerically careful – residual sums of squares via an orthonormal basis,
//     never via explicit (I−H)x
//   - Allocation-frugal – one reusable row buffer per worker, outputs written once
//   - Strict contracts – every dimension checked before the sweep, sentinel errors
//     matched with errors.Is
//   - Pure Go – gonum-backed LAPACK routines, no cgo
//
// Everything is organized under three subpackages:
//
//	rowmat/   — row-access abstraction over dense and CSR storage
//	linmodel/ — pre-computed QR factorizations and QTx projectors
//	residual/ — transforms, the per-row sweep, and result assembly
//
// Quick sketch of one row's journey:
//
//	row ──transform──▶ mean ──QTx──▶ [coef₀…coefₖ | residual…] ──Σr²/(n−k)──▶ variance
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/resvar/residual
package resvar
