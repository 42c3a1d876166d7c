// Package rowmat provides strictly row-oriented access to large numeric
// matrices stored under different encodings.
//
// What:
//
//   - RowSource is the single capability every encoding exposes:
//     copy logical row i into a caller-supplied buffer.
//   - DenseFloat64 / DenseInt32 wrap flat row-major backing slices.
//   - CSRFloat64 / CSRInt32 wrap compressed-sparse-row triplets
//     (indptr, indices, values) and scatter stored entries over a
//     zeroed buffer.
//   - Integer-backed sources upcast each element to float64 on read, so
//     downstream numeric code sees one element type regardless of storage.
//
// Why:
//
//   - Feature-wise statistics sweep a matrix one row at a time; exposing
//     only get-row keeps every encoding equally cheap to consume and keeps
//     whole-matrix intermediates impossible by construction.
//   - The concrete encoding is chosen once, when the source is built; the
//     per-row cost of polymorphism is a single interface call.
//
// Contracts:
//
//   - Constructors validate shape and backing-structure coherence up front
//     (CSR constructors scan the full structure once, O(nnz)), so Row stays
//     cheap on the hot path.
//   - Dense constructors retain the caller's slice as a read-only view;
//     the caller must not mutate it while the source is in use.
//     DenseFromRows deep-copies instead.
//   - Row never retains dst and never allocates.
//
// Complexity:
//
//   - Dense Row:  O(cols) copy.
//   - CSR Row:    O(cols) zero-fill + O(nnz(row)) scatter.
//
// Errors:
//
//   - ErrBadShape: negative dimensions, backing-length mismatch, or an
//     incoherent CSR structure at construction.
//   - ErrNonRectangular: DenseFromRows input rows of differing lengths.
//   - ErrOutOfRange: row index outside [0, rows).
//   - ErrBufferLen: destination buffer length differs from the column count.
//   - ErrCorruptStorage: CSR structure violated at read time (backing slices
//     mutated after construction).
package rowmat
