// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package npy reads and writes NumPy array container files.
//
// The NPY format is a fixed magic ("\x93NUMPY"), a two-byte format
// version, a little-endian header length (two bytes in version 1,
// four in versions 2 and 3), and a Python dict literal naming the
// element type descriptor, the storage order, and the shape. The
// header is padded with spaces to a 64-byte boundary and terminated
// by a newline; the raw element data follows immediately after.
//
// Arrays open two ways:
//
//   - [Open] memory-maps the file read-only. Element reads fault
//     pages in on demand, so metadata and truncated previews never
//     materialize the full data. The caller must [Array.Close] the
//     array to release the mapping.
//   - [Load] reads the file fully into memory. For ".npz" archives
//     (zip containers of .npy members) it loads the first member in
//     sorted name order; [LoadMember] loads a named member.
//
// Element access decodes every supported element type to float64:
// [Array.At] for multi-dimensional indices, [Array.Index] for flat
// logical positions, and [Array.Float64s] for a dense copy in logical
// C order. [Array.Squeeze] and [Array.Transpose] return views that
// share the underlying data. [Array.Guarded] runs a sequence of
// element reads with page faults on the mapping converted into an
// error, for files that may shrink while mapped.
//
// [Save] and [Marshal] write arrays back out in version 1 format
// (version 2 when the header outgrows the version 1 length field),
// and [FromFloat64s] builds a float64 array from a value slice.
package npy
