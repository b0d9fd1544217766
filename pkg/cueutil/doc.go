// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing and validation plumbing.
//
// Persisted publish configuration (publish.json) is validated against an
// embedded CUE schema before any field is trusted. JSON is a subset of CUE,
// so the same compile/unify/validate flow covers both hand-written CUE and
// plain JSON documents.
package cueutil
