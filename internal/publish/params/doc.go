// SPDX-License-Identifier: MPL-2.0

// Package params turns the raw publish options bag into a single validated,
// immutable PublishParams aggregate.
//
// Every parameter group validates independently and all failures are
// accumulated in declared-group order instead of short-circuiting, so one
// invocation reports every problem at once. Once the groups validate, the
// optional publish.json overlay fills in metadata fields the user left
// unspecified; explicit options always win over file values.
package params
