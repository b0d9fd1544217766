// SPDX-License-Identifier: MPL-2.0

// Package conf loads the optional persisted publish configuration
// (publish.json) and decides when to look for one.
//
// Discovery is deliberately conservative: a default publish.json is only
// picked up when the invocation has not been narrowed to an explicit
// package or explicit directories, so an ambient project-wide file never
// silently applies to a targeted publish.
package conf
