// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and a registry of known
// publish failure modes with rendered remediation docs.
package issue
