// Package shared holds cross-cutting helpers that do not belong to any
// single pipeline stage.
//
// # Structure
//
// The package currently contains one subpackage:
//
//   - testutil: a capturing slog handler and log assertions used by tests
//     across the parsing and summary packages
//
// # Usage Guidelines
//
// This package should only contain:
//
//  1. Test utilities used by multiple packages
//  2. Generic helpers with no survey-specific logic
//
// It should NOT contain:
//
//  1. Business logic tied to a pipeline stage
//  2. Circular dependencies with other internal packages
package shared
