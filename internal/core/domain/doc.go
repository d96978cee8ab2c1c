// Package domain defines the core entities of the docsearch client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchResponse: The search server's answer to a query
//   - SearchResult: A single hit referencing a document by ID
//   - Document: A fetched document annotated with its matches
//   - SearchOutcome: The typed result of one client search
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
