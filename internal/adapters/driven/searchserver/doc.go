// Package searchserver implements driven.SearchServer over HTTP.
//
// The search server exposes two JSON endpoints:
//
//	GET {base}/search?q=<percent-encoded query>
//	GET {base}/document?docID=<doc id>
//
// Each call is a single request with a fixed timeout. Nothing is retried.
// Transport failures wrap domain.ErrTransport, non-2xx answers wrap
// domain.ErrHTTPStatus, and bodies that do not match the expected shape
// wrap domain.ErrMalformedResponse.
package searchserver
