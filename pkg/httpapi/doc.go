// Package httpapi exposes a namegen session over a small JSON API.
//
// The handler serves generation and statistics for the session's current
// dataset:
//
//	GET /api/names?count=10&filter=all
//	GET /api/stats?filter=all
//	GET /healthz
//
// Responses carry the dataset id so clients can tell reloads apart.
// Error mapping: malformed query parameters and unknown filters are 400,
// generating before a dataset is loaded is 409, a source filter that
// empties a pool is 422.
//
// The handler only reads from the session; the embedding application is
// responsible for serializing reloads against requests, as the session
// itself is not safe for concurrent mutation.
package httpapi
