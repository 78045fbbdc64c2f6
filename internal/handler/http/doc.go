// Package http implements the HTTP transport of the service.
//
// It serves the active deployment profile to the front-end, reports the
// build version and exposes the caller's session behind token
// authentication. Tracing, access logging, CORS for the front-end origin
// and authorization are handled by middleware in this package.
package http
