// Package server runs the HTTP server and shuts it down gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server
