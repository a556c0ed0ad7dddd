// Package server runs the portal's transport servers.
//
// It starts the HTTP server carrying the pages and JSON API and, when an
// address is configured, the gRPC health server. Both stop gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
