// Package http contains the HTTP handlers: the dashboard JSON API,
// the CSV export, health endpoints and the embedded dashboard page.
package http
