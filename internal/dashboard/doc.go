// Package dashboard derives everything the dashboard shows from the
// parsed record table: filtered views, summary metrics and the chart
// series. All functions are pure; a view is a new table, never a
// mutation of the one it came from.
package dashboard
