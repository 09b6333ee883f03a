// Command web runs the score dashboard server: it parses the
// configured score cards and serves the dashboard page, the JSON API,
// the CSV export and the WebSocket reload channel.
package main

import (
	"fmt"
	"os"

	"parkpulse/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		application.Logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
