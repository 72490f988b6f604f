// Command server runs the pinboard HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) or environment variables;
// see internal/config.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/pinboard-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
