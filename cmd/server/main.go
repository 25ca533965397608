package main

import (
	"fmt"
	"os"

	"watchthis/sharing/cmd/server/commands"

	// Swagger imports
	_ "watchthis/sharing/docs"
)

// @title           WatchThis Sharing API
// @version         1.0
// @description     Share media items between users and track whether they were watched.
// @host            localhost:8372
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apiKey SessionCookie
// @in header
// @name Cookie
func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
