package main

import (
	"social-events-api/core/logger"
	"social-events-api/core/server"
)

// @title Social Events API
// @version 1.0
// @description Backend for the events platform: event capacity ledger, participation tracking and content moderation.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
