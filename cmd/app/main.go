package main

import (
	"studio/config"
	"studio/di"
	"studio/shared/logger"
)

// @title Studio Booking API
// @version 1.0
// @description Backend service for booking music studio rooms and private classes.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
