package main

import (
	"kiraya/config"
	"kiraya/di"
	"kiraya/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
