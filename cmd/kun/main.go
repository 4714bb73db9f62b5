package main

import (
	"log"
	"os"

	"kun/internal/app"
	"kun/internal/logger"
)

func main() {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	application, err := app.New(appLogger, os.Args[1:])
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}

	application.Run()
}
