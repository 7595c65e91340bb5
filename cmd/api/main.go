package main

import (
	"os"

	"pa_dog_license/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pennsylvania Dog License Portal API
// @version         1.0
// @description     Dog license applications: step validation, submission and tracking.

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		os.Exit(1)
	}
}
