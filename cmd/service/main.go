package main

import (
	"os"

	"esgweb/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run())
}
