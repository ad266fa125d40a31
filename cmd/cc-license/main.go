package main

import (
	"log"

	"github.com/thoth-pub/cc-license/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ cc-license failed to start: %v", err)
	}
}
