package main

import (
	"log"

	"shoplite/internal/app"
)

func main() {
	if err := app.RunUsers(); err != nil {
		log.Fatalf("users service failed: %v", err)
	}
}
