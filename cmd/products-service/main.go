package main

import (
	"log"

	"shoplite/internal/app"
)

func main() {
	if err := app.RunProducts(); err != nil {
		log.Fatalf("products service failed: %v", err)
	}
}
