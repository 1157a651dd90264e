package main

import (
	"log"

	"shoplite/internal/app"
)

func main() {
	if err := app.RunOrders(); err != nil {
		log.Fatalf("orders service failed: %v", err)
	}
}
