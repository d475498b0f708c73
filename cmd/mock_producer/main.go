package main

import (
	"log"
	"os"

	"github.com/Donutboy2003/HackED2026/internal/app"
)

func main() {
	log.Println("starting mock tilt producer (synthetic angles → stdout)")

	if err := app.RunMockProducer(os.Stdout); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
