package main

import (
	"flag"
	"log"
	"os"

	"github.com/Donutboy2003/HackED2026/internal/app"
	"github.com/Donutboy2003/HackED2026/internal/config"
)

func main() {
	configPath := flag.String("config", "./tilt_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting tilt producer (ADXL343 → stdout line protocol)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunTiltProducer(os.Stdout); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
