package main

import (
	"flag"
	"log"

	"github.com/Donutboy2003/HackED2026/internal/app"
	"github.com/Donutboy2003/HackED2026/internal/config"
)

func main() {
	configPath := flag.String("config", "./tilt_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting tilt producer (ADXL343 → MQTT)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunTiltMQTT(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
