package app

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Donutboy2003/HackED2026/internal/config"
	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

// RunConsole subscribes to the tilt topic and prints each sample in a
// human-readable form until interrupted.
func RunConsole() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	token := client.Subscribe(cfg.TopicTilt, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var a orientation.Angles
		if err := json.Unmarshal(msg.Payload(), &a); err != nil {
			log.Printf("console: tilt unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[TILT] ROLL=%7.4f rad (%6.1f°)  PITCH=%7.4f rad (%6.1f°)\n",
			a.Roll, a.Roll*180.0/math.Pi,
			a.Pitch, a.Pitch*180.0/math.Pi,
		)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicTilt)

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
