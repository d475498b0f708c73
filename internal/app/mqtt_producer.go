package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Donutboy2003/HackED2026/internal/config"
	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

// RunTiltMQTT runs the same acquisition pipeline as RunTiltProducer but
// publishes each filtered sample as JSON to the tilt topic instead of
// writing the line protocol.
func RunTiltMQTT() error {
	cfg := config.Get()

	dev, bus, err := openAccel()
	if err != nil {
		return err
	}
	defer bus.Close()

	// The pipeline's writer is unused here; samples leave via MQTT.
	p := NewPipeline(orientation.NewAccelSource(dev), io.Discard)

	log.Printf("producer: calibrating over %d samples, hold the device still", CalibrationSamples)
	if err := p.Calibrate(CalibrationSamples, CalibrationInterval); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	time.Sleep(CalibrationSettle)

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT connect: %w", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("producer: connected to MQTT broker at %s, publishing to %s", cfg.MQTTBroker, cfg.TopicTilt)

	ticker := time.NewTicker(SampleInterval)
	defer ticker.Stop()

	for range ticker.C {
		angles, err := p.Next()
		if err != nil {
			log.Printf("producer: sample dropped: %v", err)
			continue
		}

		payload, err := json.Marshal(angles)
		if err != nil {
			log.Printf("producer: json marshal error: %v", err)
			continue
		}

		if token := client.Publish(cfg.TopicTilt, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("producer: MQTT publish error: %v", token.Error())
		}
	}
	return nil
}
