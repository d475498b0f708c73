package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	serial "github.com/jacobsa/go-serial/serial"

	"github.com/Donutboy2003/HackED2026/internal/config"
	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

// parseTiltLine parses one wire-protocol line, "<roll>,<pitch>" with
// both fields as decimal floats in radians.
func parseTiltLine(line string) (orientation.Angles, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 2 {
		return orientation.Angles{}, fmt.Errorf("want 2 comma-separated fields, got %d", len(parts))
	}

	roll, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return orientation.Angles{}, fmt.Errorf("bad roll %q: %w", parts[0], err)
	}
	pitch, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return orientation.Angles{}, fmt.Errorf("bad pitch %q: %w", parts[1], err)
	}

	return orientation.Angles{Roll: roll, Pitch: pitch}, nil
}

// RunSerialBridge reads the tilt line protocol from the microcontroller
// variant of the producer over a serial port and republishes each sample
// as JSON on the tilt topic. Garbage lines (partial reads, boot noise)
// are skipped silently; the stream never terminates on its own.
func RunSerialBridge() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDBridge)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT connect: %w", token.Error())
	}
	defer client.Disconnect(250)
	log.Printf("bridge: connected to MQTT broker at %s", cfg.MQTTBroker)

	serialOpts := serial.OpenOptions{
		PortName:              cfg.SerialPort,
		BaudRate:              uint(cfg.SerialBaud),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(serialOpts)
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", cfg.SerialPort, err)
	}
	defer port.Close()
	log.Printf("bridge: serial port opened on %s at %d baud", cfg.SerialPort, cfg.SerialBaud)

	reader := bufio.NewReader(port)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("serial read: %w", err)
		}

		angles, err := parseTiltLine(line)
		if err != nil {
			// noisy boot output or a partial first line; skip it
			continue
		}

		payload, err := json.Marshal(angles)
		if err != nil {
			log.Printf("bridge: json marshal error: %v", err)
			continue
		}

		if token := client.Publish(cfg.TopicTilt, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("bridge: MQTT publish error: %v", token.Error())
		}
	}
}
