package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values. The sampling
// pipeline itself (calibration sample count, sample cadence, filter
// constant, device registers) is a fixed contract and lives as
// constants next to the code; only deployment knobs belong here.
type Config struct {
	// Sensor
	I2CBus       string // kernel I2C bus name, "" = first available
	AccelI2CAddr uint16 // 0x53 default strap, 0x1D alternate

	// MQTT
	MQTTBroker           string
	MQTTClientIDProducer string
	MQTTClientIDBridge   string
	MQTTClientIDConsole  string
	MQTTClientIDWeb      string
	MQTTClientIDDisplay  string
	TopicTilt            string

	// Serial bridge (microcontroller variant of the producer)
	SerialPort string
	SerialBaud int

	// Web server
	WebServerPort int

	// Display
	DisplayUpdateInterval int // milliseconds
}

// Package-level unexported variables for the singleton:
//   - globalConfig is unexported so other packages cannot mutate it directly.
//   - configOnce ensures InitGlobal only runs once.
//   - configMu allows concurrent readers via Get.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// defaults returns a Config preloaded with working single-host values,
// so binaries run without a config file present.
func defaults() *Config {
	return &Config{
		I2CBus:                "",
		AccelI2CAddr:          0x53,
		MQTTBroker:            "tcp://localhost:1883",
		MQTTClientIDProducer:  "tilt-producer",
		MQTTClientIDBridge:    "tilt-serial-bridge",
		MQTTClientIDConsole:   "tilt-console",
		MQTTClientIDWeb:       "tilt-web",
		MQTTClientIDDisplay:   "tilt-display",
		TopicTilt:             "tilt/angles",
		SerialPort:            "/dev/ttyACM0",
		SerialBaud:            115200,
		WebServerPort:         8080,
		DisplayUpdateInterval: 100,
	}
}

// Load reads the configuration file and returns a Config struct.
// Missing keys keep their defaults.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := defaults()
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// Sensor
	case "I2C_BUS":
		c.I2CBus = value
	case "ACCEL_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid ACCEL_I2C_ADDR %q: %w", value, err)
		}
		c.AccelI2CAddr = uint16(addr)

	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_PRODUCER":
		c.MQTTClientIDProducer = value
	case "MQTT_CLIENT_ID_BRIDGE":
		c.MQTTClientIDBridge = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value
	case "TOPIC_TILT":
		c.TopicTilt = value

	// Serial bridge
	case "SERIAL_PORT":
		c.SerialPort = value
	case "SERIAL_BAUD":
		baud, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid SERIAL_BAUD %q: %w", value, err)
		}
		c.SerialBaud = baud

	// Web server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	// Display
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all fields hold usable values.
func (c *Config) validate() error {
	if c.AccelI2CAddr != 0x53 && c.AccelI2CAddr != 0x1D {
		return fmt.Errorf("ACCEL_I2C_ADDR must be 0x53 or 0x1D, got 0x%02X", c.AccelI2CAddr)
	}
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicTilt == "" {
		return fmt.Errorf("TOPIC_TILT is required")
	}
	if c.SerialBaud <= 0 {
		return fmt.Errorf("SERIAL_BAUD must be positive, got %d", c.SerialBaud)
	}
	if c.WebServerPort <= 0 || c.WebServerPort > 65535 {
		return fmt.Errorf("WEB_SERVER_PORT must be 1-65535, got %d", c.WebServerPort)
	}
	if c.DisplayUpdateInterval <= 0 {
		return fmt.Errorf("DISPLAY_UPDATE_INTERVAL must be positive, got %d", c.DisplayUpdateInterval)
	}
	return nil
}

// InitGlobal initializes the global configuration from file. If the
// file does not exist, defaults are used. Uses sync.Once so repeated
// calls are harmless.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			globalConfig = defaults()
			return
		}
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance. InitGlobal must be
// called first, or this returns nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
