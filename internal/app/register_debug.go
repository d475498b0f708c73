package app

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/Donutboy2003/HackED2026/internal/adxl343"
	"github.com/Donutboy2003/HackED2026/internal/config"
)

// RunRegisterDebug dumps the whole ADXL343 register file with metadata,
// for bring-up and wiring checks. Reads happen over the same combined
// transactions the driver uses; the device is not switched into
// measurement mode.
func RunRegisterDebug() error {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return fmt.Errorf("open I2C bus %q: %w", cfg.I2CBus, err)
	}
	defer bus.Close()

	dev := adxl343.New(bus, cfg.AccelI2CAddr)
	log.Printf("register_debug: reading ADXL343 @ 0x%02X", cfg.AccelI2CAddr)

	fmt.Printf("%-6s %-12s %-5s %-6s %s\n", "ADDR", "NAME", "VALUE", "ACCESS", "DESCRIPTION")
	for _, reg := range adxl343.RegisterMap() {
		value, err := dev.ReadRegister(reg.Address)
		if err != nil {
			fmt.Printf("0x%02X   %-12s  err  %-6s %s (%v)\n", reg.Address, reg.Name, reg.Access, reg.Description, err)
			continue
		}

		fmt.Printf("0x%02X   %-12s 0x%02X  %-6s %s\n", reg.Address, reg.Name, value, reg.Access, reg.Description)

		for _, bf := range reg.BitFields {
			fmt.Printf("       %8s [%s] %s", bf.Name, bf.Bits, bf.Description)
			if bf.Values != "" {
				fmt.Printf(" (%s)", bf.Values)
			}
			fmt.Println()
		}
	}
	return nil
}
