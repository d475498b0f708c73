package adxl343

import (
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestInitSequence(t *testing.T) {
	// Init must read DEVID then write 0x08 to POWER_CTL, nothing else.
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: DefaultAddr, W: []byte{RegDevID}, R: []byte{DeviceID}},
			{Addr: DefaultAddr, W: []byte{RegPowerCtl, PowerCtlMeasure}, R: nil},
		},
	}

	dev := New(bus, DefaultAddr)
	if err := dev.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("not all expected transactions happened: %v", err)
	}
}

func TestInitWrongDeviceID(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: DefaultAddr, W: []byte{RegDevID}, R: []byte{0x00}},
		},
	}

	dev := New(bus, DefaultAddr)
	if err := dev.Init(); err == nil {
		t.Fatal("Init succeeded against a device that is not an ADXL343")
	}
}

func TestInitAlternateAddress(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: AlternateAddr, W: []byte{RegDevID}, R: []byte{DeviceID}},
			{Addr: AlternateAddr, W: []byte{RegPowerCtl, PowerCtlMeasure}, R: nil},
		},
	}

	dev := New(bus, AlternateAddr)
	if err := dev.Init(); err != nil {
		t.Fatalf("Init at alternate address: %v", err)
	}
}

func TestReadAccelDecode(t *testing.T) {
	testCases := []struct {
		name string
		raw  []byte // X-low, X-high, Y-low, Y-high, Z-low, Z-high
		want Vector3
	}{
		{
			name: "all zero",
			raw:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: Vector3{0, 0, 0},
		},
		{
			name: "one g on z",
			raw:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
			want: Vector3{0, 0, 1.0},
		},
		{
			name: "negative one g on x",
			raw:  []byte{0x00, 0xFF, 0x00, 0x00, 0x00, 0x00},
			want: Vector3{-1.0, 0, 0},
		},
		{
			name: "max positive",
			raw:  []byte{0xFF, 0x7F, 0x00, 0x00, 0x00, 0x00},
			want: Vector3{32767.0 / 256.0, 0, 0},
		},
		{
			name: "max negative",
			raw:  []byte{0x00, 0x80, 0x00, 0x00, 0x00, 0x00},
			want: Vector3{-128.0, 0, 0},
		},
		{
			name: "mixed little-endian",
			raw:  []byte{0x34, 0x12, 0xCC, 0xED, 0x01, 0x00},
			want: Vector3{4660.0 / 256.0, -4660.0 / 256.0, 1.0 / 256.0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bus := &i2ctest.Playback{
				Ops: []i2ctest.IO{
					{Addr: DefaultAddr, W: []byte{RegDataX0}, R: tc.raw},
				},
			}

			dev := New(bus, DefaultAddr)
			got, err := dev.ReadAccel()
			if err != nil {
				t.Fatalf("ReadAccel: %v", err)
			}
			if got != tc.want {
				t.Errorf("ReadAccel() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestReadAccelTransactionError(t *testing.T) {
	// Empty playback: any transaction is unexpected and fails.
	bus := &i2ctest.Playback{DontPanic: true}

	dev := New(bus, DefaultAddr)
	if _, err := dev.ReadAccel(); err == nil {
		t.Fatal("ReadAccel succeeded on a failing bus")
	}
}
