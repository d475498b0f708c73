package adxl343

// I2C addresses. The default applies when the SDO pin is strapped to
// ground; strapping it high selects the alternate address.
const (
	DefaultAddr   uint16 = 0x53
	AlternateAddr uint16 = 0x1D
)

// Register addresses.
const (
	RegDevID      = 0x00 // Device ID, reads 0xE5
	RegThreshTap  = 0x1D // Tap threshold
	RegOfsX       = 0x1E // X-axis offset
	RegOfsY       = 0x1F // Y-axis offset
	RegOfsZ       = 0x20 // Z-axis offset
	RegBWRate     = 0x2C // Data rate and power mode control
	RegPowerCtl   = 0x2D // Power saving features control
	RegIntEnable  = 0x2E // Interrupt enable control
	RegIntMap     = 0x2F // Interrupt mapping control
	RegIntSource  = 0x30 // Source of interrupts
	RegDataFormat = 0x31 // Data format control
	RegDataX0     = 0x32 // X-axis data, low byte; first of 6 contiguous data bytes
	RegDataX1     = 0x33
	RegDataY0     = 0x34
	RegDataY1     = 0x35
	RegDataZ0     = 0x36
	RegDataZ1     = 0x37
	RegFIFOCtl    = 0x38 // FIFO control
	RegFIFOStatus = 0x39 // FIFO status
)

const (
	// DeviceID is the fixed value of RegDevID.
	DeviceID = 0xE5

	// PowerCtlMeasure clears standby and starts continuous measurement.
	PowerCtlMeasure = 0x08
)

// BitField describes one field within a register.
type BitField struct {
	Bits        string `json:"bits"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Values      string `json:"values,omitempty"`
}

// RegisterInfo is metadata for one register, used by the register debug tool.
type RegisterInfo struct {
	Address     byte       `json:"address"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Access      string     `json:"access"`
	Default     string     `json:"default,omitempty"`
	BitFields   []BitField `json:"bit_fields,omitempty"`
}

// RegisterMap returns metadata for the ADXL343 register file.
func RegisterMap() []RegisterInfo {
	return []RegisterInfo{
		{Address: RegDevID, Name: "DEVID", Description: "Device ID (should be 0xE5)", Access: "R", Default: "0xE5"},
		{Address: RegThreshTap, Name: "THRESH_TAP", Description: "Tap threshold", Access: "RW", Default: "0x00"},
		{Address: RegOfsX, Name: "OFSX", Description: "X-axis offset trim", Access: "RW", Default: "0x00"},
		{Address: RegOfsY, Name: "OFSY", Description: "Y-axis offset trim", Access: "RW", Default: "0x00"},
		{Address: RegOfsZ, Name: "OFSZ", Description: "Z-axis offset trim", Access: "RW", Default: "0x00"},
		{Address: RegBWRate, Name: "BW_RATE", Description: "Data rate and power mode control", Access: "RW", Default: "0x0A",
			BitFields: []BitField{
				{Bits: "4", Name: "LOW_POWER", Description: "Low power mode", Values: "0=Normal, 1=Low power"},
				{Bits: "3:0", Name: "RATE", Description: "Output data rate", Values: "0x0A=100Hz (default), 0x0F=3200Hz"},
			}},
		{Address: RegPowerCtl, Name: "POWER_CTL", Description: "Power saving features control", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "5", Name: "LINK", Description: "Link activity and inactivity functions", Values: "0=Concurrent, 1=Serial"},
				{Bits: "4", Name: "AUTO_SLEEP", Description: "Auto-sleep on inactivity", Values: "0=Disabled, 1=Enabled"},
				{Bits: "3", Name: "MEASURE", Description: "Measurement mode", Values: "0=Standby, 1=Measure"},
				{Bits: "2", Name: "SLEEP", Description: "Sleep mode", Values: "0=Normal, 1=Sleep"},
				{Bits: "1:0", Name: "WAKEUP", Description: "Reading frequency in sleep mode", Values: "0=8Hz, 1=4Hz, 2=2Hz, 3=1Hz"},
			}},
		{Address: RegIntEnable, Name: "INT_ENABLE", Description: "Interrupt enable control", Access: "RW", Default: "0x00"},
		{Address: RegIntMap, Name: "INT_MAP", Description: "Interrupt mapping control", Access: "RW", Default: "0x00"},
		{Address: RegIntSource, Name: "INT_SOURCE", Description: "Source of interrupts", Access: "R", Default: "0x02"},
		{Address: RegDataFormat, Name: "DATA_FORMAT", Description: "Data format control", Access: "RW", Default: "0x00",
			BitFields: []BitField{
				{Bits: "7", Name: "SELF_TEST", Description: "Self-test force", Values: "0=Disabled, 1=Enabled"},
				{Bits: "6", Name: "SPI", Description: "SPI mode", Values: "0=4-wire, 1=3-wire"},
				{Bits: "5", Name: "INT_INVERT", Description: "Interrupt polarity", Values: "0=Active high, 1=Active low"},
				{Bits: "3", Name: "FULL_RES", Description: "Full resolution mode", Values: "0=10-bit, 1=Full resolution (4mg/LSB)"},
				{Bits: "2", Name: "JUSTIFY", Description: "Data justification", Values: "0=Right (LSB), 1=Left (MSB)"},
				{Bits: "1:0", Name: "RANGE", Description: "Measurement range", Values: "0=±2g, 1=±4g, 2=±8g, 3=±16g"},
			}},
		{Address: RegDataX0, Name: "DATAX0", Description: "X-axis data, low byte", Access: "R"},
		{Address: RegDataX1, Name: "DATAX1", Description: "X-axis data, high byte", Access: "R"},
		{Address: RegDataY0, Name: "DATAY0", Description: "Y-axis data, low byte", Access: "R"},
		{Address: RegDataY1, Name: "DATAY1", Description: "Y-axis data, high byte", Access: "R"},
		{Address: RegDataZ0, Name: "DATAZ0", Description: "Z-axis data, low byte", Access: "R"},
		{Address: RegDataZ1, Name: "DATAZ1", Description: "Z-axis data, high byte", Access: "R"},
		{Address: RegFIFOCtl, Name: "FIFO_CTL", Description: "FIFO control", Access: "RW", Default: "0x00"},
		{Address: RegFIFOStatus, Name: "FIFO_STATUS", Description: "FIFO status", Access: "R", Default: "0x00"},
	}
}
