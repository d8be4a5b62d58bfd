package dto

// PumpControlRequest is the pump toggle payload. Value is the literal
// "YES" or "NO"; anything else is acknowledged without touching the device.
type PumpControlRequest struct {
	PumpControl string `json:"pump_control"`
}
