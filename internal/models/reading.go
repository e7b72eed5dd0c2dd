package models

import "strconv"

// Default identity reported before any device has pushed a reading.
const (
	DefaultDeviceID       = "0x00"
	DefaultDeviceLocation = "Pune-India"
)

// Reading represents the last-known sensor state of a flood detection device
type Reading struct {
	DeviceID       string
	DeviceLocation string
	Temperature    float64 // celsius, DHT11
	Humidity       float64 // percent, DHT11
	HeatIndex      float64 // celsius, derived from DHT11
	LiterPerHour   float64 // YF-S201 flow sensor
	DistanceCM     float64 // HC-SR04 ultrasonic sensor
	WaterLevel     int     // 0 means the level was breached
}

// DefaultReading returns the reading held at startup.
func DefaultReading() Reading {
	return Reading{
		DeviceID:       DefaultDeviceID,
		DeviceLocation: DefaultDeviceLocation,
	}
}

// Payload renders the reading in the all-strings form the device sends.
func (r Reading) Payload() ListenRequest {
	return ListenRequest{
		DeviceID:       r.DeviceID,
		DeviceLocation: r.DeviceLocation,
		Temperature:    formatFloat(r.Temperature),
		Humidity:       formatFloat(r.Humidity),
		HeatIndex:      formatFloat(r.HeatIndex),
		LiterPerHour:   formatFloat(r.LiterPerHour),
		DistanceCM:     formatFloat(r.DistanceCM),
		WaterLevel:     strconv.Itoa(r.WaterLevel),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
