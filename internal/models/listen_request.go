package models

// Payload keys accepted by the listen endpoint.
const (
	FieldDeviceID       = "fds_dev_id"
	FieldDeviceLocation = "fds_dev_loc"
	FieldTemperature    = "t"
	FieldHumidity       = "h"
	FieldHeatIndex      = "hic"
	FieldLiterPerHour   = "l_hour"
	FieldDistanceCM     = "d_cm"
	FieldWaterLevel     = "w_level"
)

// ListenRequest is the body a device posts to the listen endpoint.
// Embedded devices may not format numbers natively, so every value is a string.
type ListenRequest struct {
	DeviceID       string `json:"fds_dev_id"`
	DeviceLocation string `json:"fds_dev_loc"`
	Temperature    string `json:"t"`
	Humidity       string `json:"h"`
	HeatIndex      string `json:"hic"`
	LiterPerHour   string `json:"l_hour"`
	DistanceCM     string `json:"d_cm"`
	WaterLevel     string `json:"w_level"`
}
