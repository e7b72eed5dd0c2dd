package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Label names shared by every device series.
const (
	LabelDeviceID       = "fds_device_id"
	LabelDeviceLocation = "fds_device_location"
)

// Registry owns the gauge vectors for one device bridge. It is created once at
// startup and shared by the exporter and the HTTP layer; it holds no global state.
type Registry struct {
	reg *prometheus.Registry

	temperature  *prometheus.GaugeVec
	humidity     *prometheus.GaugeVec
	heatIndex    *prometheus.GaugeVec
	literPerHour *prometheus.GaugeVec
	distanceCM   *prometheus.GaugeVec
	waterLevel   *prometheus.GaugeVec // integer valued
}

// NewRegistry creates a registry with the six device gauges registered.
func NewRegistry() (*Registry, error) {
	labels := []string{LabelDeviceID, LabelDeviceLocation}
	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
	}

	r := &Registry{
		reg:          prometheus.NewRegistry(),
		temperature:  gauge("environment_temperature", "environment temperature in celsius from DHT11 Sensor"),
		humidity:     gauge("environment_humidity", "environment humidity in percentage from DHT11 Sensor"),
		heatIndex:    gauge("heat_index", "HEAT Index calculated from DHT11 Sensor"),
		literPerHour: gauge("liter_per_hour", "Flow Rate obtained from YF-S201 Sensor"),
		distanceCM:   gauge("distance_in_cm", "Distance in centimeters obtained from HC-SR04 Ultrasonic Sensor"),
		waterLevel:   gauge("water_level", "Water level status obtained from WATER level sensor which is either 0 or 1, 0 being breached"),
	}

	for _, c := range []prometheus.Collector{
		r.temperature, r.humidity, r.heatIndex, r.literPerHour, r.distanceCM, r.waterLevel,
	} {
		if err := r.reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register gauge: %w", err)
		}
	}
	return r, nil
}

// Gatherer exposes the underlying registry for serialization.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
