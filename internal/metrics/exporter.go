package metrics

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/prometheus/common/expfmt"
	"naradamuni/internal/models"
	"naradamuni/internal/repository"
)

// Exporter republishes the current reading as Prometheus gauges on every scrape.
type Exporter struct {
	repo     repository.ReadingRepository
	registry *Registry
	format   expfmt.Format

	// mu serializes scrapes: snapshot, gauge writes and gather happen as one step.
	mu sync.Mutex
}

// NewExporter creates an Exporter reading from repo and writing into registry.
func NewExporter(repo repository.ReadingRepository, registry *Registry) *Exporter {
	return &Exporter{
		repo:     repo,
		registry: registry,
		format:   expfmt.NewFormat(expfmt.TypeTextPlain),
	}
}

// ContentType is the media type of the bodies returned by Scrape.
func (e *Exporter) ContentType() string {
	return string(e.format)
}

// Scrape updates the gauges from one snapshot of the store and encodes every
// series in the registry in the text exposition format.
func (e *Exporter) Scrape() ([]byte, string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.observe(e.repo.Snapshot())

	families, err := e.registry.Gatherer().Gather()
	if err != nil {
		return nil, "", fmt.Errorf("error gathering metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, e.format)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			log.Printf("Error encoding metric family %s: %v", mf.GetName(), err)
			return nil, "", fmt.Errorf("error encoding metrics: %w", err)
		}
	}
	return buf.Bytes(), e.ContentType(), nil
}

func (e *Exporter) observe(r models.Reading) {
	labels := []string{r.DeviceID, r.DeviceLocation}

	e.registry.temperature.WithLabelValues(labels...).Set(r.Temperature)
	e.registry.humidity.WithLabelValues(labels...).Set(r.Humidity)
	e.registry.heatIndex.WithLabelValues(labels...).Set(r.HeatIndex)
	e.registry.literPerHour.WithLabelValues(labels...).Set(r.LiterPerHour)
	e.registry.distanceCM.WithLabelValues(labels...).Set(r.DistanceCM)
	e.registry.waterLevel.WithLabelValues(labels...).Set(float64(r.WaterLevel))
}
