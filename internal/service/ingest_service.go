package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"naradamuni/internal/models"
	"naradamuni/internal/repository"
)

// IngestService turns device payloads into Readings and publishes them to the store.
type IngestService struct {
	repo        repository.ReadingRepository
	logReadings bool
}

// NewIngestService creates a new IngestService. When logReadings is set every
// accepted reading is written to the log.
func NewIngestService(repo repository.ReadingRepository, logReadings bool) *IngestService {
	return &IngestService{
		repo:        repo,
		logReadings: logReadings,
	}
}

// Ingest parses payload and replaces the current reading with it.
// The store is left untouched when parsing fails.
func (s *IngestService) Ingest(payload map[string]any) (models.Reading, error) {
	reading, err := ParseReading(payload)
	if err != nil {
		return models.Reading{}, fmt.Errorf("invalid reading: %w", err)
	}

	s.repo.Replace(reading)

	if s.logReadings {
		log.Printf("Accepted reading: %+v", reading)
	}
	return reading, nil
}

// ParseReading extracts the eight required fields of a device payload.
// Every field must be a JSON string; numeric fields are parsed from that string.
func ParseReading(payload map[string]any) (models.Reading, error) {
	p := fieldParser{payload: payload}

	reading := models.Reading{
		DeviceID:       p.str(models.FieldDeviceID),
		DeviceLocation: p.str(models.FieldDeviceLocation),
		Temperature:    p.float(models.FieldTemperature),
		Humidity:       p.float(models.FieldHumidity),
		HeatIndex:      p.float(models.FieldHeatIndex),
		LiterPerHour:   p.float(models.FieldLiterPerHour),
		DistanceCM:     p.float(models.FieldDistanceCM),
		WaterLevel:     p.integer(models.FieldWaterLevel),
	}
	if p.err != nil {
		return models.Reading{}, p.err
	}
	return reading, nil
}

// fieldParser keeps the first failure and turns later lookups into no-ops.
type fieldParser struct {
	payload map[string]any
	err     error
}

func (p *fieldParser) str(field string) string {
	if p.err != nil {
		return ""
	}
	raw, ok := p.payload[field]
	if !ok || raw == nil {
		p.err = &models.FieldError{Field: field, Kind: models.FieldMissing}
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		p.err = &models.FieldError{Field: field, Kind: models.FieldType}
		return ""
	}
	return s
}

func (p *fieldParser) float(field string) float64 {
	s := p.str(field)
	if p.err != nil {
		return 0
	}
	if err := checkDecimal(s); err != nil {
		p.err = &models.FieldError{Field: field, Kind: models.FieldParse, Err: err}
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = &models.FieldError{Field: field, Kind: models.FieldParse, Err: err}
		return 0
	}
	return v
}

func (p *fieldParser) integer(field string) int {
	s := p.str(field)
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		p.err = &models.FieldError{Field: field, Kind: models.FieldParse, Err: err}
		return 0
	}
	return int(v)
}

var errNotDecimal = errors.New("not a decimal number")

// checkDecimal rejects the hexadecimal and underscore forms strconv.ParseFloat
// would otherwise accept.
func checkDecimal(s string) error {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") || strings.Contains(s, "_") {
		return fmt.Errorf("%q: %w", s, errNotDecimal)
	}
	return nil
}
