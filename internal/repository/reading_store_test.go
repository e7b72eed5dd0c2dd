package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"naradamuni/internal/models"
)

func readingFor(i int) models.Reading {
	v := float64(i)
	return models.Reading{
		DeviceID:       fmt.Sprintf("0x%02X", i),
		DeviceLocation: fmt.Sprintf("site-%d", i),
		Temperature:    v,
		Humidity:       v,
		HeatIndex:      v,
		LiterPerHour:   v,
		DistanceCM:     v,
		WaterLevel:     i,
	}
}

func TestReadingStore_DefaultState(t *testing.T) {
	store := NewReadingStore(models.DefaultReading())

	got := store.Snapshot()
	assert.Equal(t, "0x00", got.DeviceID)
	assert.Equal(t, "Pune-India", got.DeviceLocation)
	assert.Zero(t, got.Temperature)
	assert.Zero(t, got.Humidity)
	assert.Zero(t, got.HeatIndex)
	assert.Zero(t, got.LiterPerHour)
	assert.Zero(t, got.DistanceCM)
	assert.Zero(t, got.WaterLevel)
}

func TestReadingStore_ReadYourWrite(t *testing.T) {
	store := NewReadingStore(models.DefaultReading())
	want := models.Reading{
		DeviceID:       "0xA1",
		DeviceLocation: "Lab-1",
		Temperature:    27.5,
		Humidity:       60.2,
		HeatIndex:      28.1,
		LiterPerHour:   3.4,
		DistanceCM:     12.0,
		WaterLevel:     1,
	}

	store.Replace(want)

	for i := 0; i < 3; i++ {
		assert.Equal(t, want, store.Snapshot())
	}
}

func TestReadingStore_ConcurrentReplaceIsAtomic(t *testing.T) {
	store := NewReadingStore(models.DefaultReading())
	const writers = 64

	inputs := make(map[string]models.Reading, writers)
	for i := 1; i <= writers; i++ {
		r := readingFor(i)
		inputs[r.DeviceID] = r
	}

	var wg sync.WaitGroup
	for _, r := range inputs {
		wg.Add(2)
		go func(r models.Reading) {
			defer wg.Done()
			store.Replace(r)
		}(r)
		go func() {
			defer wg.Done()
			// Every intermediate snapshot must also be one whole input or the default.
			snap := store.Snapshot()
			if snap.DeviceID == models.DefaultDeviceID {
				assert.Equal(t, models.DefaultReading(), snap)
				return
			}
			assert.Equal(t, inputs[snap.DeviceID], snap)
		}()
	}
	wg.Wait()

	final := store.Snapshot()
	want, ok := inputs[final.DeviceID]
	require.True(t, ok, "final reading %q is not one of the inputs", final.DeviceID)
	assert.Equal(t, want, final)
}
