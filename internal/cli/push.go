package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"naradamuni/internal/client"
	"naradamuni/internal/models"
)

func newPushCmd() *cobra.Command {
	var (
		url     string
		timeout time.Duration
		reading = models.DefaultReading()
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Send one reading to a running bridge, as a device would",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.NewDeviceClient(url, timeout)
			if err := c.Push(cmd.Context(), reading); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reading from %s (%s) accepted\n", reading.DeviceID, reading.DeviceLocation)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&url, "url", "http://localhost:8080", "Base URL of the bridge")
	f.DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	f.StringVar(&reading.DeviceID, "device-id", reading.DeviceID, "Device identifier")
	f.StringVar(&reading.DeviceLocation, "location", reading.DeviceLocation, "Device location label")
	f.Float64Var(&reading.Temperature, "temperature", 0, "Temperature in celsius")
	f.Float64Var(&reading.Humidity, "humidity", 0, "Relative humidity in percent")
	f.Float64Var(&reading.HeatIndex, "heat-index", 0, "Heat index in celsius")
	f.Float64Var(&reading.LiterPerHour, "flow", 0, "Flow rate in liters per hour")
	f.Float64Var(&reading.DistanceCM, "distance", 0, "Distance to water surface in centimeters")
	f.IntVar(&reading.WaterLevel, "water-level", 0, "Water level status, 0 means breached")
	return cmd
}
