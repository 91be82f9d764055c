package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dkuleshov/emgtrack/internal/sensor"
)

// Capture records a burst of samples from the sensor source and stores them
// as one reading. The number of samples is duration * sample rate.
func (a *App) Capture(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Sign in first")
		return err
	}

	muscleGroup, err := getSimpleText(a.reader, "Muscle group (empty for General)", os.Stdout)
	if err != nil {
		return err
	}

	line, err := getSimpleText(a.reader, "Capture duration in seconds", os.Stdout)
	if err != nil {
		return err
	}
	seconds, err := strconv.Atoi(line)
	if err != nil || seconds <= 0 {
		printlnFn("Expected a positive number of seconds")
		return fmt.Errorf("invalid duration %q", line)
	}

	values := sensor.Capture(a.source, seconds*a.config.SampleRate)

	reading, err := a.svc.AddReading(ctx, user.ID, values, muscleGroup)
	if err != nil {
		printlnFn("Failed to save reading:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Captured reading %s (%d samples at %d Hz)",
		reading.ID, len(reading.Values), a.config.SampleRate))
	return nil
}
