package cli

import (
	"context"
	"fmt"
	"os"
)

// AddReading prompts for a muscle group and a line of comma-separated sample
// values and stores them as one reading for the signed-in user.
func (a *App) AddReading(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Sign in first")
		return err
	}

	muscleGroup, err := getSimpleText(a.reader, "Muscle group (empty for General)", os.Stdout)
	if err != nil {
		return err
	}

	values, err := GetFloats(a.reader, "Sample values, comma-separated", os.Stdout)
	if err != nil {
		printlnFn("Invalid values:", err.Error())
		return err
	}

	reading, err := a.svc.AddReading(ctx, user.ID, values, muscleGroup)
	if err != nil {
		printlnFn("Failed to save reading:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Saved reading %s (%d samples)", reading.ID, len(reading.Values)))
	return nil
}

// List prints all readings of the signed-in user in insertion order.
func (a *App) List(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Sign in first")
		return err
	}

	readings, err := a.svc.UserReadings(ctx, user.ID)
	if err != nil {
		printlnFn("Failed to load readings:", err.Error())
		return err
	}

	if len(readings) == 0 {
		printlnFn("No readings yet")
		return nil
	}
	for _, r := range readings {
		printlnFn(formatReading(&r))
	}
	return nil
}

// Latest prints the most recent readings, newest first.
func (a *App) Latest(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Sign in first")
		return err
	}

	readings, err := a.svc.LatestReadings(ctx, user.ID, a.config.LatestLimit)
	if err != nil {
		printlnFn("Failed to load readings:", err.Error())
		return err
	}

	if len(readings) == 0 {
		printlnFn("No readings yet")
		return nil
	}
	for _, r := range readings {
		printlnFn(formatReading(&r))
	}
	return nil
}

// Stats prints a summary of the last seven days of activity.
func (a *App) Stats(ctx context.Context) error {
	user, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Sign in first")
		return err
	}

	stats, err := a.svc.WeeklyStats(ctx, user.ID)
	if err != nil {
		printlnFn("Failed to compute stats:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Last 7 days: %d sessions, avg activation %.3f V, peak %.3f V",
		stats.Sessions, stats.AvgActivation, stats.Peak))
	return nil
}
