package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkuleshov/emgtrack/internal/models"
)

func parseFloats(line string) ([]float64, error) {
	values := []float64{}
	if strings.TrimSpace(line) == "" {
		return values, nil
	}
	for _, part := range strings.Split(line, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", strings.TrimSpace(part), err)
		}
		values = append(values, v)
	}
	return values, nil
}

func formatReading(r *models.Reading) string {
	return fmt.Sprintf("%s  %s  %-12s  %d samples",
		r.ID, r.Timestamp, r.MuscleGroup, len(r.Values))
}
