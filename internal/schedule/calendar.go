package schedule

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCalendar reads a contribution calendar from a JSON file holding an
// array of {"date": "YYYY-MM-DD", "count": n} objects, the same format the
// desktop exporter writes. The result is not yet normalized.
func LoadCalendar(path string) ([]ContributionDay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calendar: %w", err)
	}

	var days []ContributionDay

	unmarshalErr := json.Unmarshal(data, &days)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("parse calendar %s: %w", path, unmarshalErr)
	}

	return days, nil
}

// SaveCalendar writes a contribution calendar as indented JSON, mirroring the
// format accepted by LoadCalendar.
func SaveCalendar(path string, days []ContributionDay) error {
	data, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal calendar: %w", err)
	}

	writeErr := os.WriteFile(path, data, 0o644)
	if writeErr != nil {
		return fmt.Errorf("write calendar %s: %w", path, writeErr)
	}

	return nil
}
