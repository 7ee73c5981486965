package events

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Thresholds are the detection limits the pose pipeline compares against.
// Editing them is gated by authz.OpEditThresholds.
type Thresholds struct {
	PitchDegrees int `json:"pitch_degrees"`
	YawDegrees   int `json:"yaw_degrees"`
}

// DefaultThresholds returns the stock detection limits
func DefaultThresholds() Thresholds {
	return Thresholds{
		PitchDegrees: -15,
		YawDegrees:   20,
	}
}

// LoadThresholds reads the thresholds file, returning the defaults when it
// does not exist
func LoadThresholds(fs afero.Fs, path string) (Thresholds, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultThresholds(), nil
		}
		return Thresholds{}, fmt.Errorf("reading thresholds file: %w", err)
	}

	var t Thresholds
	if err := json.Unmarshal(data, &t); err != nil {
		return Thresholds{}, fmt.Errorf("parsing thresholds file: %w", err)
	}
	return t, nil
}

// SaveThresholds writes the thresholds file
func SaveThresholds(fs afero.Fs, path string, t Thresholds) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing thresholds file: %w", err)
	}
	return nil
}
