package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Recorder accumulates one frame per tick.
type Recorder struct {
	data Data
}

// NewRecorder creates a recorder for the given stage.
func NewRecorder(stage string) *Recorder {
	return &Recorder{
		data: Data{
			Version: FormatVersion,
			Stage:   stage,
		},
	}
}

// Record appends one tick of input.
func (r *Recorder) Record(f Frame) {
	r.data.Frames = append(r.data.Frames, f)
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.data.Frames)
}

// Data returns the recording accumulated so far.
func (r *Recorder) Data() Data {
	return r.data
}

// Save writes the recording as JSON.
func (r *Recorder) Save(path string) error {
	raw, err := json.Marshal(r.data)
	if err != nil {
		return fmt.Errorf("failed to encode recording: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write recording: %w", err)
	}
	return nil
}
