package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ravenkeep/darkcastle/internal/application/system"
)

// Replayer feeds a recording back one intent per tick.
type Replayer struct {
	data Data
	pos  int
}

// NewReplayer creates a replayer over a recording.
func NewReplayer(data Data) (*Replayer, error) {
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported recording version %d (want %d)",
			data.Version, FormatVersion)
	}
	return &Replayer{data: data}, nil
}

// Load reads a recording from a JSON file.
func Load(path string) (*Replayer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse recording: %w", err)
	}
	return NewReplayer(data)
}

// Stage returns the stage the recording was made on.
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Next returns the next intent. ok is false once the recording is
// exhausted; after that, Next keeps returning empty intents.
func (r *Replayer) Next() (in system.Intent, ok bool) {
	if r.pos >= len(r.data.Frames) {
		return system.Intent{}, false
	}
	f := r.data.Frames[r.pos]
	r.pos++
	return f.Intent(), true
}

// Remaining returns how many frames are left to play.
func (r *Replayer) Remaining() int {
	return len(r.data.Frames) - r.pos
}
