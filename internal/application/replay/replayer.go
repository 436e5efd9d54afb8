package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// DefaultDT is the frame length used when a trace does not carry one
const DefaultDT = 1.0 / 60

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeReplay(file)
}

// LoadReplayFS loads replay data from a file system (embedded traces)
func LoadReplayFS(fsys fs.FS, name string) (*ReplayData, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeReplay(file)
}

// DecodeReplay reads one JSON trace
func DecodeReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.DT <= 0 {
		data.DT = DefaultDT
	}
	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (entity.InputSample, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.InputSample{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.Sample(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// DT returns the frame length in seconds
func (r *Replayer) DT() float64 {
	if r.data.DT <= 0 {
		return DefaultDT
	}
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (player holding axis)
func CreateTestReplayData(frames int, axis float64) ReplayData {
	data := ReplayData{
		ID:        uuid.NewString(),
		Version:   FormatVersion,
		Seed:      12345,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		DT:        DefaultDT,
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			A: axis,
		}
	}

	return data
}
