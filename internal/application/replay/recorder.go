package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a run at a fixed frame length
func NewRecorder(seed int64, stage string, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			ID:        uuid.NewString(),
			Version:   FormatVersion,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			DT:        dt,
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input entity.InputSample) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, frameInput(r.frame, input))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
