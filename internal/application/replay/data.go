package replay

import (
	"math"

	"github.com/younwookim/motionkit/internal/domain/entity"
)

// FormatVersion is written into every trace
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	A  float64 `json:"a,omitempty"`  // Horizontal axis
	J  bool    `json:"j,omitempty"`  // Jump held
	JP bool    `json:"jp,omitempty"` // JumpPressed
}

// Sample converts the frame to a simulation input sample
func (fi FrameInput) Sample() entity.InputSample {
	return entity.InputSample{
		Axis:        fi.A,
		JumpPressed: fi.JP,
		JumpHeld:    fi.J,
	}.Clamped()
}

// frameInput records a sample as frame f
func frameInput(f int, in entity.InputSample) FrameInput {
	in = in.Clamped()
	// Keep traces free of float noise from analog sticks
	axis := math.Round(in.Axis*1000) / 1000
	return FrameInput{F: f, A: axis, J: in.JumpHeld, JP: in.JumpPressed}
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	ID        string       `json:"id"`
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	DT        float64      `json:"dt"` // seconds per frame
	Frames    []FrameInput `json:"frames"`
}
