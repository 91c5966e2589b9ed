package diag

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tessera-ui/tessera/pkg/canvas"
)

// MaxFrameSamples is the number of recent frames retained for dumps.
const MaxFrameSamples = 120

// FrameStats aggregates paint statistics for diagnostic dumps. A nil
// *FrameStats is valid and records nothing.
type FrameStats struct {
	mu sync.RWMutex

	frames    int
	cells     int
	totalTime time.Duration
	lastTime  time.Duration

	keys         int
	keysConsumed int

	samples []frameSample
	started time.Time
}

type frameSample struct {
	Time     time.Time
	Duration time.Duration
	Size     canvas.Size
}

// NewFrameStats creates an empty frame statistics collector.
func NewFrameStats() *FrameStats {
	return &FrameStats{
		samples: make([]frameSample, 0, MaxFrameSamples),
		started: time.Now(),
	}
}

// RecordFrame notes one painted frame of the given size.
func (s *FrameStats) RecordFrame(d time.Duration, size canvas.Size) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frames++
	s.cells += size.Width * size.Height
	s.totalTime += d
	s.lastTime = d

	if len(s.samples) >= MaxFrameSamples {
		s.samples = s.samples[1:]
	}
	s.samples = append(s.samples, frameSample{
		Time:     time.Now(),
		Duration: d,
		Size:     size,
	})
}

// RecordKey notes one routed key event and whether a widget consumed it.
func (s *FrameStats) RecordKey(consumed bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys++
	if consumed {
		s.keysConsumed++
	}
}

// Frames returns the number of frames recorded.
func (s *FrameStats) Frames() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frames
}

// Dump returns a formatted statistics report.
func (s *FrameStats) Dump() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("=== Frame Statistics ===\n")
	sb.WriteString(fmt.Sprintf("Collection Started: %s\n", s.started.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Frames Painted: %d\n", s.frames))
	sb.WriteString(fmt.Sprintf("Cells Painted: %d\n", s.cells))
	if s.frames > 0 {
		avg := s.totalTime / time.Duration(s.frames)
		sb.WriteString(fmt.Sprintf("Avg Frame Time: %s\n", avg.Round(time.Microsecond)))
		sb.WriteString(fmt.Sprintf("Last Frame Time: %s\n", s.lastTime.Round(time.Microsecond)))
	}
	sb.WriteString(fmt.Sprintf("Keys Routed: %d\n", s.keys))
	sb.WriteString(fmt.Sprintf("Keys Consumed: %d\n", s.keysConsumed))

	if len(s.samples) > 0 {
		sb.WriteString("\n=== Recent Frames ===\n")
		start := len(s.samples) - 10
		if start < 0 {
			start = 0
		}
		for _, sample := range s.samples[start:] {
			sb.WriteString(fmt.Sprintf("  [%s] %dx%d in %s\n",
				sample.Time.Format("15:04:05.000"),
				sample.Size.Width, sample.Size.Height,
				sample.Duration.Round(time.Microsecond)))
		}
	}

	sb.WriteString("=== End Frame Statistics ===\n")
	return sb.String()
}

// Stats returns a summary of collected statistics.
func (s *FrameStats) Stats() map[string]any {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"uptime":        time.Since(s.started).String(),
		"frames":        s.frames,
		"cells":         s.cells,
		"keys":          s.keys,
		"keys_consumed": s.keysConsumed,
	}
	if s.frames > 0 {
		stats["avg_frame_time"] = (s.totalTime / time.Duration(s.frames)).String()
	}
	return stats
}
