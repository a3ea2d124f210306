package sim

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	SampleRate = 44100
	toneHz     = 600

	// 4 ms raised cosine on both ends of every mark keeps key
	// clicks out of the audio.
	edgeLen = SampleRate * 4 / 1000

	peak = 0.6 * 32767
)

// RenderSidetone synthesizes the sidetone for a recorded timeline as
// 16-bit mono samples, tick being the real duration of one keying
// tick. Span boundaries land on cumulative sample positions so long
// runs do not drift against the tick clock.
func RenderSidetone(spans []Span, tick time.Duration) []int {
	tickSec := tick.Seconds()

	var samples []int
	ticksSoFar := 0
	start := 0
	for _, s := range spans {
		ticksSoFar += s.Ticks
		end := int(math.Round(float64(ticksSoFar) * tickSec * SampleRate))
		n := end - start
		if !s.Down {
			samples = append(samples, make([]int, n)...)
			start = end
			continue
		}

		edge := edgeLen
		if n < 2*edge {
			edge = n / 2
		}
		for i := 0; i < n; i++ {
			v := peak * math.Sin(2*math.Pi*toneHz*float64(start+i)/SampleRate)
			switch {
			case i < edge:
				v *= 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(edge)))
			case i >= n-edge:
				v *= 0.5 * (1 - math.Cos(math.Pi*float64(n-1-i)/float64(edge)))
			}
			samples = append(samples, int(v))
		}
		start = end
	}
	return samples
}

// WriteWAV writes the samples to disk as 16-bit mono. The whole
// buffer is held in memory first, which is fine for the session
// lengths scripts produce.
func WriteWAV(filename string, samples []int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return enc.Close()
}
