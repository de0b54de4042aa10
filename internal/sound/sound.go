// Package sound prepares the thunder clip: either decoded from a wav, mp3 or
// flac file or synthesized as decaying brown noise. Clips are rendered into a
// beep.Buffer once so every flash replays them without decoding again.
package sound

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// Format is the playback format every clip is converted to.
var Format = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported file type")

// Load decodes path and resamples it to Format.
func Load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, errors.Join(ErrUnsupported, errors.New(filepath.Ext(path)))
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != Format.SampleRate {
		s = beep.Resample(4, format.SampleRate, Format.SampleRate, streamer)
	}
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return buf, nil
}

// Rumble synthesizes a thunder clap of length d: a sharp crack that decays
// into low brown noise.
func Rumble(d time.Duration, seed int64) *beep.Buffer {
	rng := rand.New(rand.NewSource(seed))
	total := Format.SampleRate.N(d)
	rate := float64(Format.SampleRate)

	var brown float64
	pos := 0
	gen := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			t := float64(pos) / rate
			white := rng.Float64()*2 - 1
			brown = (brown + 0.02*white) / 1.02
			crack := white * math.Exp(-t*18) * 0.5
			body := brown * 3.5 * math.Exp(-t*1.6)
			v := math.Max(-1, math.Min(1, crack+body))
			samples[n] = [2]float64{v, v}
			n++
			pos++
		}
		return n, true
	})

	buf := beep.NewBuffer(Format)
	buf.Append(gen)
	return buf
}
