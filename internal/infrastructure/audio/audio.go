// Package audio plays the session's background loop and hit cue through ebiten.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/oof/internal/infrastructure/config"
)

// SampleRate is the rate every asset is resampled to
const SampleRate = 44100

type stream interface {
	io.ReadSeeker
	Length() int64
}

// Cues implements session.Cues on top of an ebiten audio context
type Cues struct {
	ctx    *audio.Context
	music  *audio.Player
	hit    []byte
	volume float64
}

// Context returns the process-wide audio context, creating it on first use
func Context() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// New loads the assets named in cfg from fsys. Empty names are skipped.
func New(ctx *audio.Context, fsys fs.FS, cfg config.AudioConfig) (*Cues, error) {
	c := &Cues{ctx: ctx, volume: cfg.Volume}

	if cfg.Background != "" {
		s, err := load(fsys, cfg.Background, ctx.SampleRate())
		if err != nil {
			return nil, err
		}
		c.music, err = ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
		if err != nil {
			return nil, fmt.Errorf("failed to create music player: %w", err)
		}
	}

	if cfg.Hit != "" {
		s, err := load(fsys, cfg.Hit, ctx.SampleRate())
		if err != nil {
			return nil, err
		}
		c.hit, err = io.ReadAll(s)
		if err != nil {
			return nil, fmt.Errorf("failed to read decoded audio %s: %w", cfg.Hit, err)
		}
	}

	return c, nil
}

func load(fsys fs.FS, name string, sampleRate int) (stream, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", name, err)
	}
	return decode(name, data, sampleRate)
}

// decode picks the decoder by file extension
func decode(name string, data []byte, sampleRate int) (stream, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// PlayBackgroundLoop starts the looping track if one was loaded
func (c *Cues) PlayBackgroundLoop() {
	if c.music == nil || c.music.IsPlaying() {
		return
	}
	c.music.SetVolume(c.volume)
	c.music.Play()
}

// PlayHitSound fires a new player for the hit cue
func (c *Cues) PlayHitSound() {
	if c.hit == nil || c.volume <= 0 {
		return
	}
	p := c.ctx.NewPlayerFromBytes(c.hit)
	p.SetVolume(c.volume)
	p.Play()
}

// Close stops the background loop
func (c *Cues) Close() error {
	if c.music == nil {
		return nil
	}
	return c.music.Close()
}
