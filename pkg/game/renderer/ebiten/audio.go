package ebiten

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"starforge/pkg/engine/console"
	"starforge/pkg/engine/scene"
)

const sampleRate = 44100

// CuePlayer plays short fire-and-forget sound cues from raw PCM assets
// (signed 16-bit little-endian stereo at 44.1kHz).
type CuePlayer struct {
	ctx  *audio.Context
	cues map[string]*scene.Data
}

// NewCuePlayer resolves the console's cue assets and readies an audio
// context.
func NewCuePlayer(sc *scene.Scene, lib *scene.Library) (*CuePlayer, error) {
	blip, err := scene.NewData(AssetBlipCue, sc, lib)
	if err != nil {
		return nil, err
	}
	return &CuePlayer{
		ctx: audio.NewContext(sampleRate),
		cues: map[string]*scene.Data{
			console.CueToggle: blip,
		},
	}, nil
}

// Play starts the named cue. Unknown cues log and are dropped.
func (p *CuePlayer) Play(name string) {
	cue, ok := p.cues[name]
	if !ok {
		log.Printf("audio: unknown cue %q", name)
		return
	}
	player, err := p.ctx.NewPlayer(bytes.NewReader(cue.Payload()))
	if err != nil {
		log.Printf("audio: cue %q: %v", name, err)
		return
	}
	player.Play()
}

// Close releases the player's cue assets.
func (p *CuePlayer) Close() {
	for _, cue := range p.cues {
		cue.MarkDead()
	}
}

// BlipPCM synthesizes the console toggle blip: a short sine burst with a
// linear fade-out, as s16le stereo PCM.
func BlipPCM() []byte {
	const (
		freq     = 880.0
		duration = 0.09
	)
	n := int(duration * sampleRate)
	buf := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * fade * 0.3
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(s))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(s))
	}
	return buf
}
