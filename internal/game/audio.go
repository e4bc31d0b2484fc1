package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundGameOver
	SoundMenuSelect
)

// AudioSystem manages procedural music and sound effects.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
	music       *musicReader
}

var globalAudio *AudioSystem

var (
	musicVolume = 0.15
	sfxVolume   = 0.45
	muted       bool
)

// InitAudio initializes the audio system. The game must remain fully
// playable when this fails; callers report the error and continue.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect, fire and forget.
func PlaySound(kind SoundKind) {
	if globalAudio == nil || muted {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartMusic begins the looping background groove from the top, replacing
// any previous player.
func StartMusic() {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	if globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Close()
	}
	reader := &musicReader{gain: 1.0}
	player := globalAudio.ctx.NewPlayer(reader)
	if muted {
		player.SetVolume(0)
	} else {
		player.SetVolume(musicVolume)
	}
	globalAudio.music = reader
	globalAudio.musicPlayer = player
	player.Play()
}

// PauseMusic suspends the ambient loop without losing its position.
func PauseMusic() {
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Pause()
	}
}

// ResumeMusic continues a paused ambient loop.
func ResumeMusic() {
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		globalAudio.musicPlayer.Play()
	}
}

// FadeOutMusic ramps the loop to silence over ~0.8s. The reader keeps
// running silently; StartMusic replaces it on the next session.
func FadeOutMusic() {
	if globalAudio != nil && globalAudio.music != nil {
		globalAudio.music.startFade()
	}
}

// ToggleMute flips the global mute and returns the new state.
func ToggleMute() bool {
	muted = !muted
	if globalAudio != nil && globalAudio.musicPlayer != nil {
		if muted {
			globalAudio.musicPlayer.SetVolume(0)
		} else {
			globalAudio.musicPlayer.SetVolume(musicVolume)
		}
	}
	return muted
}

// Muted reports the current mute state.
func Muted() bool { return muted }

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// triangleLike approximates a triangle wave from its first four odd
// harmonics; softer than a perfect triangle.
func triangleLike(t, f float64) float64 {
	w := 2 * math.Pi * f
	return (8 / (math.Pi * math.Pi)) * (math.Sin(w*t) -
		math.Sin(3*w*t)/9 +
		math.Sin(5*w*t)/25 -
		math.Sin(7*w*t)/49) * 0.7
}

// noteEnv is the shared tone envelope: 20ms linear attack, 150ms release.
func noteEnv(i, total int) float64 {
	attack := int(0.02 * SampleRate)
	release := int(0.15 * SampleRate)
	switch {
	case i < attack:
		return float64(i) / float64(max(1, attack))
	case i > total-release:
		return float64(total-i) / float64(max(1, release))
	default:
		return 1.0
	}
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		return genEat()
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genEat: four quick ascending triangle chirps.
func genEat() []byte {
	freqs := []float64{520, 640, 760, 900}
	noteLen := int(0.06 * SampleRate)
	buf := makeBuf(len(freqs) * noteLen)
	for fi, freq := range freqs {
		for j := 0; j < noteLen; j++ {
			t := float64(j) / SampleRate
			s := triangleLike(t, freq) * noteEnv(j, noteLen) * 0.40
			putStereoF32(buf, fi*noteLen+j, softSat(s))
		}
	}
	return buf
}

// genGameOver: slow descending four-note line.
func genGameOver() []byte {
	freqs := []float64{660, 520, 390, 260}
	noteLen := int(0.16 * SampleRate)
	buf := makeBuf(len(freqs) * noteLen)
	for fi, freq := range freqs {
		for j := 0; j < noteLen; j++ {
			t := float64(j) / SampleRate
			s := triangleLike(t, freq) * noteEnv(j, noteLen) * 0.36
			// Sub octave thickens the tail of the descent.
			s += math.Sin(2*math.Pi*freq*0.5*t) * noteEnv(j, noteLen) * 0.08
			putStereoF32(buf, fi*noteLen+j, softSat(s))
		}
	}
	return buf
}

// genMenuSelect: crisp click + brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Music ---------------------------------------------------------------

// musicNote is one step of the groove; Freq 0 is a rest.
type musicNote struct {
	Freq float64
	Dur  float64 // seconds
}

// grooveSequence returns the looping background melody: an upbeat C-major
// groove at ~62 BPM, two passes per loop.
func grooveSequence() []musicNote {
	const beat = 60.0 / 61.9
	q := beat * 0.45
	e := beat * 0.25
	s := beat * 0.16
	r := beat * 0.12

	const (
		c4 = 261.63
		d4 = 293.66
		e4 = 329.63
		f4 = 349.23
		g4 = 392.00
		a4 = 440.00
		b4 = 493.88
		c5 = 523.25
	)

	bars := []musicNote{
		// Bar 1: C E G C5 with pickups.
		{c4, e}, {e4, e}, {0, r}, {g4, e}, {0, r / 2}, {c5, q}, {0, r}, {e4, s}, {g4, s},
		// Bar 2: walk down with bounce.
		{a4, e}, {0, r / 2}, {g4, e}, {0, r / 2}, {e4, e}, {d4, s}, {e4, s}, {f4, e}, {g4, q},
		// Bar 3: bright lift.
		{e4, e}, {g4, e}, {0, r / 2}, {c5, e}, {b4, s}, {a4, s}, {g4, e}, {0, r / 2}, {e4, e},
		// Bar 4: cadence.
		{f4, e}, {e4, e}, {d4, e}, {c4, q}, {0, r},
	}

	seq := make([]musicNote, 0, 2*len(bars))
	for pass := 0; pass < 2; pass++ {
		seq = append(seq, bars...)
	}
	return seq
}

// musicReader streams the groove endlessly, synthesizing per sample.
type musicReader struct {
	seq     []musicNote
	idx     int     // current note
	pos     int     // sample position within the current note
	gain    float64 // 1.0 normally, ramps to 0 on fade
	fadeDec float64 // per-sample gain decrement while fading
}

func (m *musicReader) startFade() {
	m.fadeDec = 1.0 / (0.8 * SampleRate)
}

func (m *musicReader) Read(p []byte) (int, error) {
	if len(m.seq) == 0 {
		m.seq = grooveSequence()
	}
	samples := len(p) / 8
	for i := 0; i < samples; i++ {
		note := m.seq[m.idx]
		total := max(1, int(note.Dur*SampleRate))

		var s float64
		if note.Freq > 0 {
			t := float64(m.pos) / SampleRate
			s = triangleLike(t, note.Freq) * noteEnv(m.pos, total) * 0.18
		}

		if m.fadeDec > 0 {
			m.gain -= m.fadeDec
			if m.gain < 0 {
				m.gain = 0
			}
		}
		putStereoF32(p, i, softSat(s)*m.gain)

		m.pos++
		if m.pos >= total {
			m.pos = 0
			m.idx++
			if m.idx >= len(m.seq) {
				m.idx = 0
			}
		}
	}
	return samples * 8, nil
}
