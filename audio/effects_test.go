package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
		if total > limit {
			t.Fatalf("Streamer did not end within %d samples", limit)
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Square sample %d not unit: %f", i, samples[i][0])
		}
	}
}

// TestOscillatorDuration verifies streams end after their duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 250*time.Millisecond, WaveSaw, rate)

	if got := drain(t, osc, 10000); got != 250 {
		t.Errorf("Expected 250 samples, got %d", got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if n != 0 || ok {
		t.Errorf("Expected drained oscillator, got n=%d ok=%t", n, ok)
	}
}

// TestEnvelopeShape verifies attack starts silent and release fades out
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveSquare, rate) // Constant 1.0
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected envelope to cut at 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[80][0] {
		t.Errorf("Expected release to fade: %f >= %f", samples[99][0], samples[80][0])
	}
}

func TestCuesTerminate(t *testing.T) {
	rate := beep.SampleRate(8000)
	if got := drain(t, CreateNoPathSound(rate, 0.5), rate.N(time.Second)); got != rate.N(noPathDuration) {
		t.Errorf("Expected %d no-path samples, got %d", rate.N(noPathDuration), got)
	}

	samples := make([][2]float64, 256)
	if n, ok := CreateFoundSound(rate, 0.5).Stream(samples); n != 256 || !ok {
		t.Errorf("Expected found cue to produce samples, got n=%d ok=%t", n, ok)
	}
}

func TestPlayerDisabled(t *testing.T) {
	p := NewPlayer(false, 1)
	if err := p.Initialize(); err != nil {
		t.Fatalf("Expected disabled player to skip init, got %v", err)
	}
	if p.Active() {
		t.Error("Expected disabled player inactive")
	}

	// No speaker: must be no-ops
	p.PlayFound()
	p.PlayNoPath()
	p.Cleanup()
}
