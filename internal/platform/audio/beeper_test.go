package audio

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestBeeperFallsBackToBell(t *testing.T) {
	var out bytes.Buffer
	played := 0
	b := newBeeper(&out, nil,
		func() error { return errors.New("no device") },
		func(beep.Streamer) { played++ })

	if b.Speaker() {
		t.Fatal("speaker reported after failed init")
	}
	b.Alert()
	b.Alert()
	if out.String() != "\a\a" {
		t.Errorf("bell output = %q, want two bells", out.String())
	}
	if played != 0 {
		t.Errorf("played %d tones without a device", played)
	}
}

func TestBeeperPlaysTone(t *testing.T) {
	var out bytes.Buffer
	var got []beep.Streamer
	b := newBeeper(&out, nil,
		func() error { return nil },
		func(s beep.Streamer) { got = append(got, s) })

	b.Alert()
	if len(got) != 1 {
		t.Fatalf("played %d tones, want 1", len(got))
	}
	if out.Len() != 0 {
		t.Errorf("bell written although the speaker works: %q", out.String())
	}
}

func TestToneLength(t *testing.T) {
	s, err := Tone(880, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}

	want := sampleRate.N(50 * time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("tone has %d samples, want %d", total, want)
	}
}

func TestToneRejectsInvalidFrequency(t *testing.T) {
	if _, err := Tone(sampleRate.N(time.Second), time.Millisecond); err == nil {
		t.Error("expected error for a frequency at the sample rate")
	}
}

func TestMute(t *testing.T) {
	Mute{}.Alert()
}
