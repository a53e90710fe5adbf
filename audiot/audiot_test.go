package audiot

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildTestArchive assembles an AUDIOT/AUDIOHED pair holding the passed
// chunks back to back. AUDIOHED carries one offset per chunk; the reader
// supplies the data size as the final bound itself.
func buildTestArchive(chunks ...[]byte) (data, head *bytes.Reader) {
	var body bytes.Buffer
	var offsets bytes.Buffer

	for _, chunk := range chunks {
		binary.Write(&offsets, binary.LittleEndian, uint32(body.Len()))
		body.Write(chunk)
	}

	return bytes.NewReader(body.Bytes()), bytes.NewReader(offsets.Bytes())
}

func adlibChunk(notes ...byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(len(notes))) // length
	binary.Write(&buf, binary.LittleEndian, uint16(7))          // priority
	buf.Write([]byte{
		0x23, 0x21, // char
		0x40, 0x00, // scale
		0xF0, 0xF0, // attack
		0xF0, 0xF0, // sustain
		0x00, 0x00, // wave
		0x0E,       // conn
		0x00,       // voice
		0x00,       // mode
		0, 0, 0,    // padding
		0x02,       // block
	})
	buf.Write(notes)
	return buf.Bytes()
}

func musicChunk(events ...IMFEvent) []byte {
	return (&Music{Events: events}).ToIMF()
}

func TestNew(t *testing.T) {
	data, head := buildTestArchive([]byte{142, 142, 0}, adlibChunk(0x57), musicChunk())
	a, err := New(data, head)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := a.ChunkCount(), 3; got != want {
		t.Errorf("ChunkCount() = %d, want %d", got, want)
	}
}

func TestChunkOutOfRange(t *testing.T) {
	data, head := buildTestArchive([]byte{1, 2, 3})
	a, err := New(data, head)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Chunk(1); err == nil {
		t.Errorf("Chunk(1) did not fail on a 1-chunk archive")
	}
	if _, err := a.Chunk(-1); err == nil {
		t.Errorf("Chunk(-1) did not fail")
	}
}

func TestBuzzerSamples(t *testing.T) {
	// At 14000 Hz each 1/140 s tick is exactly 100 samples, and a
	// divider of 142 programs 140.04 Hz, whose period rounds to 100
	// samples as well: one tick is one full square wave period.
	s := &BuzzerSound{Dividers: []byte{142}}
	samples := s.Samples(14000)

	if got, want := len(samples), 100; got != want {
		t.Fatalf("len(samples) = %d, want %d", got, want)
	}
	for i, sample := range samples {
		want := byte(0xFF)
		if i >= 50 {
			want = 0x00
		}
		if sample != want {
			t.Errorf("samples[%d] = %#02x, want %#02x", i, sample, want)
		}
	}
}

func TestBuzzerSilence(t *testing.T) {
	s := &BuzzerSound{Dividers: []byte{0, 0}}
	samples := s.Samples(14000)

	if got, want := len(samples), 200; got != want {
		t.Fatalf("len(samples) = %d, want %d", got, want)
	}
	for i, sample := range samples {
		if sample != 0x80 {
			t.Errorf("samples[%d] = %#02x, want 0x80", i, sample)
		}
	}
}

func TestParseAdLibSound(t *testing.T) {
	s, err := ParseAdLibSound(adlibChunk(0x57, 0x00, 0x62))
	if err != nil {
		t.Fatalf("ParseAdLibSound: %v", err)
	}
	if got, want := s.Header.Length, uint32(3); got != want {
		t.Errorf("Header.Length = %d, want %d", got, want)
	}
	if got, want := s.Header.Priority, uint16(7); got != want {
		t.Errorf("Header.Priority = %d, want %d", got, want)
	}
	if got, want := s.Header.ModulatorChar, uint8(0x23); got != want {
		t.Errorf("Header.ModulatorChar = %#02x, want %#02x", got, want)
	}
	if got, want := s.Header.CarrierAttack, uint8(0xF0); got != want {
		t.Errorf("Header.CarrierAttack = %#02x, want %#02x", got, want)
	}
	if got, want := s.Header.Block, uint8(2); got != want {
		t.Errorf("Header.Block = %d, want %d", got, want)
	}
	if !bytes.Equal(s.Notes, []byte{0x57, 0x00, 0x62}) {
		t.Errorf("Notes = %v, want [0x57 0x00 0x62]", s.Notes)
	}
}

func TestParseAdLibSoundTruncated(t *testing.T) {
	if _, err := ParseAdLibSound(make([]byte, 10)); err == nil {
		t.Errorf("ParseAdLibSound did not fail on a short chunk")
	}
}

func TestAdLibToIMF(t *testing.T) {
	s, err := ParseAdLibSound(adlibChunk(0x57, 0x00))
	if err != nil {
		t.Fatalf("ParseAdLibSound: %v", err)
	}
	chunk, err := s.ToIMF(0, false)
	if err != nil {
		t.Fatalf("ToIMF: %v", err)
	}

	m, err := ParseMusic(chunk)
	if err != nil {
		t.Fatalf("ParseMusic of ToIMF output: %v", err)
	}
	// 15 setup writes, then note on (two writes), key off, final key off.
	if got, want := len(m.Events), 19; got != want {
		t.Fatalf("len(Events) = %d, want %d", got, want)
	}

	noteOn := m.Events[15]
	if got, want := noteOn, (IMFEvent{adlibRegFreqL, 0x57, 0}); got != want {
		t.Errorf("note on freq event = %+v, want %+v", got, want)
	}
	keyOn := m.Events[16]
	if got, want := keyOn, (IMFEvent{adlibRegFreqH, (2 << 2) | 0x20, keyOnDelayCycles}); got != want {
		t.Errorf("key on event = %+v, want %+v", got, want)
	}
	keyOff := m.Events[17]
	if got, want := keyOff, (IMFEvent{adlibRegFreqH, 0x00, keyOnDelayCycles}); got != want {
		t.Errorf("key off event = %+v, want %+v", got, want)
	}
}

func TestAdLibToIMFBadChannel(t *testing.T) {
	s, err := ParseAdLibSound(adlibChunk())
	if err != nil {
		t.Fatalf("ParseAdLibSound: %v", err)
	}
	if _, err := s.ToIMF(9, false); err == nil {
		t.Errorf("ToIMF(9, false) did not fail")
	}
}

func TestMusicRoundTrip(t *testing.T) {
	events := []IMFEvent{
		{adlibRegEffects, 0x20, 0},
		{adlibRegFreqL, 0x81, 0},
		{adlibRegFreqH, 0x2A, 35},
		{adlibRegFreqH, 0x0A, 70},
	}
	m, err := ParseMusic(musicChunk(events...))
	if err != nil {
		t.Fatalf("ParseMusic: %v", err)
	}
	if got, want := len(m.Events), len(events); got != want {
		t.Fatalf("len(Events) = %d, want %d", got, want)
	}
	for i := range events {
		if m.Events[i] != events[i] {
			t.Errorf("Events[%d] = %+v, want %+v", i, m.Events[i], events[i])
		}
	}
}

func TestParseMusicBadLength(t *testing.T) {
	chunk := []byte{0x03, 0x00, 0xBD, 0x20, 0x00}
	if _, err := ParseMusic(chunk); err == nil {
		t.Errorf("ParseMusic did not fail on a length not divisible by 4")
	}
	if _, err := ParseMusic([]byte{0x08, 0x00, 0, 0, 0, 0}); err == nil {
		t.Errorf("ParseMusic did not fail on a truncated event stream")
	}
}

func TestArchiveSoundAccess(t *testing.T) {
	data, head := buildTestArchive(
		[]byte{142, 142},
		adlibChunk(0x57),
		musicChunk(IMFEvent{adlibRegEffects, 0x20, 0}),
	)
	a, err := New(data, head)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	buzzer, err := a.BuzzerSound(0)
	if err != nil {
		t.Fatalf("BuzzerSound(0): %v", err)
	}
	if got, want := len(buzzer.Dividers), 2; got != want {
		t.Errorf("len(Dividers) = %d, want %d", got, want)
	}

	adlib, err := a.AdLibSound(1)
	if err != nil {
		t.Fatalf("AdLibSound(1): %v", err)
	}
	if got, want := len(adlib.Notes), 1; got != want {
		t.Errorf("len(Notes) = %d, want %d", got, want)
	}

	music, err := a.Music(2)
	if err != nil {
		t.Fatalf("Music(2): %v", err)
	}
	if got, want := len(music.Events), 1; got != want {
		t.Errorf("len(Events) = %d, want %d", got, want)
	}
}
