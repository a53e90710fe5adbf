package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWrite(t *testing.T) {
	samples := []byte{0x80, 0xFF, 0x00, 0x80}
	var buf bytes.Buffer
	if err := Write(&buf, 7042, samples); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.Bytes()
	if got, want := len(out), 44+len(samples); got != want {
		t.Fatalf("output length = %d, want %d", got, want)
	}
	if got := string(out[:4]); got != "RIFF" {
		t.Errorf("chunk ID = %q, want RIFF", got)
	}
	if got := string(out[8:12]); got != "WAVE" {
		t.Errorf("format = %q, want WAVE", got)
	}
	if got, want := binary.LittleEndian.Uint32(out[4:]), uint32(36+len(samples)); got != want {
		t.Errorf("chunk size = %d, want %d", got, want)
	}
	if got, want := binary.LittleEndian.Uint32(out[24:]), uint32(7042); got != want {
		t.Errorf("sample rate = %d, want %d", got, want)
	}
	if got, want := binary.LittleEndian.Uint16(out[34:]), uint16(8); got != want {
		t.Errorf("bits per sample = %d, want %d", got, want)
	}
	if got, want := binary.LittleEndian.Uint32(out[40:]), uint32(len(samples)); got != want {
		t.Errorf("data size = %d, want %d", got, want)
	}
	if !bytes.Equal(out[44:], samples) {
		t.Errorf("data = %v, want %v", out[44:], samples)
	}
}

func TestWriteBadRate(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 0, nil); err == nil {
		t.Errorf("Write with a zero rate did not fail")
	}
}
