package audiot

// This file parses AdLib sound chunks and converts them to IMF event
// streams. An AdLib sound is a fixed 23-byte instrument header plus one
// frequency byte per 140 Hz tick; zero means key off.

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// OPL2 register bases used when emitting IMF events.
const (
	adlibRegDummy    = 0x00
	adlibRegSplit    = 0x08
	adlibRegChar     = 0x20
	adlibRegScale    = 0x40
	adlibRegAttack   = 0x60
	adlibRegSustain  = 0x80
	adlibRegFreqL    = 0xA0
	adlibRegFreqH    = 0xB0
	adlibRegFeedback = 0xC0
	adlibRegEffects  = 0xBD
	adlibRegWave     = 0xE0
)

// Per-channel operator offsets.
var (
	adlibModulators = [9]uint8{0, 1, 2, 8, 9, 10, 16, 17, 18}
	adlibCarriers   = [9]uint8{3, 4, 5, 11, 12, 13, 19, 20, 21}
)

// keyOnDelayCycles is the IMF delay attached to key on/off events when
// converting a sound effect, mirroring the original exporter.
const keyOnDelayCycles = 5

// AdLibSoundHeader is the instrument definition preceding the note
// stream. The wire layout has three unused padding bytes between Mode
// and Block.
type AdLibSoundHeader struct {
	Length   uint32
	Priority uint16

	ModulatorChar    uint8
	CarrierChar      uint8
	ModulatorScale   uint8
	CarrierScale     uint8
	ModulatorAttack  uint8
	CarrierAttack    uint8
	ModulatorSustain uint8
	CarrierSustain   uint8
	ModulatorWave    uint8
	CarrierWave      uint8
	Conn             uint8
	Voice            uint8
	Mode             uint8

	Block uint8
}

// adLibSoundHeaderSize is the stored header size including padding.
const adLibSoundHeaderSize = 4 + 2 + 13 + 3 + 1

type adLibSoundHeaderWire struct {
	Length   uint32
	Priority uint16
	Regs     [13]uint8
	Padding  [3]uint8
	Block    uint8
}

// AdLibSound is one parsed AdLib sound effect.
type AdLibSound struct {
	Header AdLibSoundHeader
	// Notes holds one frequency-low byte per tick; zero is key off.
	Notes []byte
}

// ParseAdLibSound decodes an AUDIOT AdLib chunk.
func ParseAdLibSound(chunk []byte) (*AdLibSound, error) {
	if len(chunk) < adLibSoundHeaderSize {
		return nil, fmt.Errorf("adlib chunk too small: got %d, want >= %d", len(chunk), adLibSoundHeaderSize)
	}
	var wire adLibSoundHeaderWire
	if err := binary.Read(bytes.NewReader(chunk), binary.LittleEndian, &wire); err != nil {
		return nil, fmt.Errorf("could not read adlib header: %v", err)
	}

	h := AdLibSoundHeader{
		Length:   wire.Length,
		Priority: wire.Priority,

		ModulatorChar:    wire.Regs[0],
		CarrierChar:      wire.Regs[1],
		ModulatorScale:   wire.Regs[2],
		CarrierScale:     wire.Regs[3],
		ModulatorAttack:  wire.Regs[4],
		CarrierAttack:    wire.Regs[5],
		ModulatorSustain: wire.Regs[6],
		CarrierSustain:   wire.Regs[7],
		ModulatorWave:    wire.Regs[8],
		CarrierWave:      wire.Regs[9],
		Conn:             wire.Regs[10],
		Voice:            wire.Regs[11],
		Mode:             wire.Regs[12],

		Block: wire.Block,
	}

	notes := chunk[adLibSoundHeaderSize:]
	if int(h.Length) < len(notes) {
		notes = notes[:h.Length]
	}
	return &AdLibSound{Header: h, Notes: notes}, nil
}

// setupEvents emits the instrument programming prelude for an IMF
// conversion on the passed OPL2 channel.
func (h *AdLibSoundHeader) setupEvents(channel int, oldMuseCompatibility bool) []IMFEvent {
	modulator := adlibModulators[channel]
	carrier := adlibCarriers[channel]

	feedback := uint8(0)
	if oldMuseCompatibility {
		feedback = h.Conn
	}

	return []IMFEvent{
		{adlibRegDummy, 0x00, 0},
		{adlibRegEffects, 0x00, 0},
		{adlibRegSplit, 0x00, 0},

		{adlibRegFreqH + modulator, 0x00, 0},
		{adlibRegChar + modulator, h.ModulatorChar, 0},
		{adlibRegScale + modulator, h.ModulatorScale, 0},
		{adlibRegAttack + modulator, h.ModulatorAttack, 0},
		{adlibRegSustain + modulator, h.ModulatorSustain, 0},
		{adlibRegWave + modulator, h.ModulatorWave, 0},

		{adlibRegChar + carrier, h.CarrierChar, 0},
		{adlibRegScale + carrier, h.CarrierScale, 0},
		{adlibRegAttack + carrier, h.CarrierAttack, 0},
		{adlibRegSustain + carrier, h.CarrierSustain, 0},
		{adlibRegWave + carrier, h.CarrierWave, 0},

		{adlibRegFeedback, feedback, 0},
	}
}

// ToIMF converts the sound effect into a self-contained IMF chunk
// playing on the passed OPL2 channel (0 to 8).
func (s *AdLibSound) ToIMF(channel int, oldMuseCompatibility bool) ([]byte, error) {
	if channel < 0 || channel >= len(adlibModulators) {
		return nil, fmt.Errorf("invalid adlib channel: %d", channel)
	}

	events := s.Header.setupEvents(channel, oldMuseCompatibility)

	if len(s.Notes) > 0 {
		modulator := adlibModulators[channel]
		freqL := adlibRegFreqL + modulator
		freqH := adlibRegFreqH + modulator
		block := (s.Header.Block&7)<<2 | 0x20

		for _, note := range s.Notes {
			if note != 0 {
				events = append(events,
					IMFEvent{freqL, note, 0},
					IMFEvent{freqH, block, keyOnDelayCycles})
			} else {
				events = append(events, IMFEvent{freqH, 0x00, keyOnDelayCycles})
			}
		}
		events = append(events, IMFEvent{freqH, 0x00, keyOnDelayCycles})
	}

	return (&Music{Events: events}).ToIMF(), nil
}
