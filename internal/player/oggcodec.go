package player

import (
	"encoding/binary"
	"errors"

	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"
)

var (
	errUnknownOggCodec     = errors.New("ogg: unknown codec (not Opus or Vorbis)")
	errInvalidOpusHead     = errors.New("opus: invalid OpusHead")
	errUnsupportedOpus     = errors.New("opus: unsupported channel layout")
	errInvalidVorbisHeader = errors.New("vorbis: invalid identification header")
	errVorbisNotReady      = errors.New("vorbis: headers incomplete")
)

// opusSampleRate is the rate every Opus stream decodes to.
const opusSampleRate = 48000

// opusMaxFrame is 120ms at 48kHz, the longest Opus packet.
const opusMaxFrame = 5760

// oggCodec decodes the packets of one Ogg logical stream.
type oggCodec interface {
	SampleRate() int
	Channels() int
	// PreSkip is the number of leading samples per channel to drop.
	PreSkip() int
	// AddHeader consumes a header packet and reports whether audio
	// packets can be decoded.
	AddHeader(packet []byte) (ready bool, err error)
	// Decode returns interleaved samples; the slice is reused.
	Decode(packet []byte) ([]float32, error)
}

func detectOggCodec(first []byte) (oggCodec, error) {
	switch {
	case len(first) >= 8 && string(first[:8]) == "OpusHead":
		return newOpusCodec(first)
	case len(first) >= 7 && first[0] == 0x01 && string(first[1:7]) == "vorbis":
		return newVorbisCodec(first)
	}
	return nil, errUnknownOggCodec
}

type opusCodec struct {
	dec      *opus.Decoder
	channels int
	preSkip  int
	pcm      []float32
}

// newOpusCodec parses OpusHead: version at 8, channels at 9, pre-skip at 10.
func newOpusCodec(head []byte) (*opusCodec, error) {
	if len(head) < 19 || head[8]&0xf0 != 0 {
		return nil, errInvalidOpusHead
	}
	channels := int(head[9])
	if channels < 1 || channels > 2 {
		return nil, errUnsupportedOpus
	}
	dec, err := opus.NewDecoder(opusSampleRate, channels)
	if err != nil {
		return nil, err
	}
	return &opusCodec{
		dec:      dec,
		channels: channels,
		preSkip:  int(binary.LittleEndian.Uint16(head[10:12])),
		pcm:      make([]float32, opusMaxFrame*channels),
	}, nil
}

func (c *opusCodec) SampleRate() int { return opusSampleRate }
func (c *opusCodec) Channels() int   { return c.channels }
func (c *opusCodec) PreSkip() int    { return c.preSkip }

// AddHeader consumes OpusTags, the only header after OpusHead.
func (c *opusCodec) AddHeader(_ []byte) (bool, error) {
	return true, nil
}

func (c *opusCodec) Decode(packet []byte) ([]float32, error) {
	n, err := c.dec.DecodeFloat32(packet, c.pcm)
	if err != nil {
		return nil, err
	}
	return c.pcm[:n*c.channels], nil
}

// vorbisCodec buffers the identification, comment and setup headers
// before building the decoder.
type vorbisCodec struct {
	dec        *vorbis.Decoder
	channels   int
	sampleRate int
	headers    [][]byte
}

// newVorbisCodec parses the identification header: version at 7,
// channels at 11, rate at 12.
func newVorbisCodec(ident []byte) (*vorbisCodec, error) {
	if len(ident) < 16 || binary.LittleEndian.Uint32(ident[7:11]) != 0 {
		return nil, errInvalidVorbisHeader
	}
	return &vorbisCodec{
		channels:   int(ident[11]),
		sampleRate: int(binary.LittleEndian.Uint32(ident[12:16])),
		headers:    [][]byte{append([]byte(nil), ident...)},
	}, nil
}

func (c *vorbisCodec) SampleRate() int { return c.sampleRate }
func (c *vorbisCodec) Channels() int   { return c.channels }
func (c *vorbisCodec) PreSkip() int    { return 0 }

func (c *vorbisCodec) AddHeader(packet []byte) (bool, error) {
	if c.dec != nil {
		return true, nil
	}
	c.headers = append(c.headers, append([]byte(nil), packet...))
	if len(c.headers) < 3 {
		return false, nil
	}
	dec := &vorbis.Decoder{}
	for _, h := range c.headers {
		if err := dec.ReadHeader(h); err != nil {
			return false, err
		}
	}
	c.dec, c.headers = dec, nil
	return true, nil
}

func (c *vorbisCodec) Decode(packet []byte) ([]float32, error) {
	if c.dec == nil {
		return nil, errVorbisNotReady
	}
	return c.dec.Decode(packet)
}
