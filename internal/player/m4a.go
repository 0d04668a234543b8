package player

import (
	"context"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

// alacFrameSize is the ALAC default frames per packet.
const alacFrameSize = 4096

// m4aSource decodes AAC (faad2) or ALAC samples out of an MP4 container.
type m4aSource struct {
	box      *m4a.Reader
	closer   io.Closer
	codec    m4a.CodecType
	aac      *faad2.Decoder
	alac     *alac.Alac
	bits     int
	channels int
	rate     int
	total    int
	next     int
	pos      int
	pcm      [][2]float64
	pcmPos   int
	err      error
}

func decodeM4A(rsc io.ReadSeekCloser) (source, beep.Format, error) {
	box, err := m4a.Open(rsc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	rate := int(box.SampleRate())
	s := &m4aSource{
		box:      box,
		closer:   rsc,
		codec:    box.Codec(),
		bits:     int(box.SampleSize()),
		channels: int(box.Channels()),
		rate:     rate,
		total:    int(box.Duration().Seconds() * float64(rate)),
	}
	if s.channels < 1 {
		return nil, beep.Format{}, errors.New("m4a: no audio channels")
	}

	precision := 2
	switch s.codec {
	case m4a.CodecAAC:
		ctx := context.Background()
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, err
		}
		if err := dec.Init(ctx, box.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, err
		}
		s.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  rate,
			SampleSize:  s.bits,
			NumChannels: s.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, err
		}
		s.alac = dec
		if s.bits == 24 {
			precision = 3
		}
	default:
		return nil, beep.Format{}, errors.New("m4a: unsupported codec")
	}

	return s, beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   precision,
	}, nil
}

func (s *m4aSource) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	n := 0
	for n < len(samples) {
		if s.pcmPos < len(s.pcm) {
			c := copy(samples[n:], s.pcm[s.pcmPos:])
			s.pcmPos += c
			s.pos += c
			n += c
			continue
		}
		if s.next >= s.box.SampleCount() || !s.decodeNext() {
			break
		}
	}
	return n, n > 0
}

func (s *m4aSource) decodeNext() bool {
	data, err := s.box.ReadSample(s.next)
	if err != nil {
		s.err = err
		return false
	}
	s.next++

	switch {
	case s.aac != nil:
		pcm, err := s.aac.Decode(context.Background(), data)
		if err != nil {
			s.err = err
			return false
		}
		s.pcm = int16Frames(pcm, s.channels)
	case s.alac != nil:
		s.pcm = alacFrames(s.alac.Decode(data), s.bits, s.channels)
	}
	s.pcmPos = 0
	return true
}

// int16Frames converts interleaved PCM to stereo frames, duplicating mono.
func int16Frames(pcm []int16, channels int) [][2]float64 {
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		l := float64(pcm[i*channels]) / 32768
		r := l
		if channels > 1 {
			r = float64(pcm[i*channels+1]) / 32768
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// alacFrames converts little-endian 16 or 24-bit PCM bytes to stereo frames.
func alacFrames(data []byte, bits, channels int) [][2]float64 {
	width := 2
	scale := 32768.0
	if bits == 24 {
		width, scale = 3, 8388608
	}
	stride := width * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		l := float64(pcmSample(data[off:], width)) / scale
		r := l
		if channels > 1 {
			r = float64(pcmSample(data[off+width:], width)) / scale
		}
		frames[i] = [2]float64{l, r}
	}
	return frames
}

// pcmSample reads a signed little-endian sample of width bytes.
func pcmSample(b []byte, width int) int32 {
	if width == 2 {
		return int32(int16(uint16(b[0]) | uint16(b[1])<<8))
	}
	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	if v&0x800000 != 0 {
		v |= ^0xFFFFFF
	}
	return v
}

func (s *m4aSource) Err() error    { return s.err }
func (s *m4aSource) Len() int      { return s.total }
func (s *m4aSource) Position() int { return s.pos }

func (s *m4aSource) Close() error {
	if s.aac != nil {
		s.aac.Close(context.Background())
	}
	return s.closer.Close()
}
