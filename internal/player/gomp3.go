package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// mp3Source adapts llehouerou/go-mp3, which yields interleaved 16-bit
// stereo PCM, to a beep stream.
type mp3Source struct {
	dec    *mp3.Decoder
	closer io.Closer
	err    error
	buf    []byte
}

func decodeGoMP3(rc io.ReadCloser) (source, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	rate := dec.SampleRate()
	if rate == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Source{dec: dec, closer: rc, buf: make([]byte, 8192)}, format, nil
}

const mp3FrameBytes = 4

func (s *mp3Source) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	want := len(samples) * mp3FrameBytes
	if len(s.buf) < want {
		s.buf = make([]byte, want)
	}

	got, err := io.ReadFull(s.dec, s.buf[:want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}

	n := got / mp3FrameBytes
	for i := range n {
		off := i * mp3FrameBytes
		l := int16(binary.LittleEndian.Uint16(s.buf[off:]))   //nolint:gosec // PCM sample
		r := int16(binary.LittleEndian.Uint16(s.buf[off+2:])) //nolint:gosec // PCM sample
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}
	return n, n > 0
}

func (s *mp3Source) Err() error { return s.err }

func (s *mp3Source) Len() int {
	return int(max(s.dec.SampleCount(), 0))
}

func (s *mp3Source) Position() int { return int(s.dec.SamplePosition()) }

func (s *mp3Source) Close() error { return s.closer.Close() }
