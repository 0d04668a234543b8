package player

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
)

// oggSource decodes Opus or Vorbis packets from an Ogg file.
type oggSource struct {
	packets  *oggPackets
	codec    oggCodec
	closer   io.Closer
	pcm      []float32
	pcmPos   int
	skip     int
	pos      int
	total    int
	err      error
	finished bool
}

func decodeOgg(rsc io.ReadSeekCloser) (source, beep.Format, error) {
	granule, err := lastGranule(rsc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	packets := newOggPackets(rsc)
	first, err := packets.next()
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("ogg: read identification header: %w", err)
	}
	codec, err := detectOggCodec(first)
	if err != nil {
		return nil, beep.Format{}, err
	}
	for ready := false; !ready; {
		hdr, err := packets.next()
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("ogg: read headers: %w", err)
		}
		if ready, err = codec.AddHeader(hdr); err != nil {
			return nil, beep.Format{}, err
		}
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(codec.SampleRate()),
		NumChannels: min(codec.Channels(), 2),
		Precision:   2,
	}
	return &oggSource{
		packets: packets,
		codec:   codec,
		closer:  rsc,
		skip:    codec.PreSkip(),
		total:   max(int(granule)-codec.PreSkip(), 0),
	}, format, nil
}

func (s *oggSource) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	ch := s.codec.Channels()
	n := 0
	for n < len(samples) {
		if s.pcmPos >= len(s.pcm) {
			if s.finished || !s.refill() {
				break
			}
			continue
		}
		if s.skip > 0 {
			s.skip--
			s.pcmPos += ch
			continue
		}
		l := float64(s.pcm[s.pcmPos])
		r := l
		if ch > 1 {
			r = float64(s.pcm[s.pcmPos+1])
		}
		samples[n] = [2]float64{l, r}
		s.pcmPos += ch
		s.pos++
		n++
	}
	return n, n > 0
}

// refill decodes the next audio packet. Corrupt packets are skipped.
func (s *oggSource) refill() bool {
	for {
		pkt, err := s.packets.next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			s.finished = true
			return false
		}
		if len(pkt) == 0 {
			continue
		}
		pcm, err := s.codec.Decode(pkt)
		if err != nil || len(pcm) == 0 {
			continue
		}
		s.pcm, s.pcmPos = pcm, 0
		return true
	}
}

func (s *oggSource) Err() error    { return s.err }
func (s *oggSource) Len() int      { return s.total }
func (s *oggSource) Position() int { return s.pos }
func (s *oggSource) Close() error  { return s.closer.Close() }
