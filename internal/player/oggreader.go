package player

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var (
	errInvalidOggMagic   = errors.New("ogg: invalid capture pattern")
	errInvalidOggVersion = errors.New("ogg: unsupported version")
)

const (
	oggHeaderSize    = 27
	oggFlagContinued = 0x01
	oggTailScan      = 64 << 10
)

var oggMagic = []byte("OggS")

// oggPage is one parsed Ogg page.
type oggPage struct {
	granule   int64
	serial    uint32
	continued bool
	segments  []uint8
	body      []byte
}

func readOggPage(r io.Reader) (*oggPage, error) {
	var hdr [oggHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if !bytes.Equal(hdr[0:4], oggMagic) {
		return nil, errInvalidOggMagic
	}
	if hdr[4] != 0 {
		return nil, errInvalidOggVersion
	}

	p := &oggPage{
		granule:   int64(binary.LittleEndian.Uint64(hdr[6:14])), //nolint:gosec // -1 means no packet ends here
		serial:    binary.LittleEndian.Uint32(hdr[14:18]),
		continued: hdr[5]&oggFlagContinued != 0,
		segments:  make([]uint8, hdr[26]),
	}
	if _, err := io.ReadFull(r, p.segments); err != nil {
		return nil, err
	}
	size := 0
	for _, s := range p.segments {
		size += int(s)
	}
	p.body = make([]byte, size)
	if _, err := io.ReadFull(r, p.body); err != nil {
		return nil, err
	}
	return p, nil
}

// oggPackets reassembles the packets of the first logical stream of r.
// A segment shorter than 255 bytes ends a packet; a packet can span pages.
type oggPackets struct {
	r       io.Reader
	serial  uint32
	started bool
	pending [][]byte
	partial []byte
}

func newOggPackets(r io.Reader) *oggPackets {
	return &oggPackets{r: r}
}

// next returns the next complete packet, or io.EOF.
func (o *oggPackets) next() ([]byte, error) {
	for len(o.pending) == 0 {
		page, err := readOggPage(o.r)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		if !o.started {
			o.serial, o.started = page.serial, true
		} else if page.serial != o.serial {
			continue
		}
		o.split(page)
	}
	pkt := o.pending[0]
	o.pending = o.pending[1:]
	return pkt, nil
}

func (o *oggPackets) split(page *oggPage) {
	cur := o.partial
	if !page.continued {
		cur = nil
	}
	off := 0
	for _, seg := range page.segments {
		cur = append(cur, page.body[off:off+int(seg)]...)
		off += int(seg)
		if seg < 255 {
			o.pending = append(o.pending, cur)
			cur = nil
		}
	}
	o.partial = cur
}

// lastGranule finds the granule position of the last page that ends a
// packet by scanning the tail of rs. rs is rewound to the start.
func lastGranule(rs io.ReadSeeker) (int64, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	n := min(size, oggTailScan)
	if _, err := rs.Seek(size-n, io.SeekStart); err != nil {
		return 0, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rs, buf); err != nil {
		return 0, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	for i := len(buf) - oggHeaderSize; i >= 0; i-- {
		if !bytes.Equal(buf[i:i+4], oggMagic) || buf[i+4] != 0 {
			continue
		}
		g := int64(binary.LittleEndian.Uint64(buf[i+6 : i+14])) //nolint:gosec // checked below
		if g >= 0 {
			return g, nil
		}
	}
	return 0, nil
}
