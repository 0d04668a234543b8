package player

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildOggPage lays out a page with the given lacing values and body.
func buildOggPage(serial uint32, granule int64, continued bool, lacing []byte, body []byte) []byte {
	var hdr [oggHeaderSize]byte
	copy(hdr[:4], "OggS")
	if continued {
		hdr[5] = oggFlagContinued
	}
	binary.LittleEndian.PutUint64(hdr[6:14], uint64(granule)) //nolint:gosec // test data
	binary.LittleEndian.PutUint32(hdr[14:18], serial)
	hdr[26] = byte(len(lacing))
	out := append(hdr[:], lacing...)
	return append(out, body...)
}

func TestReadOggPage(t *testing.T) {
	raw := buildOggPage(7, 960, false, []byte{3, 2}, []byte("abcde"))
	page, err := readOggPage(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, int64(960), page.granule)
	assert.Equal(t, uint32(7), page.serial)
	assert.False(t, page.continued)
	assert.Equal(t, []byte("abcde"), page.body)
}

func TestReadOggPage_BadMagic(t *testing.T) {
	raw := buildOggPage(1, 0, false, []byte{1}, []byte("x"))
	copy(raw, "Nope")
	_, err := readOggPage(bytes.NewReader(raw))
	assert.ErrorIs(t, err, errInvalidOggMagic)
}

func TestOggPackets_SplitsAndJoins(t *testing.T) {
	long := bytes.Repeat([]byte{'L'}, 255+10)

	var stream []byte
	// page 1: packet "ab", then the first 255 bytes of the long packet
	stream = append(stream, buildOggPage(1, 0, false, []byte{2, 255}, append([]byte("ab"), long[:255]...))...)
	// page 2: the long packet's tail, then "cd"
	stream = append(stream, buildOggPage(1, 100, true, []byte{10, 2}, append(long[255:], []byte("cd")...))...)
	// another logical stream is ignored
	stream = append(stream, buildOggPage(2, 0, false, []byte{2}, []byte("zz"))...)

	pk := newOggPackets(bytes.NewReader(stream))
	var got [][]byte
	for {
		p, err := pk.next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, p)
	}

	require.Len(t, got, 3)
	assert.Equal(t, []byte("ab"), got[0])
	assert.Equal(t, long, got[1])
	assert.Equal(t, []byte("cd"), got[2])
}

func TestLastGranule(t *testing.T) {
	var stream []byte
	stream = append(stream, buildOggPage(1, 0, false, []byte{1}, []byte("a"))...)
	stream = append(stream, buildOggPage(1, 4800, false, []byte{1}, []byte("b"))...)
	// a page that ends no packet carries granule -1
	stream = append(stream, buildOggPage(1, -1, false, []byte{255}, bytes.Repeat([]byte{'c'}, 255))...)

	r := bytes.NewReader(stream)
	g, err := lastGranule(r)
	require.NoError(t, err)
	assert.Equal(t, int64(4800), g)

	pos, _ := r.Seek(0, io.SeekCurrent)
	assert.Equal(t, int64(0), pos)
}

func TestDetectOggCodec(t *testing.T) {
	_, err := detectOggCodec([]byte("garbage header"))
	assert.ErrorIs(t, err, errUnknownOggCodec)

	head := make([]byte, 19)
	copy(head, "OpusHead")
	head[8] = 1
	head[9] = 2
	binary.LittleEndian.PutUint16(head[10:12], 312)
	codec, err := detectOggCodec(head)
	require.NoError(t, err)
	assert.Equal(t, opusSampleRate, codec.SampleRate())
	assert.Equal(t, 2, codec.Channels())
	assert.Equal(t, 312, codec.PreSkip())

	ready, err := codec.AddHeader([]byte("OpusTags"))
	require.NoError(t, err)
	assert.True(t, ready)

	ident := make([]byte, 30)
	ident[0] = 0x01
	copy(ident[1:], "vorbis")
	ident[11] = 1
	binary.LittleEndian.PutUint32(ident[12:16], 44100)
	vc, err := detectOggCodec(ident)
	require.NoError(t, err)
	assert.Equal(t, 44100, vc.SampleRate())
	assert.Equal(t, 1, vc.Channels())
	assert.Equal(t, 0, vc.PreSkip())
}
