package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is returned for extensions no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported format")

// source is a decoded track. beep.StreamSeekCloser satisfies it; the
// player never seeks, so decoders only need to report position.
type source interface {
	beep.Streamer
	Len() int
	Position() int
	Close() error
}

// openTrack opens path and picks a decoder by extension. The returned
// source owns the file.
func openTrack(path string) (source, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3", ".flac", ".wav", ".ogg", ".oga", ".opus", ".m4a", ".mp4":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	src, format, err := decode(ext, f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	if format.SampleRate <= 0 {
		src.Close()
		return nil, beep.Format{}, errors.New("invalid sample rate")
	}
	return src, format, nil
}

func decode(ext string, f *os.File) (source, beep.Format, error) {
	switch ext {
	case ".mp3":
		return decodeGoMP3(f)
	case ".flac":
		// some taggers prepend ID3v2 to FLAC files
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".ogg", ".oga", ".opus":
		return decodeOgg(f)
	default:
		return decodeM4A(f)
	}
}

// skipID3v2 positions r after a leading ID3v2 tag, or at 0 if none.
func skipID3v2(r io.ReadSeeker) error {
	var header [10]byte
	n, err := io.ReadFull(r, header[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	if n < len(header) || string(header[:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}
	// tag size is a 28-bit syncsafe integer
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(int64(len(header))+size, io.SeekStart)
	return err
}
