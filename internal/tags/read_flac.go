package tags

import (
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

func readFLACComments(path string) (*Tag, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmt, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		return &Tag{
			Path:        path,
			Title:       comment(cmt, flacvorbis.FIELD_TITLE),
			Artist:      comment(cmt, flacvorbis.FIELD_ARTIST),
			Album:       comment(cmt, flacvorbis.FIELD_ALBUM),
			Genre:       comment(cmt, flacvorbis.FIELD_GENRE),
			TrackNumber: parseTrackNumber(comment(cmt, flacvorbis.FIELD_TRACKNUMBER)),
		}, nil
	}
	return nil, ErrNoTags
}

func comment(c *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	vals, err := c.Get(field)
	if err != nil || len(vals) == 0 {
		return ""
	}
	return vals[0]
}
