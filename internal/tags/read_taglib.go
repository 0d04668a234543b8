package tags

import "go.senan.xyz/taglib"

// readTaglib covers Ogg and MP4 containers that dhowden/tag rejects,
// e.g. files muxed by ffmpeg.
func readTaglib(path string) (*Tag, error) {
	raw, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrNoTags
	}
	artist := first(raw, taglib.Artist, taglib.AlbumArtist)
	return &Tag{
		Path:        path,
		Title:       first(raw, taglib.Title),
		Artist:      artist,
		Album:       first(raw, taglib.Album),
		Genre:       first(raw, taglib.Genre),
		TrackNumber: parseTrackNumber(first(raw, taglib.TrackNumber)),
	}, nil
}
