package asset

import (
	"bytes"
	"path"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// Metadata holds track information for the status line.
type Metadata struct {
	Title  string
	Artist string
}

// ReadMetadata pulls ID3v2 tags out of the payload, falling back to the
// base filename when no usable tag exists.
func ReadMetadata(name string, data []byte) Metadata {
	tag, err := id3v2.ParseReader(bytes.NewReader(data), id3v2.Options{Parse: true})
	if err == nil {
		m := Metadata{
			Title:  strings.TrimSpace(tag.Title()),
			Artist: strings.TrimSpace(tag.Artist()),
		}
		if m.Title != "" {
			return m
		}
	}

	base := path.Base(name)
	return Metadata{Title: strings.TrimSuffix(base, path.Ext(base))}
}
