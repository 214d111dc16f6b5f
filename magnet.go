package transmission

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// MagnetLink holds the components of a parsed magnet URI.
type MagnetLink struct {
	Hash        string
	DisplayName string
	Trackers    []string
	ExactLength string
	ExactSource string
	Keywords    string
}

// ParseMagnetLink extracts information from a magnet URI, such as the
// magnetLink field of a torrent or a link destined for TorrentAdd.
func ParseMagnetLink(magnetURI string) (*MagnetLink, error) {
	if !strings.HasPrefix(magnetURI, "magnet:?") {
		return nil, errors.New("invalid magnet link format")
	}

	queryString := strings.TrimPrefix(magnetURI, "magnet:?")
	values, err := url.ParseQuery(queryString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse magnet link query")
	}

	magnet := &MagnetLink{}

	// The exact topic carries the info-hash, usually with a urn:btih: prefix.
	if hash := values.Get("xt"); hash != "" {
		magnet.Hash = strings.TrimPrefix(hash, "urn:btih:")
	}

	magnet.DisplayName = values.Get("dn")
	magnet.Trackers = values["tr"]
	magnet.ExactLength = values.Get("xl")
	magnet.ExactSource = values.Get("xs")
	magnet.Keywords = values.Get("kt")

	return magnet, nil
}
