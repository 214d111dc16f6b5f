package transmission

import "encoding/json"

// IDs selects which torrents an operation applies to. The daemon accepts
// three shapes under the same "ids" argument: an array of numeric IDs, an
// array of hash strings, or the literal string "recently-active". The zero
// value selects every torrent (the argument is omitted from the request).
type IDs struct {
	ids    []int64
	hashes []string
	recent bool
}

// ByID selects torrents by their numeric IDs.
func ByID(ids ...int64) IDs {
	return IDs{ids: ids}
}

// ByHash selects torrents by their info-hash strings.
func ByHash(hashes ...string) IDs {
	return IDs{hashes: hashes}
}

// RecentlyActive selects torrents with recent activity. With TorrentGet it
// also makes the daemon report torrents removed since the last such query.
func RecentlyActive() IDs {
	return IDs{recent: true}
}

// All selects every torrent known to the daemon.
func All() IDs {
	return IDs{}
}

func (s IDs) isAll() bool {
	return !s.recent && len(s.ids) == 0 && len(s.hashes) == 0
}

// apply stores the selector into an argument bag, honoring the
// omit-means-all convention.
func (s IDs) apply(args map[string]any) {
	if !s.isAll() {
		args["ids"] = s
	}
}

func (s IDs) MarshalJSON() ([]byte, error) {
	switch {
	case s.recent:
		return json.Marshal("recently-active")
	case len(s.hashes) > 0:
		return json.Marshal(s.hashes)
	default:
		return json.Marshal(s.ids)
	}
}
