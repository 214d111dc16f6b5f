package transmission

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// defaultTorrentFields is the complete catalog of known torrent-get fields,
// requested whenever the caller does not narrow the query.
var defaultTorrentFields = []string{
	"id", "activityDate", "addedDate", "bandwidthPriority", "comment",
	"corruptEver", "creator", "dateCreated", "desiredAvailable", "doneDate",
	"downloadDir", "downloadedEver", "downloadLimit", "downloadLimited",
	"error", "errorString", "eta", "etaIdle", "files", "fileStats",
	"hashString", "haveUnchecked", "haveValid", "honorsSessionLimits",
	"isFinished", "isPrivate", "isStalled", "labels", "leftUntilDone",
	"magnetLink", "manualAnnounceTime", "maxConnectedPeers",
	"metadataPercentComplete", "name", "peer-limit", "peers",
	"peersConnected", "peersFrom", "peersGettingFromUs", "peersSendingToUs",
	"percentDone", "pieces", "pieceCount", "pieceSize", "priorities",
	"queuePosition", "rateDownload", "rateUpload", "recheckProgress",
	"secondsDownloading", "secondsSeeding", "seedIdleLimit", "seedIdleMode",
	"seedRatioLimit", "seedRatioMode", "sizeWhenDone", "startDate", "status",
	"trackers", "trackerStats", "totalSize", "torrentFile", "uploadedEver",
	"uploadLimit", "uploadLimited", "uploadRatio", "wanted", "webseeds",
	"webseedsSendingToUs",
}

// Shared helper for the action-style methods that only carry a selector.
func (c *Client) torrentAction(ctx context.Context, method string, sel IDs) error {
	args := map[string]any{}
	sel.apply(args)

	if err := c.do(ctx, method, args, nil); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	return nil
}

// TorrentStart starts the selected torrents, honoring the download queue.
func (c *Client) TorrentStart(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "torrent-start", sel)
}

// TorrentStartNow starts the selected torrents, bypassing the queue.
func (c *Client) TorrentStartNow(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "torrent-start-now", sel)
}

// TorrentStop stops the selected torrents.
func (c *Client) TorrentStop(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "torrent-stop", sel)
}

// TorrentVerify queues the selected torrents for local data verification.
func (c *Client) TorrentVerify(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "torrent-verify", sel)
}

// TorrentReannounce re-announces the selected torrents to their trackers.
func (c *Client) TorrentReannounce(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "torrent-reannounce", sel)
}

// QueueMoveTop moves the selected torrents to the top of the queue.
func (c *Client) QueueMoveTop(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "queue-move-top", sel)
}

// QueueMoveUp moves the selected torrents up one queue position.
func (c *Client) QueueMoveUp(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "queue-move-up", sel)
}

// QueueMoveDown moves the selected torrents down one queue position.
func (c *Client) QueueMoveDown(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "queue-move-down", sel)
}

// QueueMoveBottom moves the selected torrents to the bottom of the queue.
func (c *Client) QueueMoveBottom(ctx context.Context, sel IDs) error {
	return c.torrentAction(ctx, "queue-move-bottom", sel)
}

type torrentGetResult struct {
	Torrents []Torrent `json:"torrents"`
	Removed  []int64   `json:"removed"`
}

// TorrentGet fetches the given fields for the selected torrents. An empty
// fields slice requests every known field.
func (c *Client) TorrentGet(ctx context.Context, sel IDs, fields []string) ([]Torrent, error) {
	torrents, _, err := c.torrentGet(ctx, sel, fields)
	return torrents, err
}

// TorrentGetRecentlyActive fetches recently active torrents plus the IDs of
// torrents removed since the previous recently-active query.
func (c *Client) TorrentGetRecentlyActive(ctx context.Context, fields []string) ([]Torrent, []int64, error) {
	return c.torrentGet(ctx, RecentlyActive(), fields)
}

func (c *Client) torrentGet(ctx context.Context, sel IDs, fields []string) ([]Torrent, []int64, error) {
	if len(fields) == 0 {
		fields = defaultTorrentFields
	}

	args := map[string]any{"fields": fields}
	sel.apply(args)

	var result torrentGetResult
	if err := c.do(ctx, "torrent-get", args, &result); err != nil {
		return nil, nil, fmt.Errorf("failed to get torrents: %w", err)
	}

	return result.Torrents, result.Removed, nil
}

// TorrentAdd adds a torrent from a file path/URL/magnet URI or from inline
// base64 metainfo. The daemon's torrent-added and torrent-duplicate results
// both decode into the same NewTorrent shape; nil is returned when the
// response names neither.
func (c *Client) TorrentAdd(ctx context.Context, args TorrentAddArgs) (*NewTorrent, error) {
	if args.Filename == "" && args.Metainfo == "" {
		return nil, &ArgumentError{Message: "torrent-add requires a filename or metainfo"}
	}
	if args.Filename != "" && args.Metainfo != "" {
		return nil, &ArgumentError{Message: "torrent-add accepts either a filename or metainfo, not both"}
	}

	var raw json.RawMessage
	if err := c.do(ctx, "torrent-add", args, &raw); err != nil {
		return nil, fmt.Errorf("failed to add torrent: %w", err)
	}

	// Added takes priority over duplicate; the daemon never sends both.
	for _, key := range []string{"torrent-added", "torrent-duplicate"} {
		if v := gjson.GetBytes(raw, key); v.Exists() {
			var torrent NewTorrent
			if err := json.Unmarshal([]byte(v.Raw), &torrent); err != nil {
				return nil, fmt.Errorf("failed to decode added torrent: %w", err)
			}
			return &torrent, nil
		}
	}

	return nil, nil
}

// TorrentRemove removes the selected torrents, optionally deleting their
// downloaded data.
func (c *Client) TorrentRemove(ctx context.Context, sel IDs, deleteLocalData bool) error {
	args := map[string]any{"delete-local-data": deleteLocalData}
	sel.apply(args)

	if err := c.do(ctx, "torrent-remove", args, nil); err != nil {
		return fmt.Errorf("failed to remove torrents: %w", err)
	}

	return nil
}

// TorrentSet applies the given settings to the selected torrents.
func (c *Client) TorrentSet(ctx context.Context, sel IDs, args TorrentSetArgs) error {
	bag, err := flatten(args)
	if err != nil {
		return fmt.Errorf("failed to encode torrent settings: %w", err)
	}
	sel.apply(bag)

	if err := c.do(ctx, "torrent-set", bag, nil); err != nil {
		return fmt.Errorf("failed to set torrent settings: %w", err)
	}

	return nil
}

// TorrentSetLocation moves the selected torrents to a new download location.
// When move is true the daemon relocates existing data; otherwise it looks
// for the data at the new location.
func (c *Client) TorrentSetLocation(ctx context.Context, sel IDs, location string, move bool) error {
	args := map[string]any{"location": location, "move": move}
	sel.apply(args)

	if err := c.do(ctx, "torrent-set-location", args, nil); err != nil {
		return fmt.Errorf("failed to set torrent location: %w", err)
	}

	return nil
}

// TorrentRenamePath renames a file or directory inside a torrent. The
// selector must match exactly one torrent.
func (c *Client) TorrentRenamePath(ctx context.Context, sel IDs, path, name string) (*RenamedPath, error) {
	args := map[string]any{"path": path, "name": name}
	sel.apply(args)

	var renamed RenamedPath
	if err := c.do(ctx, "torrent-rename-path", args, &renamed); err != nil {
		return nil, fmt.Errorf("failed to rename path: %w", err)
	}

	return &renamed, nil
}

// SessionGet fetches the daemon's session settings.
func (c *Client) SessionGet(ctx context.Context) (*SessionInfo, error) {
	var info SessionInfo
	if err := c.do(ctx, "session-get", nil, &info); err != nil {
		return nil, fmt.Errorf("failed to get session settings: %w", err)
	}

	return &info, nil
}

// SessionSet updates the daemon's session settings. Only the fields set in
// args are changed.
func (c *Client) SessionSet(ctx context.Context, args SessionArgs) error {
	if err := c.do(ctx, "session-set", args, nil); err != nil {
		return fmt.Errorf("failed to set session settings: %w", err)
	}

	return nil
}

// SessionStats fetches current and cumulative transfer statistics.
func (c *Client) SessionStats(ctx context.Context) (*SessionStats, error) {
	var stats SessionStats
	if err := c.do(ctx, "session-stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get session stats: %w", err)
	}

	return &stats, nil
}

// SessionClose asks the daemon to shut the session down.
func (c *Client) SessionClose(ctx context.Context) error {
	if err := c.do(ctx, "session-close", nil, nil); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	return nil
}

// BlocklistUpdate triggers a blocklist refresh and returns the new size.
func (c *Client) BlocklistUpdate(ctx context.Context) (int64, error) {
	var result struct {
		BlocklistSize int64 `json:"blocklist-size"`
	}
	if err := c.do(ctx, "blocklist-update", nil, &result); err != nil {
		return 0, fmt.Errorf("failed to update blocklist: %w", err)
	}

	return result.BlocklistSize, nil
}

// PortTest reports whether the daemon's peer port is reachable from outside.
func (c *Client) PortTest(ctx context.Context) (bool, error) {
	var result struct {
		PortIsOpen bool `json:"port-is-open"`
	}
	if err := c.do(ctx, "port-test", nil, &result); err != nil {
		return false, fmt.Errorf("failed to test port: %w", err)
	}

	return result.PortIsOpen, nil
}

// FreeSpace reports how much space is available in the given directory.
func (c *Client) FreeSpace(ctx context.Context, path string) (int64, error) {
	var result struct {
		Path      string `json:"path"`
		SizeBytes int64  `json:"size-bytes"`
	}
	if err := c.do(ctx, "free-space", map[string]any{"path": path}, &result); err != nil {
		return 0, fmt.Errorf("failed to get free space: %w", err)
	}

	return result.SizeBytes, nil
}

// flatten turns a typed argument struct into a bag the selector can be
// merged into.
func flatten(v any) (map[string]any, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	bag := map[string]any{}
	if err := json.Unmarshal(encoded, &bag); err != nil {
		return nil, err
	}

	return bag, nil
}
