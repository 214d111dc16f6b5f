package transmission

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestTorrentAddValidation(t *testing.T) {
	var requests int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		req := decodeRequest(t, r)
		writeResult(w, "success", "", req.Tag)
	})

	testCases := []struct {
		name string
		args TorrentAddArgs
	}{
		{"neither source", TorrentAddArgs{}},
		{"both sources", TorrentAddArgs{Filename: "a.torrent", Metainfo: "ZGF0YQ=="}},
	}

	for _, tc := range testCases {
		_, err := client.TorrentAdd(context.Background(), tc.args)

		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Errorf("%s: expected ArgumentError, got %v", tc.name, err)
		}
	}

	if requests != 0 {
		t.Errorf("Validation failures should not reach the network, got %d requests", requests)
	}
}

func TestTorrentAddDecodesAdded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		writeResult(w, "success",
			`{"torrent-added":{"id":7,"name":"debian.iso","hashString":"deadbeef"}}`, req.Tag)
	})

	torrent, err := client.TorrentAdd(context.Background(), TorrentAddArgs{Filename: "debian.torrent"})
	if err != nil {
		t.Fatalf("TorrentAdd failed: %v", err)
	}

	expected := &NewTorrent{ID: 7, Name: "debian.iso", HashString: "deadbeef"}
	if !reflect.DeepEqual(torrent, expected) {
		t.Errorf("Expected %+v, got %+v", expected, torrent)
	}
}

func TestTorrentAddDuplicateSameShape(t *testing.T) {
	payloads := []string{
		`{"torrent-added":{"id":7,"name":"debian.iso","hashString":"deadbeef"}}`,
		`{"torrent-duplicate":{"id":7,"name":"debian.iso","hashString":"deadbeef"}}`,
	}

	var results []*NewTorrent
	for _, payload := range payloads {
		payload := payload
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			req := decodeRequest(t, r)
			writeResult(w, "success", payload, req.Tag)
		})

		torrent, err := client.TorrentAdd(context.Background(), TorrentAddArgs{Filename: "debian.torrent"})
		if err != nil {
			t.Fatalf("TorrentAdd failed: %v", err)
		}
		results = append(results, torrent)
	}

	if !reflect.DeepEqual(results[0], results[1]) {
		t.Errorf("Added and duplicate payloads should decode identically: %+v vs %+v",
			results[0], results[1])
	}
}

func TestTorrentAddEmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		writeResult(w, "success", `{}`, req.Tag)
	})

	torrent, err := client.TorrentAdd(context.Background(), TorrentAddArgs{Filename: "debian.torrent"})
	if err != nil {
		t.Fatalf("TorrentAdd failed: %v", err)
	}
	if torrent != nil {
		t.Errorf("Expected nil result when the payload names no torrent, got %+v", torrent)
	}
}

func TestTorrentGetDefaultFields(t *testing.T) {
	var fields []any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		args := req.Arguments.(map[string]any)
		fields = args["fields"].([]any)
		writeResult(w, "success", `{"torrents":[{"id":1,"name":"debian.iso"}]}`, req.Tag)
	})

	torrents, err := client.TorrentGet(context.Background(), All(), nil)
	if err != nil {
		t.Fatalf("TorrentGet failed: %v", err)
	}

	if len(fields) != len(defaultTorrentFields) {
		t.Errorf("Expected the full field catalog (%d fields), got %d",
			len(defaultTorrentFields), len(fields))
	}

	if len(torrents) != 1 || torrents[0].Name != "debian.iso" {
		t.Errorf("Unexpected torrents: %+v", torrents)
	}
}

func TestTorrentGetOmitsIDsForAll(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		args := req.Arguments.(map[string]any)
		if _, ok := args["ids"]; ok {
			t.Error("The all-torrents selector should omit the ids argument")
		}
		writeResult(w, "success", `{"torrents":[]}`, req.Tag)
	})

	if _, err := client.TorrentGet(context.Background(), All(), []string{"id"}); err != nil {
		t.Fatalf("TorrentGet failed: %v", err)
	}
}

func TestTorrentGetRecentlyActive(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		args := req.Arguments.(map[string]any)
		if args["ids"] != "recently-active" {
			t.Errorf("Expected the recently-active sentinel, got %v", args["ids"])
		}
		writeResult(w, "success", `{"torrents":[{"id":3}],"removed":[5,7]}`, req.Tag)
	})

	torrents, removed, err := client.TorrentGetRecentlyActive(context.Background(), []string{"id"})
	if err != nil {
		t.Fatalf("TorrentGetRecentlyActive failed: %v", err)
	}

	if len(torrents) != 1 || torrents[0].ID != 3 {
		t.Errorf("Unexpected torrents: %+v", torrents)
	}
	if !reflect.DeepEqual(removed, []int64{5, 7}) {
		t.Errorf("Expected removed IDs [5 7], got %v", removed)
	}
}

func TestTorrentRemove(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		if req.Method != "torrent-remove" {
			t.Errorf("Expected torrent-remove, got %s", req.Method)
		}
		args := req.Arguments.(map[string]any)
		if args["delete-local-data"] != true {
			t.Errorf("Expected delete-local-data true, got %v", args["delete-local-data"])
		}
		if !reflect.DeepEqual(args["ids"], []any{float64(4)}) {
			t.Errorf("Unexpected ids: %v", args["ids"])
		}
		writeResult(w, "success", "", req.Tag)
	})

	if err := client.TorrentRemove(context.Background(), ByID(4), true); err != nil {
		t.Fatalf("TorrentRemove failed: %v", err)
	}
}

func TestTorrentSetMergesSelector(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		args := req.Arguments.(map[string]any)

		if !reflect.DeepEqual(args["ids"], []any{float64(1), float64(2)}) {
			t.Errorf("Unexpected ids: %v", args["ids"])
		}
		if args["downloadLimit"] != float64(100) {
			t.Errorf("Expected downloadLimit 100, got %v", args["downloadLimit"])
		}
		if _, ok := args["uploadLimit"]; ok {
			t.Error("Unset fields should be omitted")
		}
		writeResult(w, "success", "", req.Tag)
	})

	limit := int64(100)
	err := client.TorrentSet(context.Background(), ByID(1, 2), TorrentSetArgs{DownloadLimit: &limit})
	if err != nil {
		t.Fatalf("TorrentSet failed: %v", err)
	}
}

func TestTorrentActionsUseSelector(t *testing.T) {
	methods := map[string]func(context.Context, IDs) error{}

	var lastMethod string
	var lastIDs any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		lastMethod = req.Method
		lastIDs = req.Arguments.(map[string]any)["ids"]
		writeResult(w, "success", "", req.Tag)
	})

	methods["torrent-start"] = client.TorrentStart
	methods["torrent-start-now"] = client.TorrentStartNow
	methods["torrent-stop"] = client.TorrentStop
	methods["torrent-verify"] = client.TorrentVerify
	methods["torrent-reannounce"] = client.TorrentReannounce
	methods["queue-move-top"] = client.QueueMoveTop
	methods["queue-move-up"] = client.QueueMoveUp
	methods["queue-move-down"] = client.QueueMoveDown
	methods["queue-move-bottom"] = client.QueueMoveBottom

	for method, call := range methods {
		if err := call(context.Background(), ByHash("deadbeef")); err != nil {
			t.Fatalf("%s failed: %v", method, err)
		}
		if lastMethod != method {
			t.Errorf("Expected method %s on the wire, got %s", method, lastMethod)
		}
		if !reflect.DeepEqual(lastIDs, []any{"deadbeef"}) {
			t.Errorf("%s: unexpected ids %v", method, lastIDs)
		}
	}
}

func TestTorrentRenamePath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		args := req.Arguments.(map[string]any)
		if args["path"] != "old/name" || args["name"] != "new-name" {
			t.Errorf("Unexpected rename arguments: %v", args)
		}
		writeResult(w, "success", `{"id":9,"path":"old/name","name":"new-name"}`, req.Tag)
	})

	renamed, err := client.TorrentRenamePath(context.Background(), ByID(9), "old/name", "new-name")
	if err != nil {
		t.Fatalf("TorrentRenamePath failed: %v", err)
	}

	if renamed.ID != 9 || renamed.Name != "new-name" {
		t.Errorf("Unexpected result: %+v", renamed)
	}
}

func TestSessionGet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		writeResult(w, "success",
			`{"version":"4.0.5","rpc-version":17,"download-dir":"/downloads","speed-limit-down-enabled":true}`,
			req.Tag)
	})

	info, err := client.SessionGet(context.Background())
	if err != nil {
		t.Fatalf("SessionGet failed: %v", err)
	}

	if info.Version != "4.0.5" || info.RPCVersion != 17 {
		t.Errorf("Unexpected session info: %+v", info)
	}
	if info.DownloadDir != "/downloads" || !info.SpeedLimitDownEnabled {
		t.Errorf("Hyphenated keys not decoded: %+v", info)
	}
}

func TestSessionSetOmitsUnsetFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		args := req.Arguments.(map[string]any)
		if len(args) != 2 {
			t.Errorf("Expected exactly the 2 set fields, got %v", args)
		}
		if args["speed-limit-down"] != float64(500) || args["speed-limit-down-enabled"] != true {
			t.Errorf("Unexpected arguments: %v", args)
		}
		writeResult(w, "success", "", req.Tag)
	})

	limit := int64(500)
	enabled := true
	err := client.SessionSet(context.Background(), SessionArgs{
		SpeedLimitDown:        &limit,
		SpeedLimitDownEnabled: &enabled,
	})
	if err != nil {
		t.Fatalf("SessionSet failed: %v", err)
	}
}

func TestSessionStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		writeResult(w, "success",
			`{"activeTorrentCount":2,"downloadSpeed":1024,"cumulative-stats":{"downloadedBytes":4096}}`,
			req.Tag)
	})

	stats, err := client.SessionStats(context.Background())
	if err != nil {
		t.Fatalf("SessionStats failed: %v", err)
	}

	if stats.ActiveTorrentCount != 2 || stats.DownloadSpeed != 1024 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.CumulativeStats.DownloadedBytes != 4096 {
		t.Errorf("Unexpected cumulative stats: %+v", stats.CumulativeStats)
	}
}

func TestSmallResultMethods(t *testing.T) {
	responses := map[string]string{
		"blocklist-update": `{"blocklist-size":393003}`,
		"port-test":        `{"port-is-open":true}`,
		"free-space":       `{"path":"/downloads","size-bytes":1099511627776}`,
		"session-close":    "",
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		writeResult(w, "success", responses[req.Method], req.Tag)
	})
	ctx := context.Background()

	size, err := client.BlocklistUpdate(ctx)
	if err != nil || size != 393003 {
		t.Errorf("BlocklistUpdate: size %d, err %v", size, err)
	}

	open, err := client.PortTest(ctx)
	if err != nil || !open {
		t.Errorf("PortTest: open %v, err %v", open, err)
	}

	free, err := client.FreeSpace(ctx, "/downloads")
	if err != nil || free != 1099511627776 {
		t.Errorf("FreeSpace: bytes %d, err %v", free, err)
	}

	if err := client.SessionClose(ctx); err != nil {
		t.Errorf("SessionClose failed: %v", err)
	}
}

func TestMethodErrorsSurfaceTyped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, "invalid torrent-set arguments", "", 1)
	}))
	defer server.Close()

	client, err := New(Config{URL: server.URL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	err = client.TorrentStart(context.Background(), ByID(1))

	var protocolErr *ProtocolError
	if !errors.As(err, &protocolErr) {
		t.Fatalf("Wrapped method errors should keep their type, got %v", err)
	}
}
