/*
Package transmission provides a typed client for the Transmission daemon's
JSON-RPC control API.

Highlights:
  - Transparent session negotiation: the 409 + X-Transmission-Session-Id
    handshake is handled internally, including mid-session token expiry
  - Monotonic request tagging for request/response correlation
  - Typed errors distinguishing argument, protocol, session and transport
    failures
  - One selector type covering numeric IDs, info-hashes and recently-active

Quick start:

	import (
	    "context"
	    "log"

	    "github.com/jfxdev/go-transmission"
	)

	func main() {
	    client, err := transmission.New(transmission.Config{
	        URL:      "http://localhost:9091/transmission/rpc",
	        Username: "admin",
	        Password: "password",
	    })
	    if err != nil {
	        log.Fatal(err)
	    }

	    torrents, err := client.TorrentGet(context.Background(), transmission.All(), nil)
	    if err != nil {
	        log.Fatal(err)
	    }
	    log.Printf("torrents: %d", len(torrents))
	}
*/
package transmission
