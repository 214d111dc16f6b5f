package transmission

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jfxdev/go-transmission/request"
)

// SessionHeader is the header carrying the anti-CSRF session ID in both
// directions: sent on every request, and handed back by the daemon on a 409.
const SessionHeader = "X-Transmission-Session-Id"

type rpcRequest struct {
	Method    string `json:"method"`
	Arguments any    `json:"arguments,omitempty"`
	Tag       int64  `json:"tag"`
}

type rpcResponse struct {
	Result    string          `json:"result"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Tag       int64           `json:"tag"`
}

// do sends one RPC call and decodes its result payload into out (skipped when
// out is nil or the payload is empty).
//
// The request is tagged with the next value of the client-wide counter. A 409
// reply means the session ID went stale: the refreshed ID from the response
// header is adopted and the same request (same tag) is sent once more. A
// second 409, or a 409 without the header, is unrecoverable.
func (c *Client) do(ctx context.Context, method string, args any, out any) error {
	c.mu.Lock()
	c.tag++
	req := rpcRequest{Method: method, Arguments: args, Tag: c.tag}
	c.mu.Unlock()

	// Encoded once so the retry reuses the exact same envelope.
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s request", method)
	}

	resp, err := c.post(ctx, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusConflict {
		token := resp.Header.Get(SessionHeader)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if token == "" {
			return &SessionError{Message: "missing session token"}
		}

		c.mu.Lock()
		c.sessionID = token
		c.mu.Unlock()

		c.logger.Debug("session ID refreshed, retrying request",
			zap.String("method", method),
			zap.Int64("tag", req.Tag))

		resp, err = c.post(ctx, body)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusConflict {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return &SessionError{Message: "session token rejected after refresh"}
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &TransportError{Status: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", method)
	}

	if envelope.Result != "success" {
		return &ProtocolError{Message: envelope.Result}
	}

	// Tag echo is advisory only.
	if envelope.Tag != 0 && envelope.Tag != req.Tag {
		c.logger.Debug("response tag does not match request",
			zap.Int64("sent", req.Tag),
			zap.Int64("received", envelope.Tag))
	}

	if out == nil || len(envelope.Arguments) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Arguments, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s arguments", method)
	}

	return nil
}

// post performs a single HTTP attempt against the RPC endpoint.
func (c *Client) post(ctx context.Context, body []byte) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Reason: "rate limiter wait aborted", Err: err}
		}
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		SessionHeader:  c.SessionID(),
	}
	if c.authHeader != "" {
		headers["Authorization"] = c.authHeader
	}

	resp, err := request.Do(http.MethodPost, c.config.URL,
		request.WithContext(ctx),
		request.WithBody(bytes.NewReader(body)),
		request.WithHeaders(headers),
		request.WithClient(c.client),
	)
	if err != nil {
		return nil, classifyNetworkErr(err)
	}

	return resp, nil
}
