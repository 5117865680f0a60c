package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Client wraps an http.Client with the header and decoding conventions the
// quote providers share. One request per call; any retry policy belongs to
// the caller.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("status %d", e.Code) }

// DoJSON performs the request and decodes a JSON body into out. The request
// carries its own context.
func (c *Client) DoJSON(req *http.Request, out any) error {
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
