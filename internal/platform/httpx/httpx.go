package httpx

import (
	"encoding/json"
	"io"
)

// DecodeJSON decodes a response body into out, tolerating trailing noise.
func DecodeJSON(r io.Reader, out any) error {
	return json.NewDecoder(r).Decode(out)
}

// Drain consumes and closes a response body so the underlying
// connection can be reused.
func Drain(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
