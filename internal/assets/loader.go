// Package assets loads the images and fonts a render needs: illustrations
// and logos supplied as URLs or base64 payloads, and the brand typefaces.
package assets

import (
    "bytes"
    "context"
    "encoding/base64"
    "fmt"
    "image"
    "io"
    "net/http"
    "strings"
    "time"

    "github.com/disintegration/imaging"
)

// Loader decodes illustration and logo references into drawable bitmaps.
// A reference is either an http(s) URL, a data: URI, or a bare base64
// PNG/JPEG payload.
type Loader struct {
    client *http.Client
}

// NewLoader returns a loader with a 10 second fetch timeout.
func NewLoader() *Loader {
    return &Loader{client: &http.Client{Timeout: 10 * time.Second}}
}

// Load decodes ref into an image. Callers treat an error as "skip this
// visual element"; the render itself never fails on a bad asset.
func (l *Loader) Load(ctx context.Context, ref string) (image.Image, error) {
    switch {
    case ref == "":
        return nil, fmt.Errorf("empty image reference")
    case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
        return l.fetch(ctx, ref)
    case strings.HasPrefix(ref, "data:"):
        comma := strings.Index(ref, ",")
        if comma < 0 {
            return nil, fmt.Errorf("malformed data URI")
        }
        return decodeBase64(ref[comma+1:])
    default:
        return decodeBase64(ref)
    }
}

func (l *Loader) fetch(ctx context.Context, url string) (image.Image, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
    if err != nil {
        return nil, err
    }
    resp, err := l.client.Do(req)
    if err != nil {
        return nil, err
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
    }
    body, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, err
    }
    img, err := imaging.Decode(bytes.NewReader(body))
    if err != nil {
        return nil, fmt.Errorf("decoding %s: %w", url, err)
    }
    return img, nil
}

func decodeBase64(payload string) (image.Image, error) {
    raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
    if err != nil {
        return nil, fmt.Errorf("decoding base64 payload: %w", err)
    }
    img, err := imaging.Decode(bytes.NewReader(raw))
    if err != nil {
        return nil, fmt.Errorf("decoding image payload: %w", err)
    }
    return img, nil
}
