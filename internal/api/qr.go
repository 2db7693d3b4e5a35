package api

import (
    "bytes"
    "image/png"

    qrcode "github.com/skip2/go-qrcode"
)

// sharePNG encodes text as a QR PNG and verifies the payload decodes before
// it goes on the wire.
func sharePNG(text string, size int) ([]byte, error) {
    b, err := qrcode.Encode(text, qrcode.Medium, size)
    if err != nil {
        return nil, err
    }
    if _, err := png.Decode(bytes.NewReader(b)); err != nil {
        return nil, err
    }
    return b, nil
}
