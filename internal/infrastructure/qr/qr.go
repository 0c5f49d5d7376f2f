package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 300

type Encoder struct{}

func New() *Encoder { return &Encoder{} }

// Encode renders the verification URL as a base64 PNG data URL, ready to
// embed straight into an <img> tag or API payload.
func (e *Encoder) Encode(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, imageSize)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
