package qr

import (
	"encoding/base64"
	"ticketing-service/internal/pkg/errors"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Generator encodes a guest URL into an inline image payload. Implemented
// by the PNG encoder below; mocked in usecase tests.
type Generator interface {
	Encode(url string) (string, error)
}

type generator struct{}

func NewGenerator() Generator {
	return &generator{}
}

// Encode renders the URL as a PNG QR code and returns it as a data URL,
// matching what the guest page embeds directly into an <img> tag.
func (g *generator) Encode(url string) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, imageSize)
	if err != nil {
		return "", errors.DependencyError("error encoding qr code")
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
