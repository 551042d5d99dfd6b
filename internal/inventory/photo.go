package inventory

import (
	"encoding/base64"
	"strings"

	"traceability-backend/internal/validate"

	"github.com/gabriel-vasile/mimetype"
)

// PhotoDataURI turns an uploaded image into the data URI stored on lots.
// The bytes are sniffed, not decoded.
func PhotoDataURI(data []byte, maxBytes int) (string, error) {
	if len(data) == 0 {
		return "", validate.Errorf("photo is empty")
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return "", validate.Errorf("photo exceeds %d bytes", maxBytes)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", validate.Errorf("photo must be an image, got %s", mime.String())
	}

	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
