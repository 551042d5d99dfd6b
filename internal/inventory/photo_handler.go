package inventory

import (
	"io"

	"github.com/gofiber/fiber/v2"
)

type PhotoResponse struct {
	Photo string `json:"photo"`
}

// POST /api/photos (multipart, field "photo")
func UploadPhotoHandler(maxBytes int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("photo")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "photo file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "photo could not be read")
		}
		defer f.Close()

		// one extra byte so oversize uploads are detected
		data, err := io.ReadAll(io.LimitReader(f, int64(maxBytes)+1))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "photo could not be read")
		}

		uri, err := PhotoDataURI(data, maxBytes)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(PhotoResponse{Photo: uri})
	}
}
