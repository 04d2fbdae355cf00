package handler

import (
	_ "embed"

	"github.com/gofiber/fiber/v3"
)

//go:embed gallery.html
var galleryHTML string

// GalleryPage serves the embedded gallery frontend at GET /.
func GalleryPage() fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(galleryHTML)
	}
}
