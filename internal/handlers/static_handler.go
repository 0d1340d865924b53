package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// StaticHandler serves the bundled frontend entry point for unmatched paths.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

func (h *StaticHandler) Dir() string {
	return h.dir
}

func (h *StaticHandler) Index(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.dir, "index.html"))
}
