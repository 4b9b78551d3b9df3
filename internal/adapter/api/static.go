package api

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// setupStatic serves the browser frontend from dir. Every route reports a
// 404 when its file is missing, except "/", which falls back to the API
// info document.
func setupStatic(app *fiber.App, dir string, h *SupportHandler) {
	index := filepath.Join(dir, "index.html")

	app.Get("/", func(c *fiber.Ctx) error {
		if fileExists(index) {
			return c.SendFile(index)
		}
		info := h.apiInfo()
		info["note"] = "Frontend no encontrado"
		return c.JSON(info)
	})

	app.Static("/static", dir)

	app.Get("/frontend", func(c *fiber.Ctx) error {
		if !fileExists(index) {
			return fiber.NewError(fiber.StatusNotFound, "Frontend no encontrado")
		}
		return c.SendFile(index)
	})

	app.Get("/frontend/:filename", func(c *fiber.Ctx) error {
		return sendAsset(c, dir, c.Params("filename"), "Archivo no encontrado")
	})

	app.Get("/app.js", func(c *fiber.Ctx) error {
		return sendAsset(c, dir, "app.js", "app.js no encontrado")
	})
	app.Get("/styles.css", func(c *fiber.Ctx) error {
		return sendAsset(c, dir, "styles.css", "styles.css no encontrado")
	})
}

// sendAsset only serves plain file names directly under dir.
func sendAsset(c *fiber.Ctx, dir, name, notFound string) error {
	if name == "" || name != filepath.Base(name) || name == ".." {
		return fiber.NewError(fiber.StatusNotFound, notFound)
	}
	path := filepath.Join(dir, name)
	if !fileExists(path) {
		return fiber.NewError(fiber.StatusNotFound, notFound)
	}
	return c.SendFile(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
