package controller

import (
	"github.com/gofiber/fiber/v2"

	"lecats_backend/internals/helpers/storage"
)

// FileController melayani download file excuse yang sudah tersimpan.
type FileController struct {
	Store storage.BlobStore
}

func NewFileController(store storage.BlobStore) *FileController {
	return &FileController{Store: store}
}

func (ctl *FileController) Download(c *fiber.Ctx) error {
	name := storage.SanitizeFilename(c.Params("filename"))
	path, err := ctl.Store.Path(name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	}
	return c.SendFile(path)
}
