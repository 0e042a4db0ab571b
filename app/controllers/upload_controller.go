package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ecofinds/ecofinds/pkg/auth"
	"github.com/ecofinds/ecofinds/pkg/logger"
	"github.com/ecofinds/ecofinds/pkg/response"
	"github.com/ecofinds/ecofinds/pkg/storage"
)

// maxUploadBytes caps listing images at 5 MiB.
const maxUploadBytes = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadController stores listing images and hands back the reference
// to put in a product's image field.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Store handles POST /api/uploads. Expects a multipart form with an
// "image" file field.
func (c *UploadController) Store(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserID(r.Context()); !ok {
		response.Unauthorized(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.ValidationError(w, map[string]string{"image": "The image field is required."})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		response.ValidationError(w, map[string]string{"image": "The image must be a jpg, jpeg, png, gif or webp file."})
		return
	}

	name := randomName() + ext
	path := "images/" + name
	if err := storage.PutStream(path, file); err != nil {
		logger.WithCtx(r.Context()).Error("upload failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	response.Created(w, map[string]string{
		"image": path,
		"url":   storage.URL(path),
	})
}

func randomName() string {
	b := make([]byte, 16)
	rand.Read(b) //nolint:errcheck
	return hex.EncodeToString(b)
}
