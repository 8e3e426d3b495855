package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/essentia-tours/internal/httperr"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/storage"
	"github.com/BruksfildServices01/essentia-tours/internal/metrics"
)

const maxUploadBytes = 10 << 20

type UploadHandler struct {
	store storage.Store
}

func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload stores the multipart field "file". Images are re-encoded as WebP;
// anything else is kept as sent.
func (h *UploadHandler) Upload(c *gin.Context) {

	// --------------------------------------------------
	// 1️⃣ Arquivo
	// --------------------------------------------------
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file_required", "Nenhum arquivo enviado.")
		return
	}
	if fh.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo muito grande.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "file_required", "Nenhum arquivo enviado.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil || len(raw) == 0 {
		httperr.BadRequest(c, "file_required", "Nenhum arquivo enviado.")
		return
	}

	// --------------------------------------------------
	// 2️⃣ Otimização
	// --------------------------------------------------
	prefix := fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.NewString())

	data, key, contentType := raw, "", ""
	optimized, err := storage.OptimizeImage(raw)
	switch {
	case err == nil:
		data = optimized
		key = prefix + ".webp"
		contentType = "image/webp"
	case errors.Is(err, storage.ErrNotImage):
		key = prefix + strings.ToLower(filepath.Ext(fh.Filename))
		contentType = fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(raw)
		}
	default:
		log.Printf("[Upload] optimize error: %v", err)
		httperr.Internal(c, "upload_failed", "Erro ao processar arquivo.")
		return
	}

	// --------------------------------------------------
	// 3️⃣ Armazenamento
	// --------------------------------------------------
	url, err := h.store.Put(c.Request.Context(), key, contentType, data)
	if err != nil {
		log.Printf("[Upload] store error: %v", err)
		httperr.Internal(c, "upload_failed", "Erro ao salvar arquivo.")
		return
	}

	metrics.UploadsTotal.WithLabelValues(contentType).Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
		"message": "Upload realizado com sucesso",
	})
}
