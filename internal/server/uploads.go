package server

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type storedUpload struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	StoragePath string
}

// saveUpload writes the multipart "file" field under the configured upload
// directory with a generated name so uploads can never collide or escape
// the directory.
func (s *Server) saveUpload(c *gin.Context) (*storedUpload, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, invalidRequestError()
	}

	fileName := filepath.Base(strings.TrimSpace(header.Filename))
	if fileName == "" || fileName == "." {
		return nil, newValidationError("file", "invalid_file_name", "file name is required")
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, err
	}

	storageName := uuid.NewString() + filepath.Ext(fileName)
	storagePath := filepath.Join(s.cfg.UploadDir, storageName)
	if err := c.SaveUploadedFile(header, storagePath); err != nil {
		return nil, err
	}

	return &storedUpload{
		FileName:    fileName,
		ContentType: contentTypeOf(header),
		SizeBytes:   header.Size,
		StoragePath: storagePath,
	}, nil
}

func contentTypeOf(header *multipart.FileHeader) string {
	contentType := strings.TrimSpace(header.Header.Get("Content-Type"))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
