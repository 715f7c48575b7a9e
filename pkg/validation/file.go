package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"game-api/pkg/config"
)

// ValidateFile checks extension, size and sniffed MIME type against an upload context.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) error {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return fmt.Errorf("contexto de carga desconocido '%s'", contextName)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if len(rules.AllowedExtensions) > 0 && !slices.Contains(rules.AllowedExtensions, ext) {
		return fmt.Errorf("extensión de archivo no permitida: %s", ext)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return fmt.Errorf("el tamaño del archivo (%.2f MB) supera el límite de %d MB", float64(fileHeader.Size)/1024/1024, rules.MaxSizeMB)
		}
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("error al leer el archivo")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("error al procesar el archivo")
	}

	mimeType := http.DetectContentType(buffer[:n])
	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return fmt.Errorf("formato de archivo no permitido: %s", mimeType)
	}

	return nil
}
