package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// formFile archivo local a adjuntar en una petición multipart.
type formFile struct {
	Field string
	Path  string
}

// imageFiles arma la lista de adjuntos para un único campo de imagen
// opcional.
func imageFiles(field, path string) []formFile {
	if path == "" {
		return nil
	}
	return []formFile{{Field: field, Path: path}}
}

// submitMultipart envía un POST/PUT multipart/form-data con los campos y
// archivos dados. Las colecciones con imagen (categorías, productos,
// carrusel) siempre viajan multipart, haya o no archivo adjunto.
func (c *Client) submitMultipart(ctx context.Context, method, path string, fields map[string]string, files []formFile, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("api: campo multipart %s: %w", k, err)
		}
	}
	for _, f := range files {
		if err := appendFile(w, f); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("api: cerrar multipart: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func appendFile(w *multipart.Writer, f formFile) error {
	src, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("api: abrir imagen %s: %w", f.Path, err)
	}
	defer src.Close()

	part, err := w.CreateFormFile(f.Field, filepath.Base(f.Path))
	if err != nil {
		return fmt.Errorf("api: adjuntar imagen %s: %w", f.Path, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("api: copiar imagen %s: %w", f.Path, err)
	}
	return nil
}
