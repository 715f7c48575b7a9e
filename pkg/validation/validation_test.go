package validation

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestValidateFile(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name    string
		file    string
		size    int64
		content []byte
		context string
		wantErr bool
	}{
		{"pdf cv", "hoja.pdf", int64(len(pdf)), pdf, "cv", false},
		{"upper case extension", "HOJA.PDF", int64(len(pdf)), pdf, "cv", false},
		{"png disguised as pdf", "hoja.pdf", int64(len(png)), png, "cv", true},
		{"wrong extension", "hoja.docx", int64(len(pdf)), pdf, "cv", true},
		{"too large", "hoja.pdf", 21 * 1024 * 1024, pdf, "cv", true},
		{"asset image", "bomba.png", int64(len(png)), png, "asset_image", false},
		{"unknown context", "x.pdf", 1, pdf, "otro", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := &multipart.FileHeader{Filename: tt.file, Size: tt.size}
			err := ValidateFile(fh, bytes.NewReader(tt.content), tt.context)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type sample struct {
	Name  string      `validate:"required,not_blank"`
	Date  string      `validate:"omitempty,date_iso"`
	Notes null.String `validate:"omitempty,max=5"`
}

func TestValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(sample{Name: "Planta", Date: "2024-05-01"}))
	assert.Error(t, v.Validate(sample{Name: "   "}))
	assert.Error(t, v.Validate(sample{Name: "Planta", Date: "01/05/2024"}))
	assert.Error(t, v.Validate(sample{Name: "Planta", Notes: null.StringFrom("demasiado largo")}))
	assert.NoError(t, v.Validate(sample{Name: "Planta", Notes: null.StringFrom("corto")}))
}
