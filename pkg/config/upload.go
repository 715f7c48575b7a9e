package config

type UploadConfig struct {
	AllowedMimeTypes  []string
	AllowedExtensions []string
	MaxSizeMB         int64
	PathPrefix        string
}

var UploadContexts = map[string]UploadConfig{
	"cv": {
		AllowedMimeTypes:  []string{"application/pdf"},
		AllowedExtensions: []string{".pdf"},
		MaxSizeMB:         20,
		PathPrefix:        "cvs",
	},
	"asset_image": {
		AllowedMimeTypes:  []string{"image/jpeg", "image/png", "image/webp"},
		AllowedExtensions: []string{".png", ".jpg", ".jpeg", ".webp"},
		MaxSizeMB:         5,
		PathPrefix:        "tipos-activo",
	},
	// xlsx is a zip container
	"spreadsheet": {
		AllowedMimeTypes:  []string{"application/zip", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		AllowedExtensions: []string{".xlsx"},
		MaxSizeMB:         20,
	},
}
