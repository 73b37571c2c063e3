package metadata

import (
	"path"
	"strings"
)

// DefaultMaxBytes is the upload limit used when none is configured.
const DefaultMaxBytes int64 = 10 << 20

type PutInput struct {
	// Filename is the client's name for the file; only its extension is kept.
	Filename    string
	ContentType string
	Data        []byte
}

type Object struct {
	Name string `json:"filename"`
	URL  string `json:"url"`
}

// Validate applies the upload rules shared by every Store: non-empty, at most
// maxBytes, and an image content type.
func Validate(input PutInput, maxBytes int64) error {
	if len(input.Data) == 0 {
		return ErrEmptyFile
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if int64(len(input.Data)) > maxBytes {
		return ErrTooLarge
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(input.ContentType)), "image/") {
		return ErrNotImage
	}
	return nil
}

// Extension returns the lowercased extension of filename, or "" when it is
// missing or contains anything but letters and digits.
func Extension(filename string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(filename, "\\", "/")))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// ValidName reports whether name is a bare file name that a Store could have
// generated. Anything with a path separator or a leading dot is rejected.
func ValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") || strings.ContainsAny(name, "/\\") {
		return false
	}
	return true
}
