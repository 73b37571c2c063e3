package metadata

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   PutInput
		max     int64
		wantErr error
	}{
		{name: "png", input: PutInput{ContentType: "image/png", Data: []byte{1}}, max: 10},
		{name: "upper case type", input: PutInput{ContentType: "IMAGE/JPEG", Data: []byte{1}}, max: 10},
		{name: "empty", input: PutInput{ContentType: "image/png"}, max: 10, wantErr: ErrEmptyFile},
		{name: "too large", input: PutInput{ContentType: "image/png", Data: make([]byte, 11)}, max: 10, wantErr: ErrTooLarge},
		{name: "default limit", input: PutInput{ContentType: "image/png", Data: make([]byte, 11)}},
		{name: "pdf", input: PutInput{ContentType: "application/pdf", Data: []byte{1}}, max: 10, wantErr: ErrNotImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input, tt.max)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"cat.PNG":                  ".png",
		"a.b.jpeg":                 ".jpeg",
		"noext":                    "",
		"dir\\evil.gif":            ".gif",
		"weird.p$g":                "",
		"x.averyverylongextension": "",
	}
	for in, want := range tests {
		if got := Extension(in); got != want {
			t.Errorf("Extension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidName(t *testing.T) {
	for _, name := range []string{"", ".hidden", "../etc/passwd", "a/b", `a\b`} {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true", name)
		}
	}
	if !ValidName("0b7c.png") {
		t.Error("plain name rejected")
	}
}
