package services

import "testing"

func TestGetContentType(t *testing.T) {
	cases := []struct {
		ext  string
		want string
	}{
		{".jpg", "image/jpeg"},
		{".jpeg", "image/jpeg"},
		{".png", "image/png"},
		{".pdf", "application/pdf"},
		{".txt", "text/plain"},
		{".exe", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tc := range cases {
		if got := GetContentType(tc.ext); got != tc.want {
			t.Errorf("GetContentType(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}
