package services

import (
	"strings"
	"testing"
)

func TestBuildStoragePathOwnerPrefix(t *testing.T) {
	path := BuildStoragePath("owner-1", "report.pdf")

	if !strings.HasPrefix(path, "owner-1/") {
		t.Errorf("path %q must be namespaced under the owner", path)
	}
	if !strings.HasSuffix(path, "_report.pdf") {
		t.Errorf("path %q must keep the original filename", path)
	}
}

func TestBuildStoragePathUnique(t *testing.T) {
	a := BuildStoragePath("owner-1", "report.pdf")
	b := BuildStoragePath("owner-1", "report.pdf")

	if a == b {
		t.Errorf("equal filenames must not collide: %q", a)
	}
}
