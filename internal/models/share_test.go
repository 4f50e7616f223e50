package models

import "testing"

func TestValidShareRole(t *testing.T) {
	for _, role := range []string{RoleOwner, RoleEditor, RoleViewer} {
		if !ValidShareRole(role) {
			t.Errorf("ValidShareRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "admin", "Owner", "read"} {
		if ValidShareRole(role) {
			t.Errorf("ValidShareRole(%q) = true, want false", role)
		}
	}
}
