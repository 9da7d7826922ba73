package model

import "testing"

func TestRole(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		for _, r := range []Role{RoleDefault, RoleManager, RoleAdmin} {
			if !r.Valid() {
				t.Errorf("expected %q to be valid", r)
			}
		}
		if Role("owner").Valid() {
			t.Error("expected owner to be invalid")
		}
	})

	t.Run("rank", func(t *testing.T) {
		if !(RoleAdmin.Rank() > RoleManager.Rank() && RoleManager.Rank() > RoleDefault.Rank()) {
			t.Error("expected admin > manager > default")
		}
		if Role("x").Rank() >= RoleDefault.Rank() {
			t.Error("expected unknown roles to rank lowest")
		}
	})
}

func TestAPIKey_Masked(t *testing.T) {
	if got := (APIKey{Value: "ABCD-1234-WXYZ"}).Masked(); got != "****WXYZ" {
		t.Errorf("got %q", got)
	}
	if got := (APIKey{Value: "ab"}).Masked(); got != "****" {
		t.Errorf("got %q", got)
	}
}
