package handlers

import "testing"

func TestProfilePatchDecodeWhitelist(t *testing.T) {
	var req ProfileUpdateRequest
	if err := decodeStrict([]byte(`{"username":"ada","email":"ada@example.com"}`), &req); err != nil {
		t.Fatalf("legal patch rejected: %v", err)
	}
	if req.Username == nil || *req.Username != "ada" {
		t.Error("username not decoded")
	}
	if req.Password != nil {
		t.Error("absent field decoded as set")
	}
}

func TestProfilePatchDecodeRejectsUnknownFields(t *testing.T) {
	cases := []string{
		`{"points": 9999}`,
		`{"role": "admin"}`,
		`{"username": "ada", "is_admin": true}`,
	}
	for _, body := range cases {
		var req ProfileUpdateRequest
		if err := decodeStrict([]byte(body), &req); err == nil {
			t.Errorf("patch %s accepted", body)
		}
	}
}
