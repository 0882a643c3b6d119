package handlers

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"enigmaquest/models"
)

func TestAuthResponseErrorOmitsUser(t *testing.T) {
	resp := AuthResponse{Success: false, Error: "Invalid credentials"}

	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if bytes.Contains(out, []byte(`"user"`)) {
		t.Errorf("error response carries a user object: %s", out)
	}
	if bytes.Contains(out, []byte(`"token"`)) {
		t.Errorf("error response carries a token field: %s", out)
	}
}

func TestAuthResponseSuccessCarriesUser(t *testing.T) {
	email := "ada@example.com"
	user := models.User{
		ID:        7,
		Username:  "ada",
		Email:     &email,
		Role:      models.RoleUser,
		Points:    42,
		CreatedAt: time.Now(),
	}

	out, err := json.Marshal(AuthResponse{
		Success: true,
		Token:   "t",
		User:    userInfo(&user),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		User *UserInfo `json:"user"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.User == nil {
		t.Fatal("success response lost the user object")
	}
	if decoded.User.ID != 7 || decoded.User.Username != "ada" || decoded.User.Points != 42 {
		t.Errorf("user = %+v", decoded.User)
	}
}
