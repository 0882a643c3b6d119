package admin

import (
	"testing"
	"time"
)

func TestTeaserPatchDecodeWhitelist(t *testing.T) {
	var req TeaserUpdateRequest
	body := `{"title":"Riddle","solution":"seven","is_active":false}`
	if err := decodeStrict([]byte(body), &req); err != nil {
		t.Fatalf("legal patch rejected: %v", err)
	}
	if req.Title == nil || *req.Title != "Riddle" {
		t.Error("title not decoded")
	}
	if req.IsActive == nil || *req.IsActive {
		t.Error("is_active not decoded")
	}
}

func TestTeaserPatchDecodeRejectsUnknownFields(t *testing.T) {
	cases := []string{
		`{"winners": [1,2,3]}`,
		`{"id": 7}`,
		`{"title": "ok", "created_at": "2025-01-01"}`,
	}
	for _, body := range cases {
		var req TeaserUpdateRequest
		if err := decodeStrict([]byte(body), &req); err == nil {
			t.Errorf("patch %s accepted", body)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2025-06-01")
	if err != nil {
		t.Fatalf("date-only form rejected: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 1 {
		t.Errorf("parsed %v", got)
	}

	if _, err := parseDate("2025-06-01T08:30:00Z"); err != nil {
		t.Errorf("RFC3339 form rejected: %v", err)
	}

	if _, err := parseDate("June 1st"); err == nil {
		t.Error("garbage date accepted")
	}
}
