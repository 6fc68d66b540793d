package competition

import "testing"

func TestCompetition_Validate(t *testing.T) {
	t.Parallel()

	if err := (Competition{ID: 2021, Name: "Premier League"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Competition{Name: "Premier League"}).Validate(); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if err := (Competition{ID: 2021}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestCompetition_FileName(t *testing.T) {
	t.Parallel()

	if got := (Competition{ID: 2021}).FileName(); got != "2021.txt" {
		t.Fatalf("unexpected file name: %s", got)
	}
}
