package server

import (
	"testing"
	"time"
)

func TestParsePubDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	got, msg := parsePubDate(" 2024-03-01 ", "07:05", loc)
	if msg != "" {
		t.Fatalf("unexpected error %q", msg)
	}
	if want := time.Date(2024, 3, 1, 6, 5, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got.UTC())
	}

	if _, msg := parsePubDate("01/03/2024", "07:05", loc); msg != "Enter a valid date." {
		t.Fatalf("unexpected message %q", msg)
	}
	if _, msg := parsePubDate("2024-03-01", "7pm", loc); msg != "Enter a valid time." {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestBuildPaginationDataClampsPage(t *testing.T) {
	data := buildPaginationData("/admin/polls/question/", 7, 100, 250)
	if data.Page != 3 || data.TotalPages != 3 || data.HasNext || !data.HasPrev || data.PrevPage != 2 {
		t.Fatalf("unexpected pagination %+v", data)
	}
	empty := buildPaginationData("/admin/polls/question/", 0, 100, 0)
	if empty.Page != 1 || empty.TotalPages != 1 || empty.HasPrev || empty.HasNext {
		t.Fatalf("unexpected empty pagination %+v", empty)
	}
}

func TestNonBlankNormalizesChoices(t *testing.T) {
	got := nonBlank([]string{"  Red  ", "", "   ", "Light   blue"})
	if len(got) != 2 || got[0] != "Red" || got[1] != "Light blue" {
		t.Fatalf("unexpected choices %q", got)
	}
}
