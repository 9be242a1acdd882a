package polls

import (
	"testing"
	"time"
)

func TestWasPublishedRecentlyWithFutureQuestion(t *testing.T) {
	now := time.Now()
	q := Question{PubDate: now.AddDate(0, 0, 30)}
	if q.WasPublishedRecently(now) {
		t.Fatalf("expected future question not to be recent")
	}
}

func TestWasPublishedRecentlyWithOldQuestion(t *testing.T) {
	now := time.Now()
	q := Question{PubDate: now.Add(-RecentWindow - time.Second)}
	if q.WasPublishedRecently(now) {
		t.Fatalf("expected question older than a day not to be recent")
	}
}

func TestWasPublishedRecentlyWithRecentQuestion(t *testing.T) {
	now := time.Now()
	q := Question{PubDate: now.Add(-(23*time.Hour + 59*time.Minute + 59*time.Second))}
	if !q.WasPublishedRecently(now) {
		t.Fatalf("expected question from 23h59m59s ago to be recent")
	}
}

func TestWasPublishedRecentlyBoundaries(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{"exactly one day ago", now.Add(-RecentWindow), true},
		{"exactly now", now, true},
		{"one nanosecond ahead", now.Add(time.Nanosecond), false},
		{"one second past the window", now.Add(-RecentWindow - time.Second), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Question{PubDate: tc.pubDate}
			if got := q.WasPublishedRecently(now); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIsPublishedDiffersFromRecentBadge(t *testing.T) {
	now := time.Now()
	old := Question{PubDate: now.AddDate(0, 0, -30)}
	if !old.IsPublished(now) {
		t.Fatalf("expected old question to be visible")
	}
	if old.WasPublishedRecently(now) {
		t.Fatalf("expected old question not to carry the recent badge")
	}
}

func TestTotalVotesAndFindChoice(t *testing.T) {
	q := Question{Choices: []Choice{{ID: 3, Votes: 2}, {ID: 7, Votes: 5}}}
	if got := q.TotalVotes(); got != 7 {
		t.Fatalf("expected 7 votes, got %d", got)
	}
	if _, ok := q.FindChoice(7); !ok {
		t.Fatalf("expected choice 7 to be found")
	}
	if _, ok := q.FindChoice(4); ok {
		t.Fatalf("expected choice 4 to be missing")
	}
}

func TestDateFilterBounds(t *testing.T) {
	now := time.Date(2024, 2, 29, 15, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	cases := []struct {
		filter DateFilter
		from   time.Time
		to     time.Time
	}{
		{DateToday, day(2024, 2, 29), day(2024, 3, 1)},
		{DatePast7Days, day(2024, 2, 22), day(2024, 3, 1)},
		{DateThisMonth, day(2024, 2, 1), day(2024, 3, 1)},
		{DateThisYear, day(2024, 1, 1), day(2025, 1, 1)},
	}
	for _, tc := range cases {
		from, to := tc.filter.Bounds(now)
		if !from.Equal(tc.from) || !to.Equal(tc.to) {
			t.Fatalf("%s: expected [%s, %s), got [%s, %s)", tc.filter, tc.from, tc.to, from, to)
		}
	}
	from, to := DateAny.Bounds(now)
	if !from.IsZero() || !to.IsZero() {
		t.Fatalf("expected unbounded range for any date")
	}
}

func TestParseHelpers(t *testing.T) {
	if ParseDateFilter("this_year") != DateThisYear {
		t.Fatalf("expected this_year filter")
	}
	if ParseDateFilter("yesterday") != DateAny {
		t.Fatalf("expected unknown filter to fall back to any date")
	}
	if ParseOrder("-pub_date") != OrderPubDateDesc {
		t.Fatalf("expected -pub_date order")
	}
	if ParseOrder("votes") != OrderDefault {
		t.Fatalf("expected unknown order to fall back to default")
	}
	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		if _, ok := parseID(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
	if id, ok := parseID("42"); !ok || id != 42 {
		t.Fatalf("expected 42, got %d %v", id, ok)
	}
}
