package gallery

import (
	"reflect"
	"testing"
)

func TestParseQuery_BareWordsAreText(t *testing.T) {
	q := ParseQuery("  touhou fan  book ")
	if q.Text != "touhou fan book" {
		t.Errorf("Text = %q, want joined words", q.Text)
	}
	if len(q.Tags) != 0 || q.Category != "" || q.Language != "" {
		t.Errorf("bare words produced filters: %+v", q)
	}
	if q.SortOrder != "desc" {
		t.Errorf("SortOrder = %q, want default desc", q.SortOrder)
	}
}

func TestParseQuery_TagFilters(t *testing.T) {
	q := ParseQuery("artist:someone Parody:Touhou solo")
	want := []TagFilter{
		{Namespace: "artist", Tag: "someone"},
		{Namespace: "parody", Tag: "touhou"},
	}
	if !reflect.DeepEqual(q.Tags, want) {
		t.Errorf("Tags = %+v, want %+v", q.Tags, want)
	}
	if q.Text != "solo" {
		t.Errorf("Text = %q, want %q", q.Text, "solo")
	}
}

func TestParseQuery_Directives(t *testing.T) {
	q := ParseQuery("category:doujinshi language:japanese sort:rating:asc")
	if q.Category != "doujinshi" {
		t.Errorf("Category = %q", q.Category)
	}
	if q.Language != "japanese" {
		t.Errorf("Language = %q", q.Language)
	}
	if q.SortBy != SortByRating || q.SortOrder != "asc" {
		t.Errorf("sort = %q/%q, want rating/asc", q.SortBy, q.SortOrder)
	}
}

func TestParseQuery_UnknownSortFallsBack(t *testing.T) {
	q := ParseQuery("sort:bogus")
	if q.SortBy != "" {
		t.Errorf("SortBy = %q, want empty for unknown column", q.SortBy)
	}
	if q.SortOrder != "desc" {
		t.Errorf("SortOrder = %q, want desc", q.SortOrder)
	}
}

func TestParseQuery_DanglingColonIsText(t *testing.T) {
	q := ParseQuery("artist: :tag plain")
	if len(q.Tags) != 0 {
		t.Errorf("Tags = %+v, want none for empty namespace or value", q.Tags)
	}
	if q.Text != "artist: :tag plain" {
		t.Errorf("Text = %q", q.Text)
	}
}

func TestFTSQuery_QuotesEveryWord(t *testing.T) {
	got := FTSQuery(`near "far" AND`)
	want := `"near" """far""" "AND"`
	if got != want {
		t.Errorf("FTSQuery = %q, want %q", got, want)
	}
}

func TestFTSQuery_Empty(t *testing.T) {
	if got := FTSQuery("   "); got != "" {
		t.Errorf("FTSQuery of blank = %q, want empty", got)
	}
}
