package gallery

import "testing"

func TestSuggestTags_PrefixRanksFirst(t *testing.T) {
	known := []string{"full color", "fuuka", "fantasy", "color swap"}
	got := SuggestTags("fu", known, 3)
	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	// Both prefix matches outrank the fuzzy-only ones.
	if got[0].Tag != "fuuka" && got[0].Tag != "full color" {
		t.Errorf("top suggestion = %q, want a prefix match", got[0].Tag)
	}
	if got[0].Score <= 1 {
		t.Errorf("prefix match score = %v, want boosted above 1", got[0].Score)
	}
}

func TestSuggestTags_FuzzyTypo(t *testing.T) {
	known := []string{"schoolgirl", "stockings", "sole female"}
	got := SuggestTags("schoolgirl", known, 5)
	for _, s := range got {
		if s.Tag == "schoolgirl" {
			t.Error("exact match should not be suggested back")
		}
	}

	got = SuggestTags("scholgirl", known, 5)
	if len(got) == 0 || got[0].Tag != "schoolgirl" {
		t.Errorf("suggestions for typo = %+v, want schoolgirl first", got)
	}
}

func TestSuggestTags_ShortInputAndLimit(t *testing.T) {
	known := []string{"aa", "ab", "ac"}
	if got := SuggestTags("a", known, 5); got != nil {
		t.Errorf("single-character input gave %+v, want nil", got)
	}
	if got := SuggestTags("aa", known, 0); got != nil {
		t.Errorf("zero max gave %+v, want nil", got)
	}
	if got := SuggestTags("ab", known, 1); len(got) > 1 {
		t.Errorf("limit ignored: %+v", got)
	}
}

func TestToItemsAndToLeading(t *testing.T) {
	items := ToItems([]Summary{{Path: "/g/one"}, {Path: "/g/two"}})
	if len(items) != 2 || items[0].Key != "/g/one" || !items[0].WideEligible {
		t.Errorf("ToItems = %+v", items)
	}
	leading := ToLeading([]Folder{{Name: "2024", Path: "/f/2024"}})
	if len(leading) != 1 || leading[0].Key != "/f/2024" || leading[0].Title != "2024" {
		t.Errorf("ToLeading = %+v", leading)
	}
}
