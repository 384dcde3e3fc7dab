package filter

import (
	"testing"

	"obmenBack/internal/models"
)

func TestCategoryInEmptySetPassesAll(t *testing.T) {
	p := CategoryIn(nil)
	if !p(models.Ad{CategoryID: 7}) {
		t.Fatal("empty category set must not constrain")
	}
}

func TestAndIntersectsFields(t *testing.T) {
	p := And(CategoryIn([]int{1}), ConditionIn([]string{"used"}))

	if !p(models.Ad{CategoryID: 1, Condition: "used"}) {
		t.Fatal("ad satisfying both filters must pass")
	}
	if p(models.Ad{CategoryID: 1, Condition: "new"}) {
		t.Fatal("ad satisfying only the category filter must not pass")
	}
	if p(models.Ad{CategoryID: 2, Condition: "used"}) {
		t.Fatal("ad satisfying only the condition filter must not pass")
	}
}

func TestConditionInIsMembership(t *testing.T) {
	p := ConditionIn([]string{"new", "for_parts"})
	if !p(models.Ad{Condition: "for_parts"}) {
		t.Fatal("member condition must pass")
	}
	if p(models.Ad{Condition: "used"}) {
		t.Fatal("non-member condition must not pass")
	}
}

func TestMatchesCaseInsensitiveSubstring(t *testing.T) {
	p := Matches("setup_title")
	if !p(models.Ad{Title: "Setup_Title"}) {
		t.Fatal("query must match the title case-insensitively")
	}
	if !p(models.Ad{Title: "other", Description: "my SETUP_TITLE here"}) {
		t.Fatal("query must match the description when absent from the title")
	}
	if p(models.Ad{Title: "other", Description: "nothing"}) {
		t.Fatal("unrelated ad must not match")
	}
}

func TestMatchesEmptyQueryPassesAll(t *testing.T) {
	if !Matches("")(models.Ad{}) {
		t.Fatal("empty query must pass everything")
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	ads := []models.Ad{{ID: 1, Condition: "new"}, {ID: 2, Condition: "used"}, {ID: 3, Condition: "new"}}
	got := Apply(ads, ConditionIn([]string{"new"}))
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected result: %#v", got)
	}
}
