package post

import (
	"errors"
	"testing"

	"github.com/hazyview/boorupack/pkg/boorupack/internalerr"
)

func TestParseRating(t *testing.T) {
	cases := []struct {
		code string
		want Rating
	}{
		{"s", RatingSafe},
		{"q", RatingQuestionable},
		{"e", RatingExplicit},
	}
	for _, c := range cases {
		got, err := ParseRating(c.code)
		if err != nil {
			t.Errorf("ParseRating(%q): %v", c.code, err)
		}
		if got != c.want {
			t.Errorf("ParseRating(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestParseRatingUnknown(t *testing.T) {
	for _, code := range []string{"g", "x", "", "safe"} {
		if _, err := ParseRating(code); !errors.Is(err, internalerr.ErrUnknownRating) {
			t.Errorf("ParseRating(%q): expected ErrUnknownRating, got %v", code, err)
		}
	}
}

func TestRatingOrder(t *testing.T) {
	// Merging keeps the maximum, so the ordinal order must be
	// safe < questionable < explicit
	if !(RatingSafe < RatingQuestionable && RatingQuestionable < RatingExplicit) {
		t.Error("Rating ordinals out of order")
	}
}
