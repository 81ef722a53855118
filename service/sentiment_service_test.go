package service

import (
	"reflect"
	"testing"

	"github.com/tieubaoca/docsense-be/types"
)

func TestSentimentPositive(t *testing.T) {
	svc := NewSentimentService()
	result := svc.Score("The results were excellent and the team did a great job.")
	if result.Label != types.SentimentPositive {
		t.Errorf("label = %q, want %q", result.Label, types.SentimentPositive)
	}
	if result.Scores.Compound <= 0 {
		t.Errorf("compound = %f, want > 0", result.Scores.Compound)
	}
}

func TestSentimentNegative(t *testing.T) {
	svc := NewSentimentService()
	result := svc.Score("A terrible failure, the launch was a disaster.")
	if result.Label != types.SentimentNegative {
		t.Errorf("label = %q, want %q", result.Label, types.SentimentNegative)
	}
	if result.Scores.Compound >= 0 {
		t.Errorf("compound = %f, want < 0", result.Scores.Compound)
	}
}

// A zero compound is Neutral even when charged words appear on both
// sides. The sign rule is strict, there is no near-zero band.
func TestSentimentExactZeroIsNeutral(t *testing.T) {
	svc := NewSentimentService()
	// "good" carries +3, "bad" carries -3.
	result := svc.Score("good bad")
	if result.Scores.Compound != 0 {
		t.Fatalf("compound = %f, want exactly 0", result.Scores.Compound)
	}
	if result.Label != types.SentimentNeutral {
		t.Errorf("label = %q, want %q", result.Label, types.SentimentNeutral)
	}
}

func TestSentimentEmptyText(t *testing.T) {
	svc := NewSentimentService()
	result := svc.Score("")
	if result.Label != types.SentimentNeutral {
		t.Errorf("label = %q, want %q", result.Label, types.SentimentNeutral)
	}
	if result.Scores.Positive != 0 || result.Scores.Negative != 0 {
		t.Errorf("expected zero scores, got %+v", result.Scores)
	}
}

func TestSentimentDeterministic(t *testing.T) {
	svc := NewSentimentService()
	text := "Strong growth but rising risks and some delayed fixes."
	first := svc.Score(text)
	for i := 0; i < 5; i++ {
		if next := svc.Score(text); !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d differed: %+v vs %+v", i, first, next)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("It's GREAT, really great! 100% true.")
	want := []string{"it's", "great", "really", "great", "true"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}
