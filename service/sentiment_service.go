package service

import (
	"strings"

	"github.com/tieubaoca/docsense-be/types"
)

// sentimentLexicon maps lower-cased tokens to polarity valences. Derived
// from the common AFINN-style wordlists used by lexicon scorers.
var sentimentLexicon = map[string]float64{
	// positive
	"good": 3, "great": 3, "excellent": 4, "amazing": 4, "awesome": 4,
	"fantastic": 4, "wonderful": 4, "outstanding": 4, "superb": 4,
	"best": 3, "better": 2, "improved": 2, "improvement": 2, "gain": 2,
	"gains": 2, "growth": 2, "profit": 2, "profitable": 2, "success": 3,
	"successful": 3, "win": 3, "wins": 3, "won": 3, "winning": 3,
	"happy": 3, "glad": 2, "pleased": 2, "delighted": 3, "love": 3,
	"loved": 3, "like": 1, "liked": 1, "enjoy": 2, "enjoyed": 2,
	"positive": 2, "strong": 2, "stronger": 2, "benefit": 2, "benefits": 2,
	"effective": 2, "efficient": 2, "reliable": 2, "innovative": 2,
	"opportunity": 2, "opportunities": 2, "progress": 2, "achievement": 3,
	"achieved": 2, "advantage": 2, "recommend": 2, "recommended": 2,
	"impressive": 3, "exceptional": 3, "valuable": 2, "trusted": 2,
	"helpful": 2, "perfect": 3, "clean": 1, "clear": 1, "easy": 1,
	"smooth": 2, "secure": 2, "safe": 1, "robust": 2, "thriving": 3,
	// negative
	"bad": -3, "terrible": -4, "awful": -4, "horrible": -4, "poor": -2,
	"worst": -3, "worse": -2, "fail": -3, "failed": -3, "failure": -3,
	"failures": -3, "loss": -2, "losses": -2, "lose": -2, "losing": -2,
	"lost": -2, "decline": -2, "declined": -2, "drop": -1, "dropped": -1,
	"weak": -2, "weaker": -2, "problem": -2, "problems": -2, "issue": -1,
	"issues": -1, "error": -2, "errors": -2, "bug": -2, "bugs": -2,
	"broken": -2, "crash": -3, "crashed": -3, "risk": -1, "risks": -1,
	"risky": -2, "danger": -3, "dangerous": -3, "threat": -2,
	"threats": -2, "sad": -2, "unhappy": -2, "angry": -3, "hate": -3,
	"hated": -3, "dislike": -2, "disappointing": -2, "disappointed": -2,
	"negative": -2, "damage": -2, "damaged": -2, "harm": -2, "harmful": -2,
	"slow": -1, "expensive": -1, "difficult": -1, "hard": -1,
	"confusing": -2, "unreliable": -2, "insecure": -2, "unsafe": -2,
	"fraud": -4, "scam": -4, "crisis": -3, "disaster": -4, "delay": -1,
	"delayed": -1, "defect": -2, "defects": -2, "complaint": -2,
	"complaints": -2, "wrong": -2, "missing": -1, "corrupt": -3,
	"rejected": -2, "refused": -2, "denied": -2, "penalty": -2,
	"debt": -2, "bankrupt": -4, "lawsuit": -2, "warning": -1,
}

// SentimentService scores text by summing lexicon valences over its
// tokens. Deterministic, no failure mode: degenerate input is Neutral.
type SentimentService struct{}

func NewSentimentService() *SentimentService {
	return &SentimentService{}
}

// Score classifies the text with a strict three-way sign rule on the
// summed magnitude: >0 Positive, <0 Negative, exactly 0 Neutral.
func (s *SentimentService) Score(text string) *types.Sentiment {
	var positive, negative, neutral float64
	for _, token := range tokenize(text) {
		valence, ok := sentimentLexicon[token]
		switch {
		case !ok || valence == 0:
			neutral++
		case valence > 0:
			positive += valence
		default:
			negative += -valence
		}
	}

	compound := positive - negative
	label := types.SentimentNeutral
	if compound > 0 {
		label = types.SentimentPositive
	} else if compound < 0 {
		label = types.SentimentNegative
	}

	return &types.Sentiment{
		Label: label,
		Scores: &types.SentimentScores{
			Positive: positive,
			Negative: negative,
			Neutral:  neutral,
			Compound: compound,
		},
	}
}

// tokenize lower-cases and splits on non-letter boundaries. Shared by the
// sentiment and topic engines so both see the same token stream.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || r == '\'' {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			if token := strings.Trim(current.String(), "'"); token != "" {
				tokens = append(tokens, token)
			}
			current.Reset()
		}
	}
	if token := strings.Trim(current.String(), "'"); token != "" {
		tokens = append(tokens, token)
	}
	return tokens
}
