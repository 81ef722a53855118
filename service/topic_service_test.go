package service

import (
	"strings"
	"testing"
)

func TestTopicCountLimit(t *testing.T) {
	svc := NewTopicService()
	text := "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima mike november"
	topics := svc.Extract(text)
	if len(topics) != TopicCount {
		t.Errorf("len(topics) = %d, want %d", len(topics), TopicCount)
	}
}

func TestTopicRepeatedTermRanksFirst(t *testing.T) {
	svc := NewTopicService()
	text := "pipeline pipeline pipeline extraction analysis storage format detection"
	topics := svc.Extract(text)
	if len(topics) == 0 {
		t.Fatal("expected topics, got none")
	}
	if topics[0] != "pipeline" {
		t.Errorf("topics[0] = %q, want %q (topics: %v)", topics[0], "pipeline", topics)
	}
}

func TestTopicExcludesStopwordsAndShortTokens(t *testing.T) {
	svc := NewTopicService()
	text := "the document is in an archive and it has a map of keywords"
	topics := svc.Extract(text)
	for _, topic := range topics {
		if stopwords[topic] {
			t.Errorf("stopword %q leaked into topics", topic)
		}
		if len(topic) < 3 {
			t.Errorf("short token %q leaked into topics", topic)
		}
	}
}

func TestTopicEmptyText(t *testing.T) {
	svc := NewTopicService()
	topics := svc.Extract("")
	if topics == nil {
		t.Fatal("topics is nil, want empty slice")
	}
	if len(topics) != 0 {
		t.Errorf("topics = %v, want empty", topics)
	}
}

// Every reported term must actually occur in the source text; topics
// are selected, never synthesized.
func TestTopicTermsOccurInText(t *testing.T) {
	svc := NewTopicService()
	text := "Quarterly Revenue climbed sharply while the Berlin office doubled its Revenue forecast."
	topics := svc.Extract(text)
	if len(topics) == 0 {
		t.Fatal("expected topics, got none")
	}
	lower := strings.ToLower(text)
	for _, topic := range topics {
		if !strings.Contains(lower, strings.ToLower(topic)) {
			t.Errorf("topic %q does not occur in the source text", topic)
		}
	}
}

func TestTopicTiesBreakByFirstOccurrence(t *testing.T) {
	svc := NewTopicService()
	// Every term appears once, so all weights tie.
	text := "zebra yacht window violin trumpet"
	topics := svc.Extract(text)
	want := []string{"zebra", "yacht", "window", "violin", "trumpet"}
	if strings.Join(topics, " ") != strings.Join(want, " ") {
		t.Errorf("topics = %v, want %v", topics, want)
	}
}
