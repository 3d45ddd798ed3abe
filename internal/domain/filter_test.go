package domain_test

import (
	"reflect"
	"testing"

	"github.com/mymindapp/user-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func sampleList() []domain.Transcription {
	return []domain.Transcription{
		{ID: "t1", Date: "2024-05-01", Time: "14:30", Text: "morning walk", Emotion: "joy", Sentiment: "positive", Topic: "health"},
		{ID: "t2", Date: "2024-05-02", Time: "09:15", Text: "work call", Emotion: "anger", Sentiment: "negative", Topic: "work"},
		{ID: "t3", Date: "2024-06-10", Time: "14:05", Text: "lunch", Emotion: "joy", Sentiment: "neutral", Topic: "food"},
		{ID: "t4", Date: "2023-12-31", Time: "", Text: "midnight", Emotion: "joy", Sentiment: "positive", Topic: "health"},
		{ID: "t5", Date: "2024-05-20", Time: "bad-time", Text: "glitch", Emotion: "fear", Sentiment: "negative"},
	}
}

func ids(list []domain.Transcription) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func TestFilterTranscriptions(t *testing.T) {
	list := sampleList()

	tests := []struct {
		name   string
		filter domain.TranscriptionFilter
		want   []string
	}{
		{"no predicates selects all", domain.TranscriptionFilter{}, []string{"t1", "t2", "t3", "t4", "t5"}},
		{"emotion exact", domain.TranscriptionFilter{Emotion: "joy"}, []string{"t1", "t3", "t4"}},
		{"sentiment exact", domain.TranscriptionFilter{Sentiment: "negative"}, []string{"t2", "t5"}},
		{"topic exact", domain.TranscriptionFilter{Topic: "health"}, []string{"t1", "t4"}},
		{"date full match", domain.TranscriptionFilter{Date: "2024-05-01"}, []string{"t1"}},
		{"date month prefix", domain.TranscriptionFilter{Date: "2024-05"}, []string{"t1", "t2", "t5"}},
		{"date year prefix", domain.TranscriptionFilter{Date: "2024"}, []string{"t1", "t2", "t3", "t5"}},
		{"single hour", domain.TranscriptionFilter{StartHour: intPtr(14), EndHour: intPtr(14)}, []string{"t1", "t3"}},
		{"start only means single hour", domain.TranscriptionFilter{StartHour: intPtr(9)}, []string{"t2"}},
		{"hour range excludes", domain.TranscriptionFilter{StartHour: intPtr(15), EndHour: intPtr(23)}, []string{}},
		{"malformed time counts as hour zero", domain.TranscriptionFilter{StartHour: intPtr(0), EndHour: intPtr(0)}, []string{"t4", "t5"}},
		{"full range selects all", domain.TranscriptionFilter{StartHour: intPtr(0), EndHour: intPtr(23)}, []string{"t1", "t2", "t3", "t4", "t5"}},
		{"conjunction", domain.TranscriptionFilter{Emotion: "joy", Sentiment: "positive"}, []string{"t1", "t4"}},
		{"conjunction with date", domain.TranscriptionFilter{Emotion: "joy", Date: "2024"}, []string{"t1", "t3"}},
		{"no match", domain.TranscriptionFilter{Emotion: "surprise"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(domain.FilterTranscriptions(list, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterTranscriptions_Idempotent(t *testing.T) {
	list := sampleList()
	f := domain.TranscriptionFilter{Emotion: "joy", Date: "2024"}

	once := domain.FilterTranscriptions(list, f)
	twice := domain.FilterTranscriptions(once, f)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter is not idempotent: once %v, twice %v", ids(once), ids(twice))
	}
}

func TestFilterTranscriptions_ConjunctiveComposition(t *testing.T) {
	// filter(list, emotion, sentiment) must equal
	// filter(filter(list, emotion), sentiment)
	list := sampleList()

	combined := domain.FilterTranscriptions(list, domain.TranscriptionFilter{Emotion: "joy", Sentiment: "positive"})
	chained := domain.FilterTranscriptions(
		domain.FilterTranscriptions(list, domain.TranscriptionFilter{Emotion: "joy"}),
		domain.TranscriptionFilter{Sentiment: "positive"},
	)

	if !reflect.DeepEqual(combined, chained) {
		t.Errorf("composition mismatch: combined %v, chained %v", ids(combined), ids(chained))
	}
}

func TestFilterTranscriptions_PreservesOrder(t *testing.T) {
	list := sampleList()
	got := domain.FilterTranscriptions(list, domain.TranscriptionFilter{Emotion: "joy"})

	want := []string{"t1", "t3", "t4"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order not preserved: got %v, want %v", ids(got), want)
	}
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"14:30", 14},
		{"09:15", 9},
		{"00:00", 0},
		{"23:59", 23},
		{"", 0},
		{"bad-time", 0},
		{"99:00", 0},
		{"-3:00", 0},
	}

	for _, tt := range tests {
		if got := domain.ParseHour(tt.in); got != tt.want {
			t.Errorf("ParseHour(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
