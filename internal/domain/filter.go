package domain

import (
	"strconv"
	"strings"
)

// TranscriptionFilter describes an optional conjunctive predicate over a
// transcription list. Zero-valued string fields and nil hour bounds impose no
// constraint. Date matches by prefix against the ISO date string, so "2024"
// and "2024-05" select at year and month granularity.
type TranscriptionFilter struct {
	Emotion   string
	Sentiment string
	Topic     string
	Date      string
	StartHour *int
	EndHour   *int
}

// HourRange returns the effective inclusive hour bounds. A start without an
// end is a single-hour lookup; an end without a start counts from midnight.
// The second return value reports whether an hour constraint applies at all.
func (f TranscriptionFilter) HourRange() (start, end int, ok bool) {
	if f.StartHour == nil && f.EndHour == nil {
		return 0, 0, false
	}
	start, end = 0, 23
	if f.StartHour != nil {
		start = *f.StartHour
		if f.EndHour == nil {
			return start, start, true
		}
	}
	if f.EndHour != nil {
		end = *f.EndHour
	}
	return start, end, true
}

// Matches reports whether a single transcription satisfies every predicate.
func (f TranscriptionFilter) Matches(t Transcription) bool {
	if f.Emotion != "" && t.Emotion != f.Emotion {
		return false
	}
	if f.Sentiment != "" && t.Sentiment != f.Sentiment {
		return false
	}
	if f.Topic != "" && t.Topic != f.Topic {
		return false
	}
	if f.Date != "" && !strings.HasPrefix(t.Date, f.Date) {
		return false
	}
	if start, end, ok := f.HourRange(); ok {
		h := ParseHour(t.Time)
		if h < start || h > end {
			return false
		}
	}
	return true
}

// FilterTranscriptions selects the subset of list satisfying the filter.
// The selection is stable: output order is input order.
func FilterTranscriptions(list []Transcription, f TranscriptionFilter) []Transcription {
	out := make([]Transcription, 0, len(list))
	for _, t := range list {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ParseHour extracts the integer hour from the leading "HH" segment of a
// time string. A missing or malformed time defaults to hour 0.
func ParseHour(timeStr string) int {
	head, _, _ := strings.Cut(timeStr, ":")
	h, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || h < 0 || h > 23 {
		return 0
	}
	return h
}
