package entity

import "strings"

// Sentiment is the canonical output category of the analyzer.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentFromLabel maps a raw model label onto the canonical vocabulary.
// Matching is case-insensitive; any unrecognized label falls back to neutral.
// The fallback is deliberate: the model is swappable and an unknown label is
// not an error condition.
func SentimentFromLabel(label string) Sentiment {
	switch strings.ToUpper(label) {
	case "POSITIVE":
		return SentimentPositive
	case "NEGATIVE":
		return SentimentNegative
	case "NEUTRAL":
		return SentimentNeutral
	default:
		return SentimentNeutral
	}
}

func (s Sentiment) String() string {
	return string(s)
}

// Valid reports whether s is one of the canonical values.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}
