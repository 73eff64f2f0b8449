package service

import (
	"math"
	"strings"
)

// fillerWords is the set counted against speech fluency.
var fillerWords = map[string]struct{}{
	"um":   {},
	"uh":   {},
	"like": {},
	"you":  {},
	"know": {},
}

// FluencyStats is the local speech-fluency analysis of an answer.
type FluencyStats struct {
	Fluency     float64  `json:"fluency"`
	FillerCount int      `json:"filler_count"`
	Notes       []string `json:"notes"`
}

// AnalyzeFluency derives a fluency score from answer text. Local, pure
// and always available. An empty answer scores 1.0.
func AnalyzeFluency(text string) FluencyStats {
	tokens := strings.Fields(text)

	filler := 0
	for _, token := range tokens {
		if _, ok := fillerWords[strings.ToLower(token)]; ok {
			filler++
		}
	}

	fluency := 1.0
	if len(tokens) > 0 {
		fluency = math.Max(0, 1.0-float64(filler)/float64(len(tokens)))
	}

	var notes []string
	if filler >= 3 {
		notes = append(notes, "High filler-word usage")
	}

	return FluencyStats{Fluency: fluency, FillerCount: filler, Notes: notes}
}
