// Package delimited provides delimiter detection and RFC 4180-style parsing
// for delimited text, the fallback format of the classifier.
package delimited

import "strings"

// Candidates are the delimiters considered by DetectDelimiter, in priority
// order. Ties keep the earlier candidate, so comma is the default when the
// input carries no signal.
var Candidates = []rune{',', ';', '\t', '|'}

// sampleLines is the number of non-empty lines inspected when scoring
// candidate delimiters. Tunable.
const sampleLines = 5

// DetectDelimiter guesses the most likely delimiter for text. For each
// candidate it counts occurrences on the first few non-empty lines and scores
// the candidate as mean/(variance+1): a high, consistent count wins, an
// inconsistent one is penalized, and a zero mean scores zero. There is no
// error case; with no signal the comma is returned.
func DetectDelimiter(text string) rune {
	var sample []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sample = append(sample, line)
		if len(sample) == sampleLines {
			break
		}
	}

	best := Candidates[0]
	bestScore := 0.0
	for _, cand := range Candidates {
		score := scoreDelimiter(sample, cand)
		if score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best
}

// scoreDelimiter rates how plausible cand is as the delimiter of the sampled
// lines.
func scoreDelimiter(sample []string, cand rune) float64 {
	if len(sample) == 0 {
		return 0
	}

	counts := make([]float64, len(sample))
	for i, line := range sample {
		counts[i] = float64(strings.Count(line, string(cand)))
	}

	mean := 0.0
	for _, c := range counts {
		mean += c
	}
	mean /= float64(len(counts))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, c := range counts {
		variance += (c - mean) * (c - mean)
	}
	variance /= float64(len(counts))

	// +1 guards the division and penalizes inconsistent per-line counts.
	return mean / (variance + 1)
}
