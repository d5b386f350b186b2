package core

// Sentiment lexicons. Each entry maps a lowercase phrase to an integer
// weight; positive weights are {1,2,3}, negative weights are {-1,-2,-3}.
// Matching is case-insensitive substring counting over the assembled text.
var positiveLexicon = map[string]int{
	// Weight 3: emphatic praise
	"excellent":   3,
	"outstanding": 3,
	"exceptional": 3,
	"brilliant":   3,
	"superb":      3,
	"phenomenal":  3,

	// Weight 2: clear praise
	"great":      2,
	"impressive": 2,
	"strong":     2,
	"skilled":    2,
	"talented":   2,
	"thorough":   2,
	"confident":  2,
	"insightful": 2,

	// Weight 1: mild praise
	"good":       1,
	"solid":      1,
	"capable":    1,
	"competent":  1,
	"positive":   1,
	"articulate": 1,
	"prepared":   1,
}

var negativeLexicon = map[string]int{
	// Weight -3: disqualifying language
	"terrible":     -3,
	"awful":        -3,
	"unacceptable": -3,
	"incompetent":  -3,
	"dishonest":    -3,

	// Weight -2: clear criticism
	"poor":           -2,
	"weak":           -2,
	"struggled":      -2,
	"failed":         -2,
	"confused":       -2,
	"rude":           -2,
	"unprofessional": -2,
	"unprepared":     -2,

	// Weight -1: mild criticism
	"concern":  -1,
	"hesitant": -1,
	"unsure":   -1,
	"limited":  -1,
	"vague":    -1,
	"average":  -1,
}

// minSentimentDivisor dampens single-word spikes in short text: with fewer
// than three lexicon hits the sum is still divided by three, so one emphatic
// word cannot saturate the score on its own.
const minSentimentDivisor = 3

// scoreSentiment estimates text polarity in [-1,1] from the two lexicons.
// Text with no lexicon hits scores exactly 0.
func scoreSentiment(text string) float64 {
	if text == "" {
		return 0
	}

	var sum, matches int
	for word, weight := range positiveLexicon {
		if n := countOccurrences(text, word); n > 0 {
			sum += n * weight
			matches += n
		}
	}
	for word, weight := range negativeLexicon {
		if n := countOccurrences(text, word); n > 0 {
			sum += n * weight
			matches += n
		}
	}

	if matches == 0 {
		return 0
	}

	divisor := matches
	if divisor < minSentimentDivisor {
		divisor = minSentimentDivisor
	}
	return clampRange(float64(sum)/float64(divisor), -1, 1)
}
