package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"hiredai/models"
	"hiredai/utils"
)

// Learning-style categories.
const (
	CategoryShort     = "Short"
	CategoryElaborate = "Elaborate"
	CategoryRealistic = "Realistic"
)

// categoryOrder fixes iteration order over score maps so ties are
// resolved the same way on every run.
var categoryOrder = []string{CategoryShort, CategoryElaborate, CategoryRealistic}

// tieBreakPriority decides the dominant category when both score and
// answer count are tied.
var tieBreakPriority = []string{CategoryShort, CategoryRealistic, CategoryElaborate}

type optionWeight struct {
	Category string
	Weight   int
}

// answerWeights maps each questionnaire option to the category it
// signals and how strongly.
var answerWeights = map[string]map[string]optionWeight{
	"q1":  {"A": {CategoryShort, 2}, "B": {CategoryElaborate, 1}, "C": {CategoryRealistic, 0}},
	"q2":  {"A": {CategoryShort, 1}, "B": {CategoryElaborate, 2}, "C": {CategoryRealistic, 2}},
	"q3":  {"A": {CategoryShort, 2}, "B": {CategoryElaborate, 1}, "C": {CategoryRealistic, 1}},
	"q4":  {"A": {CategoryShort, 1}, "B": {CategoryElaborate, 2}, "C": {CategoryRealistic, 2}},
	"q5":  {"A": {CategoryShort, 1}, "B": {CategoryElaborate, 2}, "C": {CategoryRealistic, 1}},
	"q6":  {"A": {CategoryShort, 2}, "B": {CategoryElaborate, 1}, "C": {CategoryRealistic, 0}},
	"q7":  {"A": {CategoryShort, 1}, "B": {CategoryElaborate, 2}, "C": {CategoryRealistic, 1}},
	"q8":  {"A": {CategoryShort, 0}, "B": {CategoryElaborate, 2}, "C": {CategoryRealistic, 2}},
	"q9":  {"A": {CategoryShort, 2}, "B": {CategoryElaborate, 1}, "C": {CategoryRealistic, 1}},
	"q10": {"A": {CategoryShort, 1}, "B": {CategoryElaborate, 2}, "C": {CategoryRealistic, 2}},
}

// ErrNoAnswers is returned when the raw answers map is empty.
var ErrNoAnswers = errors.New("no answers provided")

// ClassifyAnswers scores a raw questionnaire answers map and returns
// the dominant learning style. Unrecognized questions or options are
// skipped; an all-unrecognized set still classifies deterministically.
func ClassifyAnswers(answers map[string]string) (models.LearningPathResult, error) {
	if len(answers) == 0 {
		return models.LearningPathResult{}, ErrNoAnswers
	}

	scores := map[string]int{CategoryShort: 0, CategoryElaborate: 0, CategoryRealistic: 0}
	counts := map[string]int{CategoryShort: 0, CategoryElaborate: 0, CategoryRealistic: 0}
	totalPossible := 0

	for q, a := range answers {
		key := strings.TrimSpace(q)
		ans := strings.ToUpper(strings.TrimSpace(a))
		options, ok := answerWeights[key]
		if !ok {
			continue
		}
		ow, ok := options[ans]
		if !ok {
			continue
		}
		scores[ow.Category] += ow.Weight
		counts[ow.Category]++
		totalPossible += maxOptionWeight(options)
	}

	// No recognized question contributed; assume every q-prefixed key
	// was a full-weight (2-point) question.
	if totalPossible == 0 {
		qKeys := 0
		for k := range answers {
			if strings.HasPrefix(strings.ToLower(strings.TrimSpace(k)), "q") {
				qKeys++
			}
		}
		totalPossible = 2 * maxInt(1, qKeys)
	}

	dominant := dominantCategory(scores, counts)
	percentage := roundedPercentage(scores[dominant], totalPossible)

	return buildResult(dominant, scores, percentage), nil
}

// PassThroughAssessment re-validates a classification computed
// elsewhere: scores are coerced to integers and the percentage is
// recomputed against the sum of all scores. This denominator
// intentionally differs from the fresh-computation path, which uses an
// approximate total-possible score.
func PassThroughAssessment(a models.Assessment) models.LearningPathResult {
	scores := map[string]int{
		CategoryShort:     int(a.Scores[CategoryShort]),
		CategoryElaborate: int(a.Scores[CategoryElaborate]),
		CategoryRealistic: int(a.Scores[CategoryRealistic]),
	}

	dominant := a.DominantStyle
	if dominant == "" {
		dominant = "Unknown"
	}

	total := scores[CategoryShort] + scores[CategoryElaborate] + scores[CategoryRealistic]
	percentage := 0
	if v, ok := scores[dominant]; ok {
		percentage = roundedPercentage(v, total)
	}

	return buildResult(dominant, scores, percentage)
}

func buildResult(dominant string, scores map[string]int, percentage int) models.LearningPathResult {
	return models.LearningPathResult{
		UserCategory:       dominant,
		Scores:             scores,
		Percentage:         percentage,
		Message:            fmt.Sprintf("User mapped to %s learning style", dominant),
		RecommendedCourses: utils.RecommendedCourses[dominant],
	}
}

func dominantCategory(scores, counts map[string]int) string {
	maxScore := scores[categoryOrder[0]]
	for _, c := range categoryOrder[1:] {
		if scores[c] > maxScore {
			maxScore = scores[c]
		}
	}
	var winners []string
	for _, c := range categoryOrder {
		if scores[c] == maxScore {
			winners = append(winners, c)
		}
	}
	if len(winners) == 1 {
		return winners[0]
	}

	maxCount := counts[winners[0]]
	for _, c := range winners[1:] {
		if counts[c] > maxCount {
			maxCount = counts[c]
		}
	}
	var countWinners []string
	for _, c := range winners {
		if counts[c] == maxCount {
			countWinners = append(countWinners, c)
		}
	}
	if len(countWinners) == 1 {
		return countWinners[0]
	}

	for _, p := range tieBreakPriority {
		for _, c := range countWinners {
			if c == p {
				return c
			}
		}
	}
	return countWinners[0]
}

// roundedPercentage clamps to [0, 100]; the approximate total-possible
// denominator can underestimate the true maximum.
func roundedPercentage(score, total int) int {
	p := int(math.Round(float64(score) / float64(maxInt(1, total)) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func maxOptionWeight(options map[string]optionWeight) int {
	best := 0
	for _, ow := range options {
		if ow.Weight > best {
			best = ow.Weight
		}
	}
	return best
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
