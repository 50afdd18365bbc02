package usecase

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Extraction regexes for model output that is not clean JSON
var (
	jsonArrayRegex = regexp.MustCompile(`\[[^\[\]]*\]`)
	digitRunRegex  = regexp.MustCompile(`\d+`)
)

// idExtractionStrategy attempts to pull product IDs out of raw model text.
type idExtractionStrategy func(text string) ([]int, bool)

// Strategies are tried in order; first success wins.
var idExtractionStrategies = []idExtractionStrategy{
	parseDirectJSONArray,
	parseEmbeddedJSONArray,
	parseDigitRuns,
}

// ExtractProductIDs parses a model response into a product ID list,
// tolerating a pure JSON array, a JSON array embedded in prose, or a bare
// run of numbers. Returns nil when no strategy recognizes anything.
func ExtractProductIDs(raw string) []int {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	for _, strategy := range idExtractionStrategies {
		if ids, ok := strategy(text); ok {
			return ids
		}
	}
	return nil
}

func parseDirectJSONArray(text string) ([]int, bool) {
	var values []float64
	if err := json.Unmarshal([]byte(text), &values); err != nil {
		return nil, false
	}
	return finiteIDs(values), true
}

func parseEmbeddedJSONArray(text string) ([]int, bool) {
	match := jsonArrayRegex.FindString(text)
	if match == "" {
		return nil, false
	}
	var values []float64
	if err := json.Unmarshal([]byte(match), &values); err != nil {
		return nil, false
	}
	return finiteIDs(values), true
}

func parseDigitRuns(text string) ([]int, bool) {
	runs := digitRunRegex.FindAllString(text, -1)
	if len(runs) == 0 {
		return nil, false
	}
	ids := make([]int, 0, len(runs))
	for _, run := range runs {
		if value, err := strconv.Atoi(run); err == nil {
			ids = append(ids, value)
		}
	}
	return ids, len(ids) > 0
}

func finiteIDs(values []float64) []int {
	ids := make([]int, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		ids = append(ids, int(v))
	}
	return ids
}
