package reel

import (
	"cmp"
	"errors"
	"math"
	"regexp"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

var qualityPattern = regexp.MustCompile(`(\d+)[pP]`)

// QualityScore extracts the numeric resolution from a quality label such as "720p".
// Missing or unrecognised labels score 0; numbers too large for an int saturate at math.MaxInt.
func QualityScore(quality *string) int {
	if quality == nil {
		return 0
	}
	match := qualityPattern.FindStringSubmatch(*quality)
	if match == nil {
		return 0
	}
	score, err := strconv.Atoi(match[1])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return score
}

// SelectBest picks the primary download: the highest scoring video, or the highest
// scoring media of any type when no video exists. Equal scores keep their input order.
// The input slice is never modified.
func SelectBest(medias []Media) (Media, bool) {
	if len(medias) == 0 {
		return Media{}, false
	}

	ranked := slices.Clone(medias)
	slices.SortStableFunc(ranked, func(a, b Media) int {
		return cmp.Compare(QualityScore(b.Quality), QualityScore(a.Quality))
	})

	if video, ok := lo.Find(ranked, Media.IsVideo); ok {
		return video, true
	}
	return ranked[0], true
}
