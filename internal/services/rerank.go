package services

import (
	"math"
	"sort"
	"strings"
)

// DefaultBaseRankWeight is the bucket width applied to relevance scores
// when grouping near-ties for the contact-completeness pass.
const DefaultBaseRankWeight = 10.0

// ReRankByContactCompleteness nudges results with more usable contact
// channels ahead of near-tied neighbours. Results are bucketed by rounded
// relevance score; within a bucket higher completeness sorts earlier, and
// bucket order follows first occurrence in the incoming list, so a
// lower-relevance result can never overtake a strictly higher-relevance
// one. Score-less rows (the pattern path) share a single bucket and are
// ordered by completeness alone.
func ReRankByContactCompleteness(results []*BusinessResult, baseRankWeight float64) {
	if len(results) < 2 {
		return
	}
	if baseRankWeight <= 0 {
		baseRankWeight = DefaultBaseRankWeight
	}

	bucketOf := func(r *BusinessResult) int {
		if r.FinalScore == nil {
			return math.MinInt32
		}
		return int(math.Round(*r.FinalScore / baseRankWeight))
	}

	order := make(map[int]int, len(results))
	for _, r := range results {
		b := bucketOf(r)
		if _, ok := order[b]; !ok {
			order[b] = len(order)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		bi, bj := bucketOf(results[i]), bucketOf(results[j])
		if bi != bj {
			return order[bi] < order[bj]
		}
		return ContactCompleteness(results[i]) > ContactCompleteness(results[j])
	})
}

// ContactCompleteness counts the present contact channels (0-4): phone,
// email, website, structured hours.
func ContactCompleteness(r *BusinessResult) int {
	n := 0
	if present(r.Phone) {
		n++
	}
	if present(r.Email) {
		n++
	}
	if present(r.Website) {
		n++
	}
	if hoursPresent(r.Hours) {
		n++
	}
	return n
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// hoursPresent treats empty JSON documents the same as no hours at all
func hoursPresent(s *string) bool {
	if s == nil {
		return false
	}
	switch strings.TrimSpace(*s) {
	case "", "null", "{}", "[]":
		return false
	}
	return true
}
