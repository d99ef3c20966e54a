package store

import (
	"sort"
	"time"
)

// Stats summarizes the collection for dashboards
type Stats struct {
	Total         int            `json:"total"`
	ByStatus      map[Status]int `json:"by_status"`
	InterviewRate float64        `json:"interview_rate"` // share of jobs which reached interview or offer
	OfferRate     float64        `json:"offer_rate"`
	Monthly       []MonthCount   `json:"monthly"` // applications per month of dateApplied, oldest first
}

// MonthCount is a number of applications in a calendar month
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// Stats calculates counts and rates over all jobs. Jobs with unparsable dateApplied
// are counted everywhere except monthly buckets.
func (s *Store) Stats() Stats {
	jobs := s.List()

	res := Stats{Total: len(jobs), ByStatus: make(map[Status]int, 4), Monthly: []MonthCount{}}
	for _, st := range StatusValues {
		res.ByStatus[st] = 0
	}

	months := map[string]int{}
	for _, j := range jobs {
		res.ByStatus[j.Status]++
		if m, ok := monthOf(j.DateApplied); ok {
			months[m]++
		}
	}

	if res.Total > 0 {
		reached := res.ByStatus[StatusInterview] + res.ByStatus[StatusOffered]
		res.InterviewRate = float64(reached) / float64(res.Total)
		res.OfferRate = float64(res.ByStatus[StatusOffered]) / float64(res.Total)
	}

	for m, c := range months {
		res.Monthly = append(res.Monthly, MonthCount{Month: m, Count: c})
	}
	sort.Slice(res.Monthly, func(i, j int) bool { return res.Monthly[i].Month < res.Monthly[j].Month })
	return res
}

func monthOf(date string) (string, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}
