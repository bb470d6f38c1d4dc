// Package progress computes practice-history summaries — per-day score
// buckets, averages, and daily streaks — from attempt records the caller
// supplies. The package is pure aggregation: where those records live is the
// caller's concern.
package progress

import (
	"sort"
	"time"
)

// Attempt is one scored practice attempt.
type Attempt struct {
	// Score is the overall score of the attempt, in [0, 100].
	Score int

	// At is when the attempt happened.
	At time.Time
}

// DayBucket aggregates the attempts of a single calendar day.
type DayBucket struct {
	// Date is the day at midnight in the aggregation location.
	Date time.Time

	// Attempts is the number of attempts that day.
	Attempts int

	// AverageScore is the mean score that day.
	AverageScore float64
}

// Summary is a point-in-time view of a speaker's practice history.
type Summary struct {
	// TotalAttempts is the number of attempts across all days.
	TotalAttempts int

	// AverageScore is the mean score across all attempts. Zero when there
	// are no attempts.
	AverageScore float64

	// Days holds one bucket per calendar day with at least one attempt,
	// oldest first.
	Days []DayBucket

	// CurrentStreak counts consecutive practiced days ending at the
	// reference day (or the day before it, so a streak survives until the
	// day's first attempt).
	CurrentStreak int

	// BestStreak is the longest run of consecutive practiced days on record.
	BestStreak int
}

// Summarize buckets attempts by calendar day in loc and computes streaks
// relative to asOf. Attempts may be in any order. A nil loc defaults to UTC.
func Summarize(attempts []Attempt, asOf time.Time, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}

	s := Summary{TotalAttempts: len(attempts)}
	if len(attempts) == 0 {
		return s
	}

	byDay := make(map[time.Time]*DayBucket)
	scoreSum := 0
	for _, a := range attempts {
		scoreSum += a.Score
		day := midnight(a.At, loc)
		b, ok := byDay[day]
		if !ok {
			b = &DayBucket{Date: day}
			byDay[day] = b
		}
		b.Attempts++
		b.AverageScore += float64(a.Score)
	}
	s.AverageScore = float64(scoreSum) / float64(len(attempts))

	s.Days = make([]DayBucket, 0, len(byDay))
	for _, b := range byDay {
		b.AverageScore /= float64(b.Attempts)
		s.Days = append(s.Days, *b)
	}
	sort.Slice(s.Days, func(i, j int) bool { return s.Days[i].Date.Before(s.Days[j].Date) })

	s.CurrentStreak, s.BestStreak = streaks(s.Days, midnight(asOf, loc))
	return s
}

// midnight truncates t to the start of its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// streaks walks the sorted day buckets and returns the current and best runs
// of consecutive practiced days. The current streak counts a run ending on
// today or yesterday relative to today; anything older has lapsed.
func streaks(days []DayBucket, today time.Time) (current, best int) {
	run := 0
	var prev time.Time

	for _, b := range days {
		// AddDate rather than a 24h offset so DST transitions do not break runs.
		if run > 0 && b.Date.Equal(prev.AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = b.Date
	}

	if run > 0 && (prev.Equal(today) || prev.AddDate(0, 0, 1).Equal(today)) {
		current = run
	}
	return current, best
}
