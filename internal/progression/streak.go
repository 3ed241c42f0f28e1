package progression

import "github.com/wildlog/wildlog_api/internal/models"

// Streak is the daily-activity counter shared by profiles and swarms.
type Streak struct {
	LastActive models.Date `json:"last_active_date"`
	Current    int         `json:"current"`
	Longest    int         `json:"longest"`
}

// Advance moves the streak to today. Same-day activity changes nothing.
// Next-day activity extends the streak; any other gap restarts it at 1.
// The second result reports whether the streak was started or extended.
func (s Streak) Advance(today models.Date) (Streak, bool) {
	if !s.LastActive.IsZero() && s.LastActive.Equal(today) {
		return s, false
	}

	next := s
	if next.Current < 0 {
		next.Current = 0
	}
	switch {
	case !s.LastActive.IsZero() && s.LastActive.AddDays(1).Equal(today):
		next.Current++
	default:
		next.Current = 1
	}

	next.LastActive = today
	next.Longest = max(next.Longest, next.Current)
	return next, true
}

func profileStreak(p models.Profile) Streak {
	return Streak{LastActive: p.LastActiveDate, Current: p.CurrentStreak, Longest: p.LongestStreak}
}

func (s Streak) applyTo(p *models.Profile) {
	p.LastActiveDate = s.LastActive
	p.CurrentStreak = s.Current
	p.LongestStreak = s.Longest
}
