package linkedin

import (
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned when the daily call quota is exhausted.
// Callers are expected to degrade to sample listings instead of retrying.
var ErrRateLimited = errors.New("linkedin: daily api quota exhausted")

const DefaultDailyLimit = 100

type QuotaStatus struct {
	CallsMadeToday int    `json:"calls_made_today"`
	DailyLimit     int    `json:"daily_limit"`
	CallsRemaining int    `json:"calls_remaining"`
	ResetsAt       string `json:"resets_at"`
}

// DailyQuota is a process-wide call counter that resets when the UTC date
// advances. It is injected into the client rather than held as package
// state.
type DailyQuota struct {
	mu    sync.Mutex
	limit int
	calls int
	day   time.Time // UTC midnight of the counted day
	now   func() time.Time
}

func NewDailyQuota(limit int) *DailyQuota {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	q := &DailyQuota{limit: limit, now: time.Now}
	q.day = utcMidnight(q.now())
	return q
}

// Allow reports whether another call fits in today's budget and, if so,
// counts it.
func (q *DailyQuota) Allow() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.rollover()
	if q.calls >= q.limit {
		return false
	}
	q.calls++
	return true
}

func (q *DailyQuota) Status() QuotaStatus {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.rollover()
	return QuotaStatus{
		CallsMadeToday: q.calls,
		DailyLimit:     q.limit,
		CallsRemaining: max(0, q.limit-q.calls),
		ResetsAt:       "00:00 UTC",
	}
}

func (q *DailyQuota) rollover() {
	today := utcMidnight(q.now())
	if today.After(q.day) {
		q.calls = 0
		q.day = today
	}
}

func utcMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
