package llm

import (
	"context"
	"sync"
	"time"
)

// RateLimiter ограничивает частоту запросов к API скользящим окном в
// минуту. OpenAI режет бурсты, дешевле придержать запрос самим.
type RateLimiter struct {
	mu    sync.Mutex
	rpm   int
	calls []time.Time
}

func NewRateLimiter(rpm int) *RateLimiter {
	if rpm <= 0 {
		rpm = 20
	}
	return &RateLimiter{rpm: rpm}
}

// Wait блокирует, пока не освободится слот, или пока контекст не
// отменят.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		wait := r.tryAcquire()
		if wait <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// tryAcquire занимает слот и возвращает 0, либо время до освобождения
// самого старого слота.
func (r *RateLimiter) tryAcquire() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	fresh := r.calls[:0]
	for _, t := range r.calls {
		if t.After(cutoff) {
			fresh = append(fresh, t)
		}
	}
	r.calls = fresh

	if len(r.calls) < r.rpm {
		r.calls = append(r.calls, now)
		return 0
	}
	return r.calls[0].Sub(cutoff)
}
