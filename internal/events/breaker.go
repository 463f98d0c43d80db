package events

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("event publishing suspended: circuit breaker is open")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

// BreakingPublisher stops calling a failing broker for ResetTimeout after
// MaxFailures consecutive errors, so requests do not each wait out the
// publish timeout during an outage.
type BreakingPublisher struct {
	next   Publisher
	config BreakerConfig
	now    func() time.Time

	mu                sync.Mutex
	state             BreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
}

func NewBreakingPublisher(next Publisher, config BreakerConfig) *BreakingPublisher {
	return &BreakingPublisher{
		next:   next,
		config: config,
		now:    time.Now,
	}
}

func (p *BreakingPublisher) Publish(ctx context.Context, msg *Message) error {
	if !p.allow() {
		return ErrCircuitOpen
	}

	if err := p.next.Publish(ctx, msg); err != nil {
		p.recordFailure()
		return err
	}

	p.recordSuccess()
	return nil
}

func (p *BreakingPublisher) Close() error {
	return p.next.Close()
}

func (p *BreakingPublisher) State() BreakerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *BreakingPublisher) allow() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == BreakerOpen && p.now().Sub(p.lastFailureTime) > p.config.ResetTimeout {
		p.state = BreakerHalfOpen
		p.halfOpenSuccesses = 0
	}

	return p.state != BreakerOpen
}

func (p *BreakingPublisher) recordSuccess() {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case BreakerHalfOpen:
		p.halfOpenSuccesses++
		if p.halfOpenSuccesses >= p.config.HalfOpenMaxSucc {
			p.state = BreakerClosed
			p.failures = 0
			p.halfOpenSuccesses = 0
		}
	case BreakerClosed:
		p.failures = 0
	}
}

func (p *BreakingPublisher) recordFailure() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lastFailureTime = p.now()

	switch p.state {
	case BreakerHalfOpen:
		p.state = BreakerOpen
		p.halfOpenSuccesses = 0
	case BreakerClosed:
		p.failures++
		if p.failures >= p.config.MaxFailures {
			p.state = BreakerOpen
		}
	}
}
