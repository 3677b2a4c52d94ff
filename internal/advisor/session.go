// Package advisor runs the release policy one day at a time for a seller who
// reports today's market price and gets back how much to sell.
package advisor

import (
	"errors"
	"math"
	"sync"

	"inventory-release/internal/model"
	"inventory-release/internal/policy"
)

// DefaultWarnFloor is the price below which Warn flags a likely typo.
const DefaultWarnFloor = 5.0

var ErrSessionClosed = errors.New("advisor session is closed")

// Advice is the recommendation for one day.
type Advice struct {
	Day             int         `json:"day"`
	Price           float64     `json:"price"`
	Quantity        float64     `json:"quantity"`
	Stage           model.Stage `json:"stage"`
	ExpectedRevenue float64     `json:"expected_revenue"`
	RemainingAfter  float64     `json:"remaining_after"`
}

// Session tracks stock on hand and the day counter across calls. It assumes the
// recommended quantity is actually sold each day.
type Session struct {
	mu        sync.Mutex
	engine    *policy.Engine
	remaining float64
	day       int
	closed    bool

	WarnFloor float64
}

func NewSession(params model.PolicyParams) (*Session, error) {
	eng, err := policy.NewEngine(params)
	if err != nil {
		return nil, err
	}
	return &Session{
		engine:    eng,
		remaining: eng.Params().Q,
		day:       1,
		WarnFloor: DefaultWarnFloor,
	}, nil
}

// Warn reports whether price looks implausibly low. It never blocks Advise.
func (s *Session) Warn(price float64) bool {
	return price < s.WarnFloor
}

// Advise returns today's recommendation and advances the session. The session
// closes after the last day or once stock runs out.
func (s *Session) Advise(price float64, isLast bool) (Advice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Advice{}, ErrSessionClosed
	}
	d, err := s.engine.DecideRemaining(price, s.remaining, s.day, isLast)
	if err != nil {
		return Advice{}, err
	}

	s.remaining = math.Max(0, s.remaining-d.Quantity)
	adv := Advice{
		Day:             s.day,
		Price:           price,
		Quantity:        d.Quantity,
		Stage:           d.Stage,
		ExpectedRevenue: d.Quantity * price,
		RemainingAfter:  s.remaining,
	}
	if isLast || s.remaining <= 0 {
		s.closed = true
	} else {
		s.day++
	}
	return adv, nil
}

func (s *Session) Remaining() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

func (s *Session) Day() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.day
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
