package appearance

import (
	"sync"
	"time"
)

// QueryFunc reports whether the OS currently prefers a dark appearance.
type QueryFunc func() bool

// Poller turns a QueryFunc into a theme.Signal by polling it while there is
// at least one subscriber. A non-positive interval disables polling; Check
// can still be called to sample on demand.
type Poller struct {
	query    QueryFunc
	interval time.Duration
	hub      hub

	mu   sync.Mutex
	stop chan struct{}
}

// NewPoller creates a Poller over query.
func NewPoller(query QueryFunc, interval time.Duration) *Poller {
	return &Poller{query: query, interval: interval}
}

// PrefersDark samples the query.
func (p *Poller) PrefersDark() bool {
	return p.query()
}

// Subscribe registers fn for changes. The returned function is idempotent.
func (p *Poller) Subscribe(fn func(bool)) func() {
	id, first := p.hub.add(fn)
	if first {
		p.hub.prime(p.query())
		p.start()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if p.hub.remove(id) {
				p.halt()
			}
		})
	}
}

// Check samples the query and notifies subscribers on change.
func (p *Poller) Check() bool {
	if p.hub.size() == 0 {
		return false
	}
	return p.hub.publish(p.query())
}

// Running reports whether the polling goroutine is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

func (p *Poller) start() {
	if p.interval <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	go p.run(p.stop)
}

func (p *Poller) halt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
}

func (p *Poller) run(stop <-chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.Check()
		}
	}
}
