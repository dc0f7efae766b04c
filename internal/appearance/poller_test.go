package appearance

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/authkit/internal/theme"
)

var (
	_ theme.Signal = (*Poller)(nil)
	_ theme.Signal = (*FileSignal)(nil)
)

type switchableQuery struct {
	dark atomic.Bool
}

func (q *switchableQuery) query() bool {
	return q.dark.Load()
}

type recorder struct {
	mu     sync.Mutex
	values []bool
}

func (r *recorder) record(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.values...)
}

func TestPollerNotifiesOnlyOnChange(t *testing.T) {
	q := &switchableQuery{}
	p := NewPoller(q.query, 0)
	rec := &recorder{}
	unsubscribe := p.Subscribe(rec.record)
	defer unsubscribe()

	require.False(t, p.Check())
	q.dark.Store(true)
	require.True(t, p.Check())
	require.False(t, p.Check())
	q.dark.Store(false)
	require.True(t, p.Check())

	require.Equal(t, []bool{true, false}, rec.snapshot())
}

func TestPollerDeliversInSubscriptionOrder(t *testing.T) {
	q := &switchableQuery{}
	p := NewPoller(q.query, 0)

	var mu sync.Mutex
	var order []string
	first := p.Subscribe(func(bool) { mu.Lock(); order = append(order, "first"); mu.Unlock() })
	second := p.Subscribe(func(bool) { mu.Lock(); order = append(order, "second"); mu.Unlock() })
	defer first()
	defer second()

	q.dark.Store(true)
	p.Check()
	require.Equal(t, []string{"first", "second"}, order)
}

func TestPollerUnsubscribeIsIdempotent(t *testing.T) {
	q := &switchableQuery{}
	p := NewPoller(q.query, time.Hour)
	rec := &recorder{}
	other := &recorder{}

	unsubscribe := p.Subscribe(rec.record)
	keep := p.Subscribe(other.record)
	require.True(t, p.Running())

	unsubscribe()
	unsubscribe()
	require.True(t, p.Running())

	q.dark.Store(true)
	p.Check()
	require.Empty(t, rec.snapshot())
	require.Equal(t, []bool{true}, other.snapshot())

	keep()
	require.False(t, p.Running())
	require.False(t, p.Check())
}

func TestPollerPollsInBackground(t *testing.T) {
	q := &switchableQuery{}
	p := NewPoller(q.query, 5*time.Millisecond)
	rec := &recorder{}
	unsubscribe := p.Subscribe(rec.record)
	defer unsubscribe()

	q.dark.Store(true)
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, []bool{true}, rec.snapshot())
}

func TestPollerWithoutIntervalDoesNotRun(t *testing.T) {
	p := NewPoller(func() bool { return true }, 0)
	unsubscribe := p.Subscribe(func(bool) {})
	defer unsubscribe()
	require.False(t, p.Running())
	require.True(t, p.PrefersDark())
}

func TestPollerDrivesResolver(t *testing.T) {
	q := &switchableQuery{}
	p := NewPoller(q.query, 0)
	var got []theme.Appearance
	r := theme.New(theme.Options{
		Signal:       p,
		OnAppearance: func(a theme.Appearance) { got = append(got, a) },
	})

	require.Equal(t, theme.AppearanceLight, r.Mount())
	q.dark.Store(true)
	p.Check()
	require.Equal(t, theme.AppearanceDark, r.Effective())

	r.Close()
	q.dark.Store(false)
	require.False(t, p.Check())
	require.Equal(t, []theme.Appearance{theme.AppearanceLight, theme.AppearanceDark}, got)
}
