package theme

import (
	"errors"
	"sync"
)

type memoryStore struct {
	values map[string]string
	sets   []string
	getErr error
	setErr error
}

func newMemoryStore(initial map[string]string) *memoryStore {
	values := make(map[string]string)
	for k, v := range initial {
		values[k] = v
	}
	return &memoryStore{values: values}
}

func (s *memoryStore) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memoryStore) Set(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	s.sets = append(s.sets, value)
	return nil
}

var errUnavailable = errors.New("store unavailable")

// fakeSignal counts subscriptions and lets tests emit OS changes.
type fakeSignal struct {
	mu           sync.Mutex
	dark         bool
	listeners    map[int]func(bool)
	nextID       int
	subscribes   int
	unsubscribes int
}

func newFakeSignal(dark bool) *fakeSignal {
	return &fakeSignal{dark: dark, listeners: make(map[int]func(bool))}
}

func (s *fakeSignal) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *fakeSignal) Subscribe(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribes++
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.unsubscribes++
			delete(s.listeners, id)
		})
	}
}

func (s *fakeSignal) emit(dark bool) {
	s.mu.Lock()
	s.dark = dark
	fns := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}

func (s *fakeSignal) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

func (s *fakeSignal) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscribes, s.unsubscribes
}

type recordingAttribute struct {
	values []Appearance
}

func (a *recordingAttribute) SetAppearance(v Appearance) {
	a.values = append(a.values, v)
}

func (a *recordingAttribute) last() Appearance {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[len(a.values)-1]
}
