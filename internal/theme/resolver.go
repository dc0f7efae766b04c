package theme

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/authkit/internal/logger"
)

// Override is an externally owned preference. The zero value carries no
// preference and leaves the Resolver in charge of its own state.
type Override struct {
	value Preference
	set   bool
}

// Controlled returns an Override holding p. An invalid p carries no
// preference, so it can never be applied or persisted.
func Controlled(p Preference) Override {
	if !p.Valid() {
		return Override{}
	}
	return Override{value: p, set: true}
}

// Uncontrolled returns the empty Override.
func Uncontrolled() Override {
	return Override{}
}

// Get returns the held preference and whether one is present.
func (o Override) Get() (Preference, bool) {
	return o.value, o.set
}

// Options configures a Resolver. Store, Signal and Attribute are optional;
// when nil the matching side effect is skipped. They are invoked while the
// Resolver holds its lock and must not call back into it.
type Options struct {
	Store     Store
	Signal    Signal
	Attribute Attribute

	// IncludeSystem selects the three-way toggle cycle.
	IncludeSystem bool
	Override      Override

	// OnChange is called after every toggle or Set with the new preference,
	// in both controlled and uncontrolled mode.
	OnChange func(Preference)
	// OnAppearance is called whenever the resolved appearance changes.
	OnAppearance func(Appearance)

	Logger *logger.Logger
}

// Resolver is the theme state machine. It is safe for concurrent use; OS
// signal deliveries may arrive from another goroutine.
type Resolver struct {
	mu sync.Mutex

	store         Store
	signal        Signal
	attribute     Attribute
	includeSystem bool
	onChange      func(Preference)
	onAppearance  func(Appearance)
	log           *logger.Logger

	internal   Preference
	override   Override
	applied    Preference
	appearance Appearance
	mounted    bool
	closed     bool

	unsubscribe func()
	activation  uint64
}

// New builds a Resolver. Nothing is read or applied until Mount.
func New(opts Options) *Resolver {
	return &Resolver{
		store:         opts.Store,
		signal:        opts.Signal,
		attribute:     opts.Attribute,
		includeSystem: opts.IncludeSystem,
		onChange:      opts.OnChange,
		onAppearance:  opts.OnAppearance,
		log:           opts.Logger,
		internal:      System,
		override:      opts.Override,
	}
}

// Initialize loads the persisted preference into internal state. Missing,
// invalid or unreadable values fall back to System.
func (r *Resolver) Initialize() Preference {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.internal = r.loadLocked()
	return r.internal
}

func (r *Resolver) loadLocked() Preference {
	if r.store == nil {
		return System
	}
	value, ok, err := r.store.Get(StoreKey)
	if err != nil {
		r.log.Warn(err, "theme preference unreadable, using system")
		return System
	}
	if !ok {
		return System
	}
	p, valid := ParsePreference(value)
	if !valid {
		r.log.WithField("value", value).Debug("ignoring invalid theme preference")
		return System
	}
	return p
}

// Mount initializes the resolver and applies the current preference. It
// returns the resolved appearance.
func (r *Resolver) Mount() Appearance {
	r.mu.Lock()
	if r.closed {
		a := r.appearance
		r.mu.Unlock()
		return a
	}
	r.internal = r.loadLocked()
	r.mounted = true
	prev := r.appearance
	r.syncLocked()
	a := r.appearance
	r.mu.Unlock()

	r.notifyAppearance(prev, a)
	return a
}

// Close releases any OS subscription. It is safe to call more than once and
// the resolver applies nothing afterwards.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
	r.closed = true
}

// Current is the preference in effect: the override when present, otherwise
// internal state.
func (r *Resolver) Current() Preference {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentLocked()
}

func (r *Resolver) currentLocked() Preference {
	if p, ok := r.override.Get(); ok {
		return p
	}
	return r.internal
}

// Next is the preference a toggle would move to.
func (r *Resolver) Next() Preference {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Advance(r.currentLocked(), r.includeSystem)
}

// IncludesSystem reports whether the toggle cycle contains System.
func (r *Resolver) IncludesSystem() bool {
	return r.includeSystem
}

// AccessibleLabel describes the toggle action, e.g. "Switch to dark theme".
func (r *Resolver) AccessibleLabel() string {
	return fmt.Sprintf("Switch to %s theme", r.Next())
}

// Effective is the appearance for the current preference.
func (r *Resolver) Effective() Appearance {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mounted && r.appearance != "" {
		return r.appearance
	}
	return Resolve(r.currentLocked(), r.prefersDarkLocked(r.currentLocked()))
}

// Subscribed reports whether an OS signal subscription is held.
func (r *Resolver) Subscribed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unsubscribe != nil
}

// Toggle advances from the current preference, records the result as
// internal state and notifies OnChange. In controlled mode nothing is applied
// until the owner passes the new value back through SetOverride.
func (r *Resolver) Toggle() Preference {
	r.mu.Lock()
	next := Advance(r.currentLocked(), r.includeSystem)
	prev := r.appearance
	r.internal = next
	r.syncLocked()
	a := r.appearance
	r.mu.Unlock()

	r.notifyAppearance(prev, a)
	if r.onChange != nil {
		r.onChange(next)
	}
	return next
}

// Set records p as internal state, like Toggle with an explicit target.
// Invalid preferences are ignored.
func (r *Resolver) Set(p Preference) bool {
	if !p.Valid() {
		return false
	}

	r.mu.Lock()
	prev := r.appearance
	r.internal = p
	r.syncLocked()
	a := r.appearance
	r.mu.Unlock()

	r.notifyAppearance(prev, a)
	if r.onChange != nil {
		r.onChange(p)
	}
	return true
}

// SetOverride replaces the externally owned preference and applies the
// result. OnChange is not called: the owner already knows.
func (r *Resolver) SetOverride(o Override) {
	r.mu.Lock()
	prev := r.appearance
	r.override = o
	r.syncLocked()
	a := r.appearance
	r.mu.Unlock()

	r.notifyAppearance(prev, a)
}

// syncLocked applies the current preference if it differs from the last one
// applied.
func (r *Resolver) syncLocked() {
	if !r.mounted || r.closed {
		return
	}
	current := r.currentLocked()
	if current == r.applied {
		return
	}
	r.applyLocked(current)
}

func (r *Resolver) applyLocked(p Preference) {
	r.applied = p
	if p != System {
		r.releaseLocked()
	}

	r.setAppearanceLocked(Resolve(p, r.prefersDarkLocked(p)))
	r.persistLocked(p)

	if p == System {
		r.subscribeLocked()
	}
	r.log.WithFields(map[string]any{"preference": string(p), "appearance": string(r.appearance)}).Debug("theme applied")
}

func (r *Resolver) prefersDarkLocked(p Preference) bool {
	if p != System || r.signal == nil {
		return false
	}
	return r.signal.PrefersDark()
}

func (r *Resolver) setAppearanceLocked(a Appearance) {
	r.appearance = a
	if r.attribute != nil {
		r.attribute.SetAppearance(a)
	}
}

func (r *Resolver) persistLocked(p Preference) {
	if r.store == nil {
		return
	}
	if err := r.store.Set(StoreKey, string(p)); err != nil {
		r.log.Warn(err, "theme preference not persisted")
	}
}

func (r *Resolver) subscribeLocked() {
	if r.signal == nil || r.unsubscribe != nil {
		return
	}
	r.activation++
	id := r.activation
	r.unsubscribe = r.signal.Subscribe(func(prefersDark bool) {
		r.handleSignal(id, prefersDark)
	})
	if r.unsubscribe == nil {
		r.unsubscribe = func() {}
	}
}

func (r *Resolver) releaseLocked() {
	if r.unsubscribe == nil {
		return
	}
	release := r.unsubscribe
	r.unsubscribe = nil
	// Deliveries already in flight for the old activation are dropped.
	r.activation++
	release()
}

func (r *Resolver) handleSignal(id uint64, prefersDark bool) {
	r.mu.Lock()
	if r.closed || r.unsubscribe == nil || id != r.activation || r.applied != System {
		r.mu.Unlock()
		return
	}
	prev := r.appearance
	r.setAppearanceLocked(Resolve(System, prefersDark))
	r.persistLocked(System)
	a := r.appearance
	r.mu.Unlock()

	r.log.WithField("appearance", string(a)).Debug("os appearance changed")
	r.notifyAppearance(prev, a)
}

func (r *Resolver) notifyAppearance(prev, next Appearance) {
	if r.onAppearance == nil || prev == next || next == "" {
		return
	}
	r.onAppearance(next)
}
