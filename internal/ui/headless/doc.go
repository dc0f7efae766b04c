// Package headless contains the behaviour of the auth components without any
// theme. Each component keeps its own state, reports it through Attrs (the
// data-* and aria-* vocabulary of the web version) and renders plain text.
// internal/ui/components wraps these types to add presentation only.
package headless
