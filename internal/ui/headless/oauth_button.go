package headless

import (
	"fmt"
	"strings"
)

// Provider is a third-party identity provider.
type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderGitHub    Provider = "github"
	ProviderFacebook  Provider = "facebook"
	ProviderApple     Provider = "apple"
	ProviderTwitter   Provider = "twitter"
	ProviderMicrosoft Provider = "microsoft"
)

// Providers lists every supported provider in display order.
var Providers = []Provider{
	ProviderGoogle,
	ProviderGitHub,
	ProviderFacebook,
	ProviderApple,
	ProviderTwitter,
	ProviderMicrosoft,
}

var providerNames = map[Provider]string{
	ProviderGoogle:    "Google",
	ProviderGitHub:    "GitHub",
	ProviderFacebook:  "Facebook",
	ProviderApple:     "Apple",
	ProviderTwitter:   "Twitter",
	ProviderMicrosoft: "Microsoft",
}

// ParseProvider accepts provider ids case-insensitively.
func ParseProvider(value string) (Provider, bool) {
	p := Provider(strings.ToLower(strings.TrimSpace(value)))
	_, ok := providerNames[p]
	return p, ok
}

// DisplayName is the brand spelling of the provider.
func (p Provider) DisplayName() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return string(p)
}

// OAuthLoadingText replaces the label while a sign-in is in flight.
const OAuthLoadingText = "Loading..."

// OAuthButtonOptions configures an OAuthButton.
type OAuthButtonOptions struct {
	// Label overrides "Continue with <Provider>".
	Label     string
	Icon      string
	Loading   bool
	Disabled  bool
	FullWidth bool
	Focused   bool
}

// OAuthButton starts a sign-in with a third-party provider.
type OAuthButton struct {
	provider Provider
	options  OAuthButtonOptions
}

// NewOAuthButton creates a button for provider.
func NewOAuthButton(provider Provider, opts OAuthButtonOptions) *OAuthButton {
	return &OAuthButton{provider: provider, options: opts}
}

// Provider returns the provider.
func (b *OAuthButton) Provider() Provider {
	return b.provider
}

// SetLoading toggles the loading state.
func (b *OAuthButton) SetLoading(loading bool) {
	b.options.Loading = loading
}

// SetFocused toggles keyboard focus.
func (b *OAuthButton) SetFocused(focused bool) {
	b.options.Focused = focused
}

// Focused reports keyboard focus.
func (b *OAuthButton) Focused() bool {
	return b.options.Focused
}

// Loading reports the loading state.
func (b *OAuthButton) Loading() bool {
	return b.options.Loading
}

// Disabled is true while explicitly disabled or loading.
func (b *OAuthButton) Disabled() bool {
	return b.options.Disabled || b.options.Loading
}

// Label is the visible text.
func (b *OAuthButton) Label() string {
	if b.options.Loading {
		return OAuthLoadingText
	}
	if b.options.Label != "" {
		return b.options.Label
	}
	return "Continue with " + b.provider.DisplayName()
}

// Icon returns the configured icon, hidden while loading.
func (b *OAuthButton) Icon() string {
	if b.options.Loading {
		return ""
	}
	return b.options.Icon
}

// AccessibleLabel names the action for assistive technology.
func (b *OAuthButton) AccessibleLabel() string {
	return fmt.Sprintf("Sign in with %s", strings.ToLower(string(b.provider)))
}

// Attrs implements the attribute contract.
func (b *OAuthButton) Attrs() Attrs {
	return Attrs{
		"data-provider":   string(b.provider),
		"data-loading":    boolAttr(b.options.Loading),
		"data-full-width": boolAttr(b.options.FullWidth),
		"data-focused":    boolAttr(b.options.Focused),
		"aria-label":      b.AccessibleLabel(),
		"aria-busy":       boolAttr(b.options.Loading),
		"disabled":        boolAttr(b.Disabled()),
	}
}

// View renders the button as plain text.
func (b *OAuthButton) View() string {
	return "[ " + joinNonEmpty(" ", b.Icon(), b.Label()) + " ]"
}
