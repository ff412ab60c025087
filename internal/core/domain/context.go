package domain

import (
	"strings"
)

// Context is the credential record being resolved for a single request.
//
// Every field is optional. A nil pointer means the field was never supplied,
// which is distinct from a field explicitly set to the empty string.
type Context struct {
	// Protocol is the URL scheme, e.g. "https".
	Protocol *string
	// Host is the host name, with ":port" appended when a port was given.
	Host *string
	// Path is the resource path without leading or trailing slashes.
	Path *string
	// Username is the account name.
	Username *string
	// Password is the secret.
	Password *string
	// URL is the full resource URL. When set, Protocol, Host and Path are
	// derived from it.
	URL *string
	// Quit is a helper's request to stop consulting further helpers.
	Quit *bool
}

// URLParts holds the components extracted from a Context URL.
type URLParts struct {
	Protocol string
	Username string
	Host     string
	Path     string
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Value dereferences p, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// HasURL reports whether a non-empty URL is set.
func (c *Context) HasURL() bool {
	return c.URL != nil && *c.URL != ""
}

// HasCredentials reports whether both username and password are present.
func (c *Context) HasCredentials() bool {
	return c.Username != nil && c.Password != nil
}

// ShouldQuit reports whether a helper asked to stop the cascade.
func (c *Context) ShouldQuit() bool {
	return c.Quit != nil && *c.Quit
}

// ApplyURLParts overwrites protocol, host and path with the parsed URL
// components. Empty host and path become absent. A username embedded in the
// URL replaces the current one; otherwise the username is left untouched.
func (c *Context) ApplyURLParts(parts URLParts) {
	c.Protocol = String(parts.Protocol)
	c.Host = optional(parts.Host)
	c.Path = optional(strings.Trim(parts.Path, "/"))
	if parts.Username != "" {
		c.Username = String(parts.Username)
	}
}

// Merge copies every field present in src over the corresponding field of c.
// A URL in src replaces the URL of c; the caller is responsible for
// re-deriving the location fields from it. Quit is not merged.
func (c *Context) Merge(src *Context) {
	overrides := []struct {
		src *string
		dst **string
	}{
		{src.Path, &c.Path},
		{src.Protocol, &c.Protocol},
		{src.Host, &c.Host},
		{src.Username, &c.Username},
		{src.Password, &c.Password},
		{src.URL, &c.URL},
	}
	for _, o := range overrides {
		if o.src != nil {
			v := *o.src
			*o.dst = &v
		}
	}
}

// Clone returns a deep copy of c.
func (c *Context) Clone() *Context {
	if c == nil {
		return nil
	}
	out := &Context{}
	out.Merge(c)
	if c.Quit != nil {
		out.Quit = Bool(*c.Quit)
	}
	return out
}

// ToURL renders protocol://user@host/path, or "" when no protocol is known.
func (c *Context) ToURL() string {
	if c.Protocol == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(*c.Protocol)
	b.WriteString("://")
	if c.Username != nil {
		b.WriteString(*c.Username)
		b.WriteByte('@')
	}
	if c.Host != nil {
		b.WriteString(*c.Host)
	}
	if c.Path != nil {
		if !strings.HasPrefix(*c.Path, "/") {
			b.WriteByte('/')
		}
		b.WriteString(*c.Path)
	}
	return b.String()
}

// PromptLabel builds the human readable question for field, e.g.
// "Username for https://example.com: ".
func (c *Context) PromptLabel(field string) string {
	if u := c.ToURL(); u != "" {
		return field + " for " + u + ": "
	}
	return field + ": "
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
