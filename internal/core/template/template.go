// Package template fills {identifier} placeholders in rule actions.
//
// Identifiers are matched case-insensitively. A placeholder with no value, or
// an empty one, is left verbatim so callers can tell the context was insufficient.
package template

import (
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\{([A-Za-z_]+)\}`)

// Context maps placeholder names to values. Keys are stored lower-cased.
type Context map[string]string

// Set stores value under the lower-cased key.
func (c Context) Set(key, value string) {
	c[strings.ToLower(key)] = value
}

// Merge copies every entry of values into c.
func (c Context) Merge(values map[string]string) {
	for k, v := range values {
		c.Set(k, v)
	}
}

// Lookup returns the non-empty value for key, if any.
func (c Context) Lookup(key string) (string, bool) {
	v, ok := c[strings.ToLower(key)]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Fill replaces every resolvable placeholder in tpl.
func Fill(tpl string, ctx Context) string {
	return placeholder.ReplaceAllStringFunc(tpl, func(m string) string {
		if v, ok := ctx.Lookup(m[1 : len(m)-1]); ok {
			return v
		}
		return m
	})
}

// Placeholders lists the lower-cased identifiers referenced by tpl, in order, without duplicates.
func Placeholders(tpl string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range placeholder.FindAllStringSubmatch(tpl, -1) {
		key := strings.ToLower(m[1])
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// References reports whether tpl contains a placeholder for any of keys.
func References(tpl string, keys ...string) bool {
	for _, p := range Placeholders(tpl) {
		for _, k := range keys {
			if p == strings.ToLower(k) {
				return true
			}
		}
	}
	return false
}

// Unresolved lists the placeholders still present in a filled string.
func Unresolved(s string) []string {
	return Placeholders(s)
}
