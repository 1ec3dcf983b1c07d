package identifier

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalid marks input that cannot be normalized into a canonical
// identifier. Errors returned by this package wrap it.
var ErrInvalid = errors.New("invalid identifier")

// Recognized LinkedIn profile-type path prefixes.
var linkedinPrefixes = map[string]bool{
	"company":  true,
	"in":       true,
	"school":   true,
	"showcase": true,
	"pub":      true,
}

// Normalize converts raw input into its canonical form for the given kind.
func Normalize(kind Kind, raw string) (Canonical, error) {
	var (
		value string
		err   error
	)
	switch kind {
	case KindDomain:
		value, err = NormalizeDomain(raw)
	case KindEmail:
		value, err = NormalizeEmail(raw)
	case KindLinkedin:
		value, err = NormalizeLinkedin(raw)
	case KindPlaceID, KindGoogleID:
		value, err = NormalizeOpaque(raw)
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrInvalid, kind)
	}
	if err != nil {
		return Canonical{}, err
	}
	return Canonical{Kind: kind, Value: value}, nil
}

// NormalizeDomain reduces a web address to its bare lowercase host.
// Scheme, path, query, fragment, port, a leading "www." and one trailing
// dot are all stripped; "https://www.Example.com/page?x=1" and
// "example.com." both come out as "example.com".
func NormalizeDomain(raw string) (string, error) {
	host := strings.ToLower(strings.TrimSpace(raw))
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimSuffix(host, ".")
	if host == "" {
		return "", fmt.Errorf("%w: domain %q normalizes to nothing", ErrInvalid, raw)
	}
	if strings.ContainsFunc(host, unicode.IsSpace) {
		return "", fmt.Errorf("%w: domain %q contains whitespace", ErrInvalid, raw)
	}
	return host, nil
}

// NormalizeEmail lowercases and trims an address. Validation is structural
// only: exactly one "@" with a non-empty local part and domain, and no
// whitespace anywhere. "a@b" is minimal but valid.
func NormalizeEmail(raw string) (string, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if addr == "" {
		return "", fmt.Errorf("%w: empty email", ErrInvalid)
	}
	if strings.ContainsFunc(addr, unicode.IsSpace) {
		return "", fmt.Errorf("%w: email %q contains whitespace", ErrInvalid, raw)
	}
	local, dom, ok := strings.Cut(addr, "@")
	if !ok {
		return "", fmt.Errorf("%w: email %q has no @", ErrInvalid, raw)
	}
	if local == "" || dom == "" {
		return "", fmt.Errorf("%w: email %q has an empty local or domain part", ErrInvalid, raw)
	}
	if strings.Contains(dom, "@") {
		return "", fmt.Errorf("%w: email %q has more than one @", ErrInvalid, raw)
	}
	return addr, nil
}

// NormalizeLinkedin extracts the profile path from any LinkedIn URL form.
// "https://www.linkedin.com/company/acme/" and the bare "company/acme"
// both canonicalize to "company/acme"; already-canonical input passes
// through unchanged. Hosts other than linkedin.com (or its subdomains)
// are rejected.
func NormalizeLinkedin(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "/")
	if s == "" {
		return "", fmt.Errorf("%w: empty linkedin url", ErrInvalid)
	}

	first, rest, _ := strings.Cut(s, "/")
	if isLinkedinHost(first) {
		s = strings.Trim(rest, "/")
	} else if strings.Contains(first, ".") {
		return "", fmt.Errorf("%w: %q is not a linkedin url", ErrInvalid, raw)
	}

	prefix, rest, ok := strings.Cut(s, "/")
	if !ok || !linkedinPrefixes[prefix] {
		return "", fmt.Errorf("%w: linkedin url %q has no recognizable profile path", ErrInvalid, raw)
	}
	slug, _, _ := strings.Cut(rest, "/")
	if slug == "" {
		return "", fmt.Errorf("%w: linkedin url %q has an empty profile slug", ErrInvalid, raw)
	}
	return prefix + "/" + slug, nil
}

func isLinkedinHost(host string) bool {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com")
}

// NormalizeOpaque trims surrounding whitespace and nothing else. Place IDs
// and Google identifiers are case-sensitive tokens, so no case folding.
func NormalizeOpaque(raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalid)
	}
	return v, nil
}
