package mongodb

import (
	"regexp"
	"strings"
)

const srvPrefix = "mongodb+srv://"

var (
	placeholderRe = regexp.MustCompile(`<([^>]+)>`)
	portRe        = regexp.MustCompile(`:\d+`)
	encodedRe     = regexp.MustCompile(`%[0-9A-Fa-f]{2}`)
	// RFC 3986 userinfo-safe characters, plus backslash.
	userinfoSafeRe = regexp.MustCompile(`^[A-Za-z0-9\-._~!$&'()*+,;=:\\]+$`)
)

// SanitizeURI normalizes a user-supplied connection string into a form the
// driver will accept, without altering its semantic intent. It trims
// whitespace and strips copy-pasted template placeholders such as <password>.
// For mongodb+srv URIs, whose hosts are resolved through DNS and therefore
// must not carry explicit ports, it additionally removes every :port marker
// from the host list and percent-encodes unsafe userinfo credentials.
//
// The function is pure and never fails: worst case it returns the trimmed,
// bracket-stripped input unchanged. It is idempotent: credentials that
// already contain a percent-encoded triplet are never re-encoded.
func SanitizeURI(raw string) string {
	sanitized := strings.TrimSpace(raw)
	sanitized = placeholderRe.ReplaceAllString(sanitized, "$1")
	if !strings.HasPrefix(sanitized, srvPrefix) {
		return sanitized
	}

	// The authority region ends at the first path or query delimiter.
	rest := sanitized[len(srvPrefix):]
	endIdx := len(rest)
	if i := strings.IndexAny(rest, "/?"); i != -1 {
		endIdx = i
	}
	authority := rest[:endIdx]
	suffix := rest[endIdx:]

	// Split at the last @ so passwords containing @ stay in the userinfo.
	userinfo := ""
	hosts := authority
	if at := strings.LastIndex(authority, "@"); at != -1 {
		userinfo = authority[:at+1]
		hosts = authority[at+1:]
	}

	cleanedHosts := portRe.ReplaceAllString(hosts, "")
	sanitized = srvPrefix + userinfo + cleanedHosts + suffix

	if userinfo != "" {
		cred := strings.TrimSuffix(userinfo, "@")
		if colon := strings.Index(cred, ":"); colon != -1 {
			username := cred[:colon]
			password := cred[colon+1:]
			alreadyEncoded := encodedRe.MatchString(username) || encodedRe.MatchString(password)
			if !alreadyEncoded && (!userinfoSafeRe.MatchString(username) || !userinfoSafeRe.MatchString(password)) {
				sanitized = srvPrefix + encodeComponent(username) + ":" + encodeComponent(password) + "@" + cleanedHosts + suffix
			}
		}
	}

	return sanitized
}

// encodeComponent percent-encodes a userinfo component the way JavaScript's
// encodeURIComponent does: alphanumerics and -_.!~*'() pass through, every
// other byte becomes an uppercase %XX triplet.
func encodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if componentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

func componentSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
