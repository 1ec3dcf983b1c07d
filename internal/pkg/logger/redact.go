package logger

import "strings"

// RedactEmail masks a contact address so raw input never lands in the
// logs verbatim. The domain part stays readable:
// "john.doe@example.com" becomes "jo***@example.com". Local parts of
// two characters or fewer are masked entirely, and anything not shaped
// like an address comes back fully masked.
func RedactEmail(addr string) string {
	local, dom, ok := strings.Cut(addr, "@")
	if !ok || strings.Contains(dom, "@") {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + dom
	}
	return "***@" + dom
}
