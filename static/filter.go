package static

import (
	"strings"

	"github.com/enorith/supports/collection"
)

//allowed reports whether the logical relative path may be served.
//With no filters configured every path is allowed; otherwise the path
//must be listed in Only or its basename must contain one of the
//OnlyMatching fragments. Filtering never sees variant suffixes
func (m *Middleware) allowed(segments []string) bool {
	if len(m.config.Only) == 0 && len(m.config.OnlyMatching) == 0 {
		return true
	}
	if len(segments) == 0 {
		return false
	}
	if collection.Contains(m.config.Only, strings.Join(segments, "/")) {
		return true
	}
	base := segments[len(segments)-1]
	for _, fragment := range m.config.OnlyMatching {
		if strings.Contains(base, fragment) {
			return true
		}
	}

	return false
}
