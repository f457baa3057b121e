package static

import (
	"mime"
	"path/filepath"
)

//contentType resolves the Content-Type for a relative path: configured
//overrides by basename first, then by extension, then the platform
//mime table. Unknown types resolve to "" and the header stays unset
func (m *Middleware) contentType(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	base := segments[len(segments)-1]
	if t, ok := m.config.ContentTypes[base]; ok {
		return t
	}
	ext := filepath.Ext(base)
	if t, ok := m.config.ContentTypes[ext]; ok {
		return t
	}

	return mime.TypeByExtension(ext)
}
