package static

import (
	"net/url"
	"strings"

	"github.com/reachfh/plug/errors"
)

//ErrInvalidPath is returned for request paths that decode to something
//unsafe to join onto the mount root. It is a client error, never a 404
var ErrInvalidPath = errors.BadRequest("invalid path for static asset")

//sanitizePath decodes a raw url path into its relative segments,
//failing closed on anything that could escape the mount root:
//traversal segments, NUL bytes, embedded separators of either platform
//convention, drive letters and malformed percent escapes. An empty
//result denotes the mount root itself
func sanitizePath(p string) ([]string, error) {
	raw := strings.Split(p, "/")
	segments := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment == "" {
			continue
		}
		if strings.IndexByte(segment, 0) >= 0 {
			return nil, ErrInvalidPath
		}
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return nil, ErrInvalidPath
		}
		if decoded == "" {
			continue
		}
		if decoded == "." || decoded == ".." {
			return nil, ErrInvalidPath
		}
		if strings.ContainsAny(decoded, "/\\\x00") {
			return nil, ErrInvalidPath
		}
		if containsDriveLetter(decoded) {
			return nil, ErrInvalidPath
		}
		segments = append(segments, decoded)
	}

	return segments, nil
}

func containsDriveLetter(segment string) bool {
	for i := 1; i < len(segment); i++ {
		if segment[i] == ':' && isAlpha(segment[i-1]) {
			return true
		}
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
