package static

import (
	"os"
	"strings"
	"time"
)

//resolvedFile is the on-disk file chosen for one request, either the
//plain target or its precompressed sibling
type resolvedFile struct {
	path    string
	size    int64
	mtime   time.Time
	gzipped bool
}

//acceptsGzip scans an Accept-Encoding value for the gzip token or the
//wildcard, ignoring any weight parameters
func acceptsGzip(header string) bool {
	for _, token := range strings.Split(header, ",") {
		if i := strings.IndexByte(token, ';'); i >= 0 {
			token = token[:i]
		}
		token = strings.TrimSpace(token)
		if token == "*" || strings.EqualFold(token, "gzip") {
			return true
		}
	}
	return false
}

//resolveFile probes for the ".gz" sibling when the client accepts gzip,
//falling through to the plain file. A missing target or a directory
//resolves to nil; any other filesystem fault is returned as is
func (m *Middleware) resolveFile(fullPath, acceptEncoding string) (*resolvedFile, error) {
	if m.config.Gzip && acceptsGzip(acceptEncoding) {
		if info, err := os.Stat(fullPath + ".gz"); err == nil && info.Mode().IsRegular() {
			return &resolvedFile{
				path:    fullPath + ".gz",
				size:    info.Size(),
				mtime:   info.ModTime(),
				gzipped: true,
			}, nil
		}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}

	return &resolvedFile{
		path:  fullPath,
		size:  info.Size(),
		mtime: info.ModTime(),
	}, nil
}
