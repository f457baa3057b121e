package static

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/enorith/supports/collection"
	"github.com/reachfh/plug"
	"github.com/reachfh/plug/content"
	"github.com/reachfh/plug/contracts"
)

//Handle serves GET and HEAD requests below the mount prefix. Requests
//it does not claim, paths excluded by the filters and missing or
//directory targets go to the next handler; unsafe paths terminate the
//request with ErrInvalidPath
func (m *Middleware) Handle(r contracts.RequestContract, next plug.PipeHandler) contracts.ResponseContract {
	method := r.GetMethod()
	if method != "GET" && method != "HEAD" {
		return next(r)
	}

	rawPath, hasQuery := splitQuery(string(r.GetUri()))
	rest, ok := m.stripPrefix(rawPath)
	if !ok {
		return next(r)
	}

	segments, err := sanitizePath(rest)
	if err != nil {
		return content.ErrResponseFromError(err, 400, nil)
	}

	if !m.allowed(segments) {
		return next(r)
	}

	file, err := m.resolveFile(filepath.Join(append([]string{m.root}, segments...)...), r.HeaderString("Accept-Encoding"))
	if err != nil {
		return content.ErrResponseFromError(err, 500, nil)
	}
	if file == nil {
		return next(r)
	}

	etag, err := m.etag.Generate(file.path)
	if err != nil {
		return content.ErrResponseFromError(err, 500, nil)
	}

	cacheControl := m.cacheControl(hasQuery)

	// only caching metadata survives on a not-modified response
	if matchesETag(r.HeaderString("If-None-Match"), etag) {
		resp := content.NewResponse(nil, nil, 304)
		resp.SetHeader("ETag", etag)
		if cacheControl != "" {
			resp.SetHeader("Cache-Control", cacheControl)
		}
		return resp
	}

	var body []byte
	if method == "GET" {
		body, err = os.ReadFile(file.path)
		if err != nil {
			return content.ErrResponseFromError(err, 500, nil)
		}
	}

	resp := content.NewResponse(body, m.config.Headers, 200)
	if contentType := m.contentType(segments); contentType != "" {
		resp.SetHeader("Content-Type", contentType)
	}
	resp.SetHeader("ETag", etag)
	if cacheControl != "" {
		resp.SetHeader("Cache-Control", cacheControl)
	}
	if file.gzipped {
		resp.SetHeader("Content-Encoding", "gzip")
		mergeVary(resp, "Accept-Encoding")
	}
	if method == "HEAD" {
		resp.SetHeader("Content-Length", strconv.FormatInt(file.size, 10))
	}

	return resp
}

func (m *Middleware) stripPrefix(path string) (string, bool) {
	if m.prefix == "/" {
		return path, true
	}
	if !strings.HasPrefix(path, m.prefix) {
		return "", false
	}
	rest := path[len(m.prefix):]
	if rest != "" && rest[0] != '/' {
		return "", false
	}
	return rest, true
}

func splitQuery(uri string) (string, bool) {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		return uri[:i], i+1 < len(uri)
	}
	return uri, false
}

//mergeVary appends a token to the Vary header, keeping existing tokens
//and skipping the insert when the token is already present
func mergeVary(resp contracts.ResponseContract, value string) {
	vary := resp.Header("Vary")
	if vary == "" {
		resp.SetHeader("Vary", value)
		return
	}
	tokens := collection.Map(strings.Split(vary, ","), func(v string) string { return strings.TrimSpace(v) })
	if !collection.Contains(tokens, value) {
		resp.SetHeader("Vary", value+", "+vary)
	}
}
