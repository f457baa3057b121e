package static

//cacheControl derives the Cache-Control for a response. A query string
//marks the url as versioned and always selects the versioned policy,
//whether or not an etag was computed; plain requests get the etag
//policy. An empty policy emits no header
func (m *Middleware) cacheControl(hasQuery bool) string {
	if hasQuery {
		return m.config.CacheControlVersioned
	}
	return m.config.CacheControlETag
}
