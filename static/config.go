package static

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//Config configures one static mount. The zero value of the cache control
//fields disables the corresponding header
type Config struct {
	//Prefix is the url prefix this mount claims, e.g. "/public"
	Prefix string
	//Root is the directory files are served from, resolved to an
	//absolute path at construction
	Root string
	//Only lists exact relative paths allowed to be served
	Only []string
	//OnlyMatching lists substrings matched against the file basename
	OnlyMatching []string
	//Headers are set verbatim on every 200 response
	Headers map[string]string
	//ContentTypes overrides the content type by basename or by
	//extension (with leading dot)
	ContentTypes map[string]string
	//ETagGenerator replaces the built-in mtime+size etag
	ETagGenerator ETagGenerator
	//CacheControlVersioned is sent when the request carries a query string
	CacheControlVersioned string
	//CacheControlETag is sent on etagged responses without a query string
	CacheControlETag string
	//Gzip enables serving of precompressed ".gz" siblings
	Gzip bool
}

//Middleware serves files below Config.Root for requests under
//Config.Prefix and passes every other request to the next handler
type Middleware struct {
	config Config
	prefix string
	root   string
	etag   ETagGenerator
}

func New(config Config) (*Middleware, error) {
	root, err := filepath.Abs(config.Root)
	if err != nil {
		return nil, fmt.Errorf("static: can not resolve root %q: %w", config.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("static: root %q is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static: root %q is not a directory", root)
	}

	prefix := "/" + strings.Trim(config.Prefix, "/")

	etag := config.ETagGenerator
	if etag == nil {
		etag = fileInfoETag{}
	}

	return &Middleware{
		config: config,
		prefix: prefix,
		root:   root,
		etag:   etag,
	}, nil
}
