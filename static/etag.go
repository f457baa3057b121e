package static

import (
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
	"strings"
)

//ETagGenerator produces the validator for a served file. Generators
//must be deterministic for identical file content; their output is
//used verbatim, without quoting. Extra generator arguments belong in
//the implementing value itself
type ETagGenerator interface {
	Generate(path string) (string, error)
}

//GeneratorFunc adapts a function to the ETagGenerator interface
type GeneratorFunc func(path string) (string, error)

func (f GeneratorFunc) Generate(path string) (string, error) {
	return f(path)
}

//fileInfoETag is the built-in generator, hashing modification time and
//size into a quoted validator. It changes whenever either changes
type fileInfoETag struct{}

func (fileInfoETag) Generate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d", info.ModTime().UnixNano(), info.Size())

	return `"` + strconv.FormatUint(h.Sum64(), 16) + `"`, nil
}

//matchesETag performs the If-None-Match set membership test; the
//wildcard matches any validator
func matchesETag(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
