package tests

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/enorith/supports/byt"
	"github.com/reachfh/plug/content"
	"github.com/reachfh/plug/contracts"
)

//FakeRequest drives kernel and middleware tests without a transport
type FakeRequest struct {
	content.SimpleRequest
	Path    string
	Method  string
	Body    []byte
	headers http.Header
}

func NewRequest(method, path string) *FakeRequest {
	return &FakeRequest{
		Path:    path,
		Method:  method,
		headers: http.Header{},
	}
}

//WithHeader sets a request header and returns the request for chaining
func (f *FakeRequest) WithHeader(key, value string) *FakeRequest {
	f.headers.Set(key, value)
	return f
}

func (f *FakeRequest) Context() context.Context {
	return context.Background()
}

func (f *FakeRequest) GetMethod() string {
	return f.Method
}

func (f *FakeRequest) GetURL() *url.URL {
	u, _ := url.Parse(f.Path)
	if u == nil {
		u = &url.URL{Path: f.Path}
	}
	return u
}

func (f *FakeRequest) GetPathBytes() []byte {
	p := f.Path
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return []byte(p)
}

func (f *FakeRequest) GetUri() []byte {
	return []byte(f.Path)
}

func (f *FakeRequest) Get(key string) []byte {
	return []byte(f.GetURL().Query().Get(key))
}

func (f *FakeRequest) GetValue(key ...string) contracts.InputValue {
	if len(key) > 0 {
		return f.Get(key[0])
	}
	return f.GetContent()
}

func (f *FakeRequest) Accepts() []byte {
	return f.Header("Accept")
}

func (f *FakeRequest) ExceptsJson() bool {
	return byt.Contains(f.Accepts(), []byte("/json"), []byte("+json"))
}

func (f *FakeRequest) RequestWithJson() bool {
	return byt.Contains(f.Header("Content-Type"), []byte("application/json"))
}

func (f *FakeRequest) IsXmlHttpRequest() bool {
	return f.HeaderString("X-Requested-With") == "XMLHttpRequest"
}

func (f *FakeRequest) GetInt(key string) (int, error) {
	v, err := byt.ToInt64(f.Get(key))
	return int(v), err
}

func (f *FakeRequest) GetInt64(key string) (int64, error) {
	return byt.ToInt64(f.Get(key))
}

func (f *FakeRequest) GetUint64(key string) (uint64, error) {
	return byt.ToUint64(f.Get(key))
}

func (f *FakeRequest) GetString(key string) string {
	return string(f.Get(key))
}

func (f *FakeRequest) GetClientIp() string {
	return "127.0.0.1"
}

func (f *FakeRequest) GetContent() []byte {
	return f.Body
}

func (f *FakeRequest) Unmarshal(to interface{}) error {
	return contracts.InputValue(f.GetContent()).Unmarshal(to)
}

func (f *FakeRequest) GetSignature() []byte {
	return []byte{}
}

func (f *FakeRequest) Header(key string) []byte {
	return []byte(f.HeaderString(key))
}

func (f *FakeRequest) HeaderString(key string) string {
	return f.headers.Get(key)
}

func (f *FakeRequest) SetHeader(key string, value []byte) contracts.RequestContract {
	f.headers.Set(key, string(value))
	return f
}

func (f *FakeRequest) SetHeaderString(key, value string) contracts.RequestContract {
	f.headers.Set(key, value)
	return f
}

func (f *FakeRequest) Authorization() []byte {
	return f.Header("Authorization")
}

func (f *FakeRequest) BearerToken() ([]byte, error) {
	auth := f.Authorization()
	if len(auth) < 7 {
		return nil, content.ErrInvalidRequest
	}
	return auth[7:], nil
}
