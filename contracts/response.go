package contracts

//ResponseContract is interface of http response
type ResponseContract interface {
	Content() []byte
	Headers() map[string]string
	Header(key string) string
	SetHeader(key string, value string) ResponseContract
	SetHeaders(headers map[string]string) ResponseContract
	StatusCode() int
	SetStatusCode(code int) ResponseContract
	Handled() bool
}

type WithStatusCode interface {
	StatusCode() int
}

type WithContentType interface {
	ContentType() string
}

type WithHeaders interface {
	Headers() map[string]string
}
