package plug

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/enorith/container"
	"github.com/enorith/exception"
	"github.com/reachfh/plug/content"
	"github.com/reachfh/plug/contracts"
	"github.com/reachfh/plug/errors"
	"github.com/valyala/fasthttp"
)

const Version = "v0.1.0"

type handlerType int

const DefaultConcurrency = 256 * 1024

const (
	HandlerFastHttp handlerType = iota
	HandlerNetHttp
)

//ContainerRegister builds the per-request container runtime
type ContainerRegister func(request contracts.RequestContract) *container.Container

//RequestResolver binds the request into its container runtime
type RequestResolver interface {
	ResolveRequest(r contracts.RequestContract, runtime *container.Container)
}

func timeMic() int64 {
	return time.Now().UnixNano() / int64(time.Microsecond)
}

type Kernel struct {
	fallback           PipeHandler
	middleware         []RequestMiddleware
	errorHandler       errors.ErrorHandler
	containerRegister  ContainerRegister
	requestResolver    RequestResolver
	tcpKeepAlive       bool
	RequestCurrency    int
	MaxRequestBodySize int
	OutputLog          bool
	Handler            handlerType
}

func (k *Kernel) handleFunc(f func() (request contracts.RequestContract, code int)) {
	var start int64
	if k.OutputLog {
		start = timeMic()
	}
	request, code := f()

	if k.OutputLog {
		end := timeMic()
		log.Printf("/ %s - [%s] %s (%d) <%.3fms>", request.GetClientIp(),
			request.GetMethod(), request.GetUri(), code, float64(end-start)/1000)
	}
}

func (k *Kernel) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	k.handleFunc(func() (request contracts.RequestContract, code int) {
		request = content.NewNetHttpRequest(r, w)
		resp := k.Handle(request)

		if resp != nil {
			if k.tcpKeepAlive {
				resp.SetHeader("Connection", "keep-alive")
			}

			resp.SetHeader("Server", fmt.Sprintf("plug/%s (net/http)", Version))

			headers := resp.Headers()
			for k, v := range headers {
				w.Header().Set(k, v)
			}
			if !resp.Handled() {
				// call after set headers, before write body
				w.WriteHeader(resp.StatusCode())
			}

			if wp, ok := resp.(io.WriterTo); ok {
				wp.WriteTo(w)
			} else {
				body := resp.Content()
				w.Write(body)
			}
			code = resp.StatusCode()
		}

		return
	})
}

func (k *Kernel) FastHttpHandler(ctx *fasthttp.RequestCtx) {
	k.handleFunc(func() (request contracts.RequestContract, code int) {
		request = content.NewFastHttpRequest(ctx)
		resp := k.Handle(request)

		if k.tcpKeepAlive {
			resp.SetHeader("Connection", "keep-alive")
		}

		ctx.Response.SetStatusCode(resp.StatusCode())
		if resp.Headers() != nil {
			for k, v := range resp.Headers() {
				ctx.Response.Header.Set(k, v)
			}
		}
		ctx.Response.Header.Set("Server", fmt.Sprintf("plug/%s (fasthttp)", Version))
		if wp, ok := resp.(io.WriterTo); ok {
			wp.WriteTo(ctx)
		} else {
			ctx.Write(resp.Content())
		}
		code = resp.StatusCode()

		return
	})
}

func (k *Kernel) SetMiddleware(ms []RequestMiddleware) {
	k.middleware = ms
}

func (k *Kernel) Use(m RequestMiddleware) *Kernel {
	k.middleware = append(k.middleware, m)
	return k
}

//Fallback sets the terminal handler invoked when no middleware produced
//a response, typically the host application's own dispatch
func (k *Kernel) Fallback(handler PipeHandler) *Kernel {
	k.fallback = handler
	return k
}

func (k *Kernel) KeepAlive(b ...bool) *Kernel {
	if len(b) > 0 {
		k.tcpKeepAlive = b[0]
	} else {
		k.tcpKeepAlive = true
	}
	return k
}

func (k *Kernel) IsKeepAlive() bool {
	return k.tcpKeepAlive
}

func (k *Kernel) SetErrorHandler(handler errors.ErrorHandler) {
	k.errorHandler = handler
}

func (k *Kernel) Handle(r contracts.RequestContract) (resp contracts.ResponseContract) {
	defer func() {
		if x := recover(); x != nil {
			resp = k.errorHandler.HandleError(x, r)
		}
	}()

	if k.containerRegister != nil {
		runtime := k.containerRegister(r)
		k.requestResolver.ResolveRequest(r, runtime)
	}

	resp = k.SendRequestThroughPipeline(r)

	if t, ok := resp.(*content.ErrorResponse); ok && t.E() != nil {
		resp = k.errorHandler.HandleError(t.E(), r)
	}

	if t, ok := resp.(exception.Exception); ok {
		resp = k.errorHandler.HandleError(t, r)
	}

	return resp
}

func (k *Kernel) SendRequestThroughPipeline(r contracts.RequestContract) contracts.ResponseContract {
	pipe := new(Pipeline)
	pipe.Send(r)
	for _, m := range k.middleware {
		pipe.ThroughMiddleware(m)
	}

	return pipe.Then(k.fallback)
}

func NewKernel(cr ContainerRegister, debug bool) *Kernel {
	k := new(Kernel)
	k.containerRegister = cr
	k.requestResolver = KernelRequestResolver{}
	k.errorHandler = &errors.StandardErrorHandler{
		Debug: debug,
	}
	k.RequestCurrency = DefaultConcurrency
	k.middleware = []RequestMiddleware{}
	k.fallback = func(r contracts.RequestContract) contracts.ResponseContract {
		return content.NotFoundResponse("not found")
	}
	return k
}

type KernelRequestResolver struct {
}

func (rr KernelRequestResolver) ResolveRequest(r contracts.RequestContract, runtime *container.Container) {
	runtime.RegisterSingleton(r)

	runtime.Singleton((*contracts.RequestContract)(nil), r)

	r.SetContainer(runtime)
}
