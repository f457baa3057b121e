package plug

import "github.com/reachfh/plug/contracts"

//RequestMiddleware request middleware
type RequestMiddleware interface {
	Handle(r contracts.RequestContract, next PipeHandler) contracts.ResponseContract
}

type MiddlewareGroup map[string][]RequestMiddleware

type middlewareChain []RequestMiddleware

func (mc middlewareChain) Handle(r contracts.RequestContract, next PipeHandler) contracts.ResponseContract {
	pipe := new(Pipeline)

	pipe.Send(r)
	for _, m := range mc {
		pipe.ThroughMiddleware(m)
	}
	return pipe.Then(next)
}

func MiddlewareChain(mid ...RequestMiddleware) middlewareChain {
	return mid
}

type FuncMiddleware struct {
	HandleFunc PipeFunc
}

func (fm FuncMiddleware) Handle(r contracts.RequestContract, next PipeHandler) contracts.ResponseContract {
	return fm.HandleFunc(r, next)
}
