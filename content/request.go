package content

import (
	"github.com/buger/jsonparser"
	"github.com/enorith/container"
	. "github.com/reachfh/plug/contracts"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//SimpleRequest is the shared base of concrete request adapters,
//carrying the per-request container runtime
type SimpleRequest struct {
	container container.Interface
}

func (sr *SimpleRequest) SetContainer(ioc container.Interface) {
	sr.container = ioc
}

func (sr *SimpleRequest) GetContainer() container.Interface {
	return sr.container
}

func GetJsonValue(r RequestContract, key string) []byte {
	if r.RequestWithJson() {
		val, _, _, _ := jsonparser.Get(r.GetContent(), key)

		return val
	}

	return nil
}

type Request struct {
	RequestContract
}
