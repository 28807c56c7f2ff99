package simple

import (
	"github.com/indigo-web/webfolder/http"
	"github.com/indigo-web/webfolder/router"
)

type Handler func(*http.Request) *http.Response

type simpleRouter struct {
	handler Handler
}

// New wraps a single function into a router.
func New(handler Handler) router.Router {
	return simpleRouter{handler: handler}
}

func (s simpleRouter) OnRequest(request *http.Request) *http.Response {
	return s.handler(request)
}
