package router

import (
	"github.com/indigo-web/webfolder/http"
)

// Router turns a complete request into a response. It must always return a response:
// any failures of the router are expressed through the response itself. Routers are
// shared between connections, so OnRequest may be called concurrently.
type Router interface {
	OnRequest(request *http.Request) *http.Response
}
