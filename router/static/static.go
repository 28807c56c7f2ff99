package static

import (
	"fmt"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/webfolder/http"
	"github.com/indigo-web/webfolder/http/mime"
	"github.com/indigo-web/webfolder/http/status"
	"go.uber.org/zap"
)

const Server = "webfolder/1.0"

var htmlUTF8 = mime.WithCharset(mime.HTML, "utf-8")

// Router serves files from the web folder. It holds no mutable state, therefore is safe
// to be shared by all the connections.
type Router struct {
	root        string
	defaultPage string
	log         *zap.Logger
}

// New returns a router serving files from root. The root path is replaced by the
// defaultPage.
func New(root, defaultPage string, log *zap.Logger) (*Router, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("static: bad web root %q: %w", root, err)
	}

	return &Router{
		root:        absRoot,
		defaultPage: defaultPage,
		log:         log,
	}, nil
}

// Root returns the absolute path of the web folder.
func (r *Router) Root() string {
	return r.root
}

func (r *Router) OnRequest(request *http.Request) *http.Response {
	if !strcomp.EqualFold(request.Method, "GET") {
		return methodNotAllowed(request.Method)
	}

	path, ok := r.resolve(request.Path)
	if !ok {
		r.log.Debug("path is outside of the web root", zap.String("path", request.Path))
		return notFound()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		r.log.Debug("cannot read file", zap.String("file", path), zap.Error(err))
		return notFound()
	}

	return newResponse(status.OK).
		ContentType(mime.ByPath(path)).
		Bytes(content)
}

// resolve maps the request path onto a file within the web root. The query, if any, is
// ignored.
func (r *Router) resolve(requestPath string) (string, bool) {
	requestPath, _, _ = strings.Cut(requestPath, "?")
	if requestPath == "/" {
		requestPath = r.defaultPage
	}

	decoded, err := url.PathUnescape(requestPath)
	if err != nil || strings.IndexByte(decoded, 0) != -1 {
		return "", false
	}

	path := filepath.Join(r.root, filepath.FromSlash(strings.TrimLeft(decoded, "/")))
	rel, err := filepath.Rel(r.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return path, true
}

func newResponse(code status.Code) *http.Response {
	return http.Respond(code).Header("Server", Server)
}

func notFound() *http.Response {
	return newResponse(status.NotFound).
		ContentType(htmlUTF8).
		String(page(status.NotFound, "<p>The requested URL was not found on this server.</p>"))
}

func methodNotAllowed(method string) *http.Response {
	description := fmt.Sprintf(
		"<p>The method <code>%s</code> is inappropriate for this URL.</p>", html.EscapeString(method),
	)

	return newResponse(status.MethodNotAllowed).
		Header("Allow", "GET").
		ContentType(htmlUTF8).
		String(page(status.MethodNotAllowed, description))
}

func page(code status.Code, description string) string {
	title := fmt.Sprintf("%d %s", code, status.Text(code))

	return "<!DOCTYPE html>\n" +
		"<html><head>\n" +
		"<title>" + title + "</title>\n" +
		"</head><body>\n" +
		"<h1>" + title + "</h1>\n" +
		description + "\n" +
		"</body></html>\n"
}
