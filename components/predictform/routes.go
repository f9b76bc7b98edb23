package predictform

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPaths returns the page and API paths under basePath.
func MountPaths(basePath string, fns ...OptionFn) (page, api string) {
	opts := NewOptions(fns...)
	return mountPath(basePath, opts.RoutePath), mountPath(basePath, opts.APIPath)
}

// RegisterRoutes registers the page and API handlers under basePath on mux.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers both handlers using a pre-built Options
// value and returns the mounted patterns.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) ([]string, error) {
	if mux == nil {
		return nil, fmt.Errorf("predictform: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	page := mountPath(basePath, opts.RoutePath)
	api := mountPath(basePath, opts.APIPath)
	if page == api {
		return nil, fmt.Errorf("predictform: page and api share path %q", page)
	}
	mux.Handle(page, HandlerWithOptions(opts))
	mux.Handle(api, APIHandlerWithOptions(opts))
	return []string{page, api}, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
