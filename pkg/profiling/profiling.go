// Package profiling mounts the runtime pprof handlers on an echo router.
package profiling

import (
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

const pathPrefix = "/debug/pprof"

var namedProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// RegisterPprofRoutes adds the pprof endpoints under /debug/pprof. They expose
// process internals and are only mounted when profiling is enabled.
func RegisterPprofRoutes(e *echo.Echo) {
	g := e.Group(pathPrefix)
	g.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	g.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	g.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	g.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))
	for _, name := range namedProfiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
