// internal/metrics/server.go
package metrics

import (
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Serve starts the debug listener with pprof and /metrics in the background.
// An empty addr disables it.
func Serve(addr string, c *Collector) {
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{}))
	go func() {
		log.Printf("debug listener on %s", addr)
		if err := http.ListenAndServe(addr, nil); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println(err)
		}
	}()
}
