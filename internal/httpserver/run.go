package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s", addr)
	return srv.gin.Run(addr)
}
