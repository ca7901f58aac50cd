// Package webserver exposes the album artwork lookups over HTTP.
package webserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/ironsmile/coverlookup/src/art"
)

// Config holds the settings for the Server.
type Config struct {
	Listen       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	UserAgent    string
}

// Server represents our webserver. It will be controlled from here.
type Server struct {
	cfg    Config
	finder art.Finder
	logger *log.Logger

	// WG used in Server.Wait to sync with server's end
	wg sync.WaitGroup

	// The actual http.Server doing the HTTP work
	httpSrv *http.Server

	// The server's net.Listener. Used in Server.Addr.
	listener net.Listener

	// The reason the server stopped serving. Returned by Server.Wait.
	reason error
}

// NewServer returns a new Server using the supplied configuration cfg. The returned
// server is ready and calling its Serve method will start it.
func NewServer(cfg Config, finder art.Finder, logger *log.Logger) *Server {
	return &Server{
		cfg:    cfg,
		finder: finder,
		logger: logger,
	}
}

// NewRouter returns the handler with all API endpoints attached.
func NewRouter(finder art.Finder, useragent string, logger *log.Logger) http.Handler {
	router := mux.NewRouter()
	router.StrictSlash(true)

	handlers := map[string]http.Handler{
		APIv1EndpointAbout:               NewAboutHandler(useragent),
		APIv1EndpointAlbumArtwork:        NewAlbumArtworkHandler(finder, logger),
		APIv1EndpointReleaseGroupArtwork: NewReleaseGroupArtworkHandler(finder, logger),
	}

	for path, handler := range handlers {
		router.Handle(path, handler).Methods(APIv1Methods[path]...)
	}

	return router
}

// Serve starts listening on the configured address and serves requests in the
// background. It returns once the server is ready to accept connections. Trying to
// call this method more than once for the same server will result in panic.
func (srv *Server) Serve() error {
	if srv.httpSrv != nil {
		panic("Second Server.Serve call for the same server")
	}

	srv.httpSrv = &http.Server{
		Addr:         srv.cfg.Listen,
		Handler:      NewRouter(srv.finder, srv.cfg.UserAgent, srv.logger),
		ReadTimeout:  srv.cfg.ReadTimeout,
		WriteTimeout: srv.cfg.WriteTimeout,
	}

	lsn, err := net.Listen("tcp", srv.cfg.Listen)
	if err != nil {
		return err
	}
	srv.listener = lsn

	srv.logger.Info("webserver started", "address", lsn.Addr().String())

	srv.wg.Add(1)
	go func() {
		defer srv.wg.Done()

		err := srv.httpSrv.Serve(lsn)
		if !errors.Is(err, http.ErrServerClosed) {
			srv.reason = err
		}
		srv.logger.Info("webserver stopped")
	}()

	return nil
}

// Addr returns the address the server is listening on. It is only meaningful
// after Serve returned successfully.
func (srv *Server) Addr() string {
	if srv.listener == nil {
		return ""
	}
	return srv.listener.Addr().String()
}

// Stop shuts down the webserver, waiting for active requests until ctx is done.
func (srv *Server) Stop(ctx context.Context) error {
	if srv.httpSrv == nil {
		return nil
	}
	return srv.httpSrv.Shutdown(ctx)
}

// Wait syncs whoever called this with the server's stop. It returns the reason
// the server stopped unless it was a call to Stop.
func (srv *Server) Wait() error {
	srv.wg.Wait()
	return srv.reason
}
