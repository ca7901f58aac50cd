package webserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ironsmile/coverlookup/src/art/artfakes"
	"github.com/ironsmile/coverlookup/src/assert"
	"github.com/ironsmile/coverlookup/src/version"
	"github.com/ironsmile/coverlookup/src/webserver"
)

// TestServerLifecycle starts a real server, makes a request to it and stops it.
func TestServerLifecycle(t *testing.T) {
	finder := &artfakes.FakeFinder{}
	finder.FindAlbumArtReturns("http://example.org/art.jpg", true)

	srv := webserver.NewServer(webserver.Config{
		Listen:       "127.0.0.1:0",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		UserAgent:    "coverlookup/testing",
	}, finder, log.New(io.Discard))

	assert.NilErr(t, srv.Serve())

	resp, err := http.Get("http://" + srv.Addr() + "/v1/about")
	assert.NilErr(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var about struct {
		ServerVersion string `json:"server_version"`
		UserAgent     string `json:"user_agent"`
	}
	assert.NilErr(t, json.NewDecoder(resp.Body).Decode(&about))
	assert.Equal(t, version.Version, about.ServerVersion)
	assert.Equal(t, "coverlookup/testing", about.UserAgent)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NilErr(t, srv.Stop(ctx))
	assert.NilErr(t, srv.Wait())

	_, err = http.Get("http://" + srv.Addr() + "/v1/about")
	assert.NotNilErr(t, err, "server still answering after Stop")
}

// TestServerListenError checks that Serve reports addresses it cannot use.
func TestServerListenError(t *testing.T) {
	srv := webserver.NewServer(webserver.Config{
		Listen: "127.0.0.1:-1",
	}, &artfakes.FakeFinder{}, log.New(io.Discard))

	assert.NotNilErr(t, srv.Serve())
}
