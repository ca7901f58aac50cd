package art_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ironsmile/coverlookup/src/art"
	"github.com/ironsmile/coverlookup/src/assert"
)

// TestClientResolveArtworkURL checks that the first image of a release group is
// returned regardless of its type or approval.
func TestClientResolveArtworkURL(t *testing.T) {
	const mbid = "b1392450-e666-3926-a536-22c65f834433"

	caaHandler := func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/release-group/"+mbid {
			t.Errorf("unknown path requested: %s", req.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if ua := req.Header.Get("User-Agent"); ua != testUserAgent {
			t.Errorf("unexpected user agent `%s`", ua)
		}

		fmt.Fprint(w, `{
			"images": [
				{
					"approved": false,
					"back": true,
					"front": false,
					"image": "http://coverartarchive.org/release/1/back.jpg",
					"types": ["Back"]
				},
				{
					"approved": true,
					"front": true,
					"image": "http://coverartarchive.org/release/1/front.jpg",
					"types": ["Front"]
				}
			],
			"release": "https://musicbrainz.org/release/1"
		}`)
	}
	caaSrv := httptest.NewServer(http.HandlerFunc(caaHandler))
	defer caaSrv.Close()

	c := art.NewClient(testUserAgent, time.Second)
	c.SetCoverArtAPIURL(caaSrv.URL + "/")

	imageURL, err := c.ResolveArtworkURL(context.Background(), mbid)
	assert.NilErr(t, err)
	assert.Equal(t, "http://coverartarchive.org/release/1/back.jpg", imageURL)
}

// TestClientResolveArtworkURLErrors checks the error kinds reported by the artwork
// resolver.
func TestClientResolveArtworkURLErrors(t *testing.T) {
	tests := []struct {
		desc    string
		handler http.HandlerFunc
		kind    art.ErrorKind
	}{
		{
			desc: "no art for this release group",
			handler: func(w http.ResponseWriter, req *http.Request) {
				http.NotFound(w, req)
			},
			kind: art.KindNotFound,
		},
		{
			desc: "server error",
			handler: func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprint(w, `<html><body>Bad Gateway</body></html>`)
			},
			kind: art.KindTransport,
		},
		{
			desc: "malformed JSON",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"images": [`)
			},
			kind: art.KindDecode,
		},
		{
			desc: "images of the wrong type",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"images": {"image": "http://example.org/art.jpg"}}`)
			},
			kind: art.KindDecode,
		},
		{
			desc: "first image without URL",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"images": [{"front": true}]}`)
			},
			kind: art.KindDecode,
		},
		{
			desc: "empty images list",
			handler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"images": []}`)
			},
			kind: art.KindNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			caaSrv := httptest.NewServer(test.handler)
			defer caaSrv.Close()

			c := art.NewClient(testUserAgent, time.Second)
			c.SetCoverArtAPIURL(caaSrv.URL)

			imageURL, err := c.ResolveArtworkURL(context.Background(), "abc-123")
			assert.NotNilErr(t, err)
			assert.Equal(t, "", imageURL)

			kind, ok := art.KindOf(err)
			if !ok {
				t.Fatalf("expected a *art.ResolveError but got %T: %s", err, err)
			}
			assert.Equal(t, test.kind, kind, "error: %s", err)
		})
	}
}

// TestClientResolveArtworkURLEscapesMBID makes sure the release group ID cannot
// escape its path segment.
func TestClientResolveArtworkURLEscapesMBID(t *testing.T) {
	var requested string
	caaSrv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			requested = req.URL.EscapedPath()
			fmt.Fprint(w, `{"images": [{"image": "http://example.org/art.jpg"}]}`)
		},
	))
	defer caaSrv.Close()

	c := art.NewClient(testUserAgent, time.Second)
	c.SetCoverArtAPIURL(caaSrv.URL)

	_, err := c.ResolveArtworkURL(context.Background(), "../ws/2?x")
	assert.NilErr(t, err)
	assert.Equal(t, "/release-group/..%2Fws%2F2%3Fx", requested)
}
