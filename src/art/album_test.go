package art_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ironsmile/coverlookup/src/art"
	"github.com/ironsmile/coverlookup/src/art/artfakes"
	"github.com/ironsmile/coverlookup/src/assert"
	"github.com/pborman/uuid"
	caa "gopkg.in/mineo/gocaa.v1"
)

// TestAlbumArtFinder checks that the finder chains its resolvers and never asks
// for artwork when there is no release group.
func TestAlbumArtFinder(t *testing.T) {
	ctx := context.Background()

	mbids := &artfakes.FakeMBIDResolver{}
	mbids.ResolveMBIDReturns("abc-123", nil)
	artwork := &artfakes.FakeArtworkResolver{}
	artwork.ResolveArtworkURLReturns("http://example.org/art.jpg", nil)

	finder := art.NewAlbumArtFinder(mbids, artwork)
	imageURL, ok := finder.FindAlbumArt(ctx, "Radiohead", "OK Computer")

	assert.Equal(t, true, ok)
	assert.Equal(t, "http://example.org/art.jpg", imageURL)

	_, artist, album := mbids.ResolveMBIDArgsForCall(0)
	assert.Equal(t, "Radiohead", artist)
	assert.Equal(t, "OK Computer", album)

	_, mbid := artwork.ResolveArtworkURLArgsForCall(0)
	assert.Equal(t, "abc-123", mbid)

	for _, kind := range []art.ErrorKind{
		art.KindTransport,
		art.KindDecode,
		art.KindNotFound,
	} {
		mbids := &artfakes.FakeMBIDResolver{}
		mbids.ResolveMBIDReturns("", &art.ResolveError{
			Service: "musicbrainz",
			Kind:    kind,
			Err:     errors.New("failed"),
		})
		artwork := &artfakes.FakeArtworkResolver{}

		finder := art.NewAlbumArtFinder(mbids, artwork)
		imageURL, ok := finder.FindAlbumArt(ctx, "Radiohead", "OK Computer")

		assert.Equal(t, false, ok, "MBID resolving failed with %s", kind)
		assert.Equal(t, "", imageURL)
		assert.Equal(t, 0, artwork.ResolveArtworkURLCallCount(),
			"artwork resolved after %s error", kind)
	}

	mbids = &artfakes.FakeMBIDResolver{}
	mbids.ResolveMBIDReturns("abc-123", nil)
	artwork = &artfakes.FakeArtworkResolver{}
	artwork.ResolveArtworkURLReturns("", &art.ResolveError{
		Service: "coverartarchive",
		Kind:    art.KindNotFound,
	})

	finder = art.NewAlbumArtFinder(mbids, artwork)
	imageURL, ok = finder.FindAlbumArt(ctx, "Radiohead", "OK Computer")
	assert.Equal(t, false, ok)
	assert.Equal(t, "", imageURL)
	assert.Equal(t, 1, artwork.ResolveArtworkURLCallCount())
}

// TestClientFindAlbumArt goes through the whole lookup against fake MusicBrainz and
// Cover Art Archive servers.
func TestClientFindAlbumArt(t *testing.T) {
	tests := []struct {
		desc        string
		mbHandler   http.HandlerFunc
		caaHandler  http.HandlerFunc
		closeMB     bool
		expectedURL string
		expectedOK  bool
		caaRequests int64
	}{
		{
			desc: "artwork found",
			mbHandler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"release-groups":[{"id":"abc-123"}]}`)
			},
			caaHandler: func(w http.ResponseWriter, req *http.Request) {
				if req.URL.Path != "/release-group/abc-123" {
					http.NotFound(w, req)
					return
				}
				fmt.Fprint(w, `{"images":[{"image":"http://example.org/art.jpg"}]}`)
			},
			expectedURL: "http://example.org/art.jpg",
			expectedOK:  true,
			caaRequests: 1,
		},
		{
			desc: "no release groups",
			mbHandler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"release-groups":[]}`)
			},
			caaHandler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"images":[{"image":"http://example.org/art.jpg"}]}`)
			},
			caaRequests: 0,
		},
		{
			desc: "no images",
			mbHandler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"release-groups":[{"id":"abc-123"}]}`)
			},
			caaHandler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"images":[]}`)
			},
			caaRequests: 1,
		},
		{
			desc:      "music brainz connection error",
			mbHandler: func(w http.ResponseWriter, req *http.Request) {},
			caaHandler: func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, `{"images":[{"image":"http://example.org/art.jpg"}]}`)
			},
			closeMB:     true,
			caaRequests: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			mbrainz := httptest.NewServer(test.mbHandler)
			defer mbrainz.Close()
			if test.closeMB {
				mbrainz.Close()
			}

			var caaRequests atomic.Int64
			caaSrv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, req *http.Request) {
					caaRequests.Add(1)
					test.caaHandler(w, req)
				},
			))
			defer caaSrv.Close()

			c := art.NewClient(testUserAgent, time.Second)
			c.SetMusicBrainzAPIURL(mbrainz.URL)
			c.SetCoverArtAPIURL(caaSrv.URL)

			imageURL, ok := c.FindAlbumArt(context.Background(), "Radiohead", "OK Computer")
			assert.Equal(t, test.expectedOK, ok)
			assert.Equal(t, test.expectedURL, imageURL)
			assert.Equal(t, test.caaRequests, caaRequests.Load(),
				"requests to the cover art archive")
		})
	}
}

// TestClientGetFrontImage checks the download of front images through the Cover
// Art Archive client.
func TestClientGetFrontImage(t *testing.T) {
	const releaseGroupID = "b1392450-e666-3926-a536-22c65f834433"

	releaseImage := []byte("image contents")

	var mbID atomic.Value
	mbID.Store(releaseGroupID)
	mbrainz := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprintf(w, `{"release-groups":[{"id":%q}]}`, mbID.Load())
		},
	))
	defer mbrainz.Close()

	c := art.NewClient(testUserAgent, time.Second)
	c.SetMusicBrainzAPIURL(mbrainz.URL)

	caaClient := &artfakes.FakeCAAClient{
		GetReleaseGroupFrontStub: func(mbid uuid.UUID, size int) (caa.CoverArtImage, error) {
			if !uuid.Equal(mbid, uuid.Parse(releaseGroupID)) {
				return caa.CoverArtImage{}, caa.HTTPError{
					StatusCode: http.StatusNotFound,
					URL:        &url.URL{},
				}
			}

			imgCopy := make([]byte, len(releaseImage))
			copy(imgCopy, releaseImage)

			return caa.CoverArtImage{
				Data:     imgCopy,
				Mimetype: "image/jpeg",
			}, nil
		},
	}
	c.SetCAAClient(caaClient)

	ctx := context.Background()
	img, err := c.GetFrontImage(ctx, "Radiohead", "OK Computer")
	assert.NilErr(t, err)

	if !bytes.Equal(releaseImage, img.Data) {
		t.Errorf("expected image `%s` but got `%s`", releaseImage, img.Data)
	}
	assert.Equal(t, "image/jpeg", img.Mimetype)

	_, size := caaClient.GetReleaseGroupFrontArgsForCall(0)
	assert.Equal(t, caa.ImageSizeOriginal, size)

	// A release group without a front image.
	mbID.Store("6518fd52-58bf-44a3-8150-00e7c3ffcae5")
	_, err = c.GetFrontImage(ctx, "Radiohead", "OK Computer")
	assert.ErrorIs(t, err, art.ErrNotFound)

	// Release group IDs which are not UUIDs never reach the archive.
	mbID.Store("abc-123")
	_, err = c.GetFrontImage(ctx, "Radiohead", "OK Computer")
	assert.ErrorIs(t, err, art.ErrDecode)
	assert.Equal(t, 2, caaClient.GetReleaseGroupFrontCallCount())

	// Panics in the archive client are transport errors.
	mbID.Store(releaseGroupID)
	caaClient.GetReleaseGroupFrontCalls(
		func(mbid uuid.UUID, size int) (caa.CoverArtImage, error) {
			var resp *http.Response
			return caa.CoverArtImage{}, fmt.Errorf("status %d", resp.StatusCode)
		},
	)
	_, err = c.GetFrontImage(ctx, "Radiohead", "OK Computer")
	assert.ErrorIs(t, err, art.ErrTransport)
}

// TestClientGetFrontImageTimeout makes sure a stalled Cover Art Archive does not
// block GetFrontImage for longer than the client timeout or the caller's context.
func TestClientGetFrontImageTimeout(t *testing.T) {
	const releaseGroupID = "b1392450-e666-3926-a536-22c65f834433"

	mbrainz := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			fmt.Fprintf(w, `{"release-groups":[{"id":%q}]}`, releaseGroupID)
		},
	))
	defer mbrainz.Close()

	release := make(chan struct{})
	caaSrv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			select {
			case <-release:
			case <-req.Context().Done():
			}
		},
	))
	defer caaSrv.Close()
	defer close(release)

	c := art.NewClient(testUserAgent, 50*time.Millisecond)
	c.SetMusicBrainzAPIURL(mbrainz.URL)
	c.SetCoverArtAPIURL(caaSrv.URL)

	started := time.Now()
	_, err := c.GetFrontImage(context.Background(), "Radiohead", "OK Computer")
	assert.ErrorIs(t, err, art.ErrTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	if elapsed := time.Since(started); elapsed > time.Second {
		t.Errorf("GetFrontImage returned after %s with a 50ms timeout", elapsed)
	}

	// The caller's context is honoured too.
	c = art.NewClient(testUserAgent, time.Minute)
	c.SetMusicBrainzAPIURL(mbrainz.URL)
	c.SetCoverArtAPIURL(caaSrv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	started = time.Now()
	_, err = c.GetFrontImage(ctx, "Radiohead", "OK Computer")
	assert.ErrorIs(t, err, art.ErrTransport)

	if elapsed := time.Since(started); elapsed > time.Second {
		t.Errorf("GetFrontImage returned after %s with a cancelled context", elapsed)
	}
}
