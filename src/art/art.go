package art

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	cca "gopkg.in/mineo/gocaa.v1"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	// DefaultMusicBrainzAPIURL is the address of the public MusicBrainz web service.
	DefaultMusicBrainzAPIURL = "https://musicbrainz.org"

	// DefaultCoverArtAPIURL is the address of the public Cover Art Archive.
	DefaultCoverArtAPIURL = "https://coverartarchive.org"

	// DefaultTimeout is used for every request when NewClient is given a non-positive
	// timeout.
	DefaultTimeout = 10 * time.Second

	serviceMusicBrainz = "musicbrainz"
	serviceCoverArt    = "coverartarchive"

	// Responses larger than this are not something either API would send for the
	// queries made here.
	maxBodySize = 4 << 20
)

//counterfeiter:generate . MBIDResolver

// MBIDResolver finds the MusicBrainz release group ID for an album.
type MBIDResolver interface {
	ResolveMBID(ctx context.Context, artist, album string) (string, error)
}

//counterfeiter:generate . ArtworkResolver

// ArtworkResolver finds the URL of an image for a release group.
type ArtworkResolver interface {
	ResolveArtworkURL(ctx context.Context, mbid string) (string, error)
}

//counterfeiter:generate . Finder

// Finder defines a type which is capable of finding art for albums.
type Finder interface {
	ArtworkResolver

	// FindAlbumArt returns the URL of an image for a particular album by an
	// artist. The second return value is false when there is nothing to show.
	FindAlbumArt(ctx context.Context, artist, album string) (string, bool)

	// GetFrontImage downloads the front cover of a particular album by an artist.
	GetFrontImage(ctx context.Context, artist, album string) (Image, error)
}

// Client is a client for finding album artwork. Getting an image URL works in two
// steps:
//
// * Searches the MusicBrainz API for release groups matching the artist and album
// names. The first release group returned is used as is, there is no scoring.
//
// * Asks the Cover Art Archive for the images of this release group. The first image
// listed wins.
//
// The Client keeps no per-request state and is safe for concurrent use.
//
// It implements Finder.
type Client struct {
	useragent  string
	timeout    time.Duration
	httpClient *http.Client
	caaClient  CAAClient
	observer   Observer

	musicBrainzAPIHost string
	coverArtAPIHost    string
}

// NewClient returns fully configured Client.
//
// The useragent is sent with every request. MusicBrainz asks all applications to
// identify themselves in the form "Application/Version ( contact-url )" and blocks
// anonymous clients. The timeout bounds every single HTTP request.
func NewClient(useragent string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	caaClient := cca.NewCAAClient(useragent)
	caaClient.BaseURL = DefaultCoverArtAPIURL

	return &Client{
		useragent:          useragent,
		timeout:            timeout,
		httpClient:         http.DefaultClient,
		caaClient:          caaClient,
		observer:           nopObserver{},
		musicBrainzAPIHost: DefaultMusicBrainzAPIURL,
		coverArtAPIHost:    DefaultCoverArtAPIURL,
	}
}

// FindAlbumArt implements Finder. It is the Client composed with itself in an
// AlbumArtFinder.
func (c *Client) FindAlbumArt(ctx context.Context, artist, album string) (string, bool) {
	return NewAlbumArtFinder(c, c).FindAlbumArt(ctx, artist, album)
}

// getBody makes a GET request to reqURL and returns the whole response body. It
// only ever returns transport errors.
func (c *Client) getBody(
	ctx context.Context,
	service string,
	reqURL string,
) ([]byte, error) {
	c.observer.RequestStarted(service, reqURL)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportErr(service, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.useragent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportErr(service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, transportErr(service, fmt.Errorf("reading response: %w", err))
	}

	c.observer.ResponseReceived(service, resp.StatusCode, body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, transportErr(service, &statusError{cca.HTTPError{
			StatusCode: resp.StatusCode,
			URL:        req.URL,
		}})
	}

	return body, nil
}

// statusError is the cause of the transport error getBody returns for non-2xx
// responses.
type statusError struct {
	cca.HTTPError
}

func (e *statusError) Error() string {
	return fmt.Sprintf("API returned HTTP %s", e.HTTPError.Error())
}

func (e *statusError) Unwrap() error {
	return e.HTTPError
}

func (c *Client) fail(service string, err error) error {
	c.observer.Failed(service, err)
	return err
}
