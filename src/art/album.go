package art

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/pborman/uuid"
	cca "gopkg.in/mineo/gocaa.v1"
)

// Image is a downloaded cover image together with its mime type.
type Image = cca.CoverArtImage

// AlbumArtFinder chains an MBIDResolver and an ArtworkResolver. Any failure from
// either of them is hidden from its users: they only learn whether there is an
// image or not.
type AlbumArtFinder struct {
	mbids   MBIDResolver
	artwork ArtworkResolver
}

// NewAlbumArtFinder returns an AlbumArtFinder which first resolves release group IDs
// with `mbids` and then image URLs with `artwork`.
func NewAlbumArtFinder(mbids MBIDResolver, artwork ArtworkResolver) *AlbumArtFinder {
	return &AlbumArtFinder{
		mbids:   mbids,
		artwork: artwork,
	}
}

// FindAlbumArt returns the URL of an image for `album` by `artist`. The artwork
// resolver is never consulted when the release group could not be resolved.
func (f *AlbumArtFinder) FindAlbumArt(
	ctx context.Context,
	artist,
	album string,
) (string, bool) {
	mbid, err := f.mbids.ResolveMBID(ctx, artist, album)
	if err != nil {
		return "", false
	}

	imageURL, err := f.artwork.ResolveArtworkURL(ctx, mbid)
	if err != nil {
		return "", false
	}

	return imageURL, true
}

// GetFrontImage returns the front image for particular `album` from `artist` in its
// original size.
func (c *Client) GetFrontImage(
	ctx context.Context,
	artist,
	album string,
) (Image, error) {
	mbidStr, err := c.ResolveMBID(ctx, artist, album)
	if err != nil {
		return Image{}, err
	}

	mbid := cca.StringToUUID(mbidStr)
	if mbid == nil {
		return Image{}, c.fail(serviceCoverArt, decodeErr(
			serviceCoverArt,
			fmt.Errorf("release group id %q is not an UUID", mbidStr),
		))
	}

	img, err := c.getReleaseGroupFront(ctx, mbid)
	if err != nil {
		var httpErr cca.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return Image{}, c.fail(serviceCoverArt, notFoundErr(serviceCoverArt, err))
		}
		return Image{}, c.fail(serviceCoverArt, transportErr(serviceCoverArt, err))
	}

	c.observer.Resolved(serviceCoverArt, fmt.Sprintf(
		"front image for %s (%s, %d bytes)", mbidStr, img.Mimetype, len(img.Data),
	))
	return img, nil
}

// getReleaseGroupFront calls the CAAClient. The gocaa client takes neither a context
// nor a timeout, so the call runs in its own goroutine and is abandoned when ctx
// is done or the client timeout passes. The gocaa client also dereferences the
// HTTP response before checking the request error, so a failed connection panics
// in there.
func (c *Client) getReleaseGroupFront(ctx context.Context, mbid uuid.UUID) (Image, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type frontResult struct {
		img Image
		err error
	}

	c.observer.RequestStarted(serviceCoverArt, fmt.Sprintf(
		"%s/release-group/%s/front", c.coverArtAPIHost, mbid,
	))

	results := make(chan frontResult, 1)
	go func() {
		var res frontResult
		defer func() {
			if r := recover(); r != nil {
				res = frontResult{err: fmt.Errorf("cover art archive client: %v", r)}
			}
			results <- res
		}()

		res.img, res.err = c.caaClient.GetReleaseGroupFront(mbid, cca.ImageSizeOriginal)
	}()

	select {
	case res := <-results:
		return res.img, res.err
	case <-ctx.Done():
		return Image{}, fmt.Errorf("waiting for the front image: %w", ctx.Err())
	}
}
