package art

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const coverArtReleaseGroupEndpoint = "%s/release-group/%s"

// ResolveArtworkURL asks the Cover Art Archive for the images of the release group
// `mbid` and returns the URL of the first one. Image types, sizes and approval
// status are not considered.
//
// The archive answers with 404 for release groups without any art. This is
// reported as a not-found error rather than a transport one.
func (c *Client) ResolveArtworkURL(ctx context.Context, mbid string) (string, error) {
	caaURL := fmt.Sprintf(
		coverArtReleaseGroupEndpoint,
		c.coverArtAPIHost,
		url.PathEscape(mbid),
	)

	body, err := c.getBody(ctx, serviceCoverArt, caaURL)
	if err != nil {
		var serr *statusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			err = notFoundErr(serviceCoverArt, serr)
		}
		return "", c.fail(serviceCoverArt, err)
	}

	var result caaImageList
	if err := json.Unmarshal(body, &result); err != nil {
		return "", c.fail(serviceCoverArt, decodeErr(
			serviceCoverArt,
			fmt.Errorf("decoding cover art archive JSON response: %w", err),
		))
	}

	if result.Images == nil {
		return "", c.fail(serviceCoverArt, decodeErr(
			serviceCoverArt,
			errors.New(`response has no "images" list`),
		))
	}

	if len(result.Images) < 1 {
		return "", c.fail(serviceCoverArt, notFoundErr(
			serviceCoverArt,
			fmt.Errorf("no album art for mbid %s", mbid),
		))
	}

	imageURL := result.Images[0].Image
	if imageURL == "" {
		return "", c.fail(serviceCoverArt, decodeErr(
			serviceCoverArt,
			errors.New("first image has an empty URL"),
		))
	}

	c.observer.Resolved(serviceCoverArt, imageURL)
	return imageURL, nil
}

type caaImageList struct {
	Images []caaImage `json:"images"`
}

type caaImage struct {
	Image string `json:"image"`
}
