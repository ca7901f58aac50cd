package art

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

const (
	musicBrainzReleaseGroupEndpoint   = "%s/ws/2/release-group/"
	musicBrainzReleaseGroupQueryValue = "artist:%s AND release:%s"
)

// ResolveMBID uses the MusicBrainz API to find the release group ID (or mbid) for
// a particular album. The first release group in the search result is used, no
// matter its score.
//
// The artist and album are put into the search query as they are. Escaping Lucene
// syntax in them is up to the caller.
func (c *Client) ResolveMBID(
	ctx context.Context,
	artist,
	album string,
) (string, error) {
	query := url.Values{}
	query.Set("query", fmt.Sprintf(musicBrainzReleaseGroupQueryValue, artist, album))
	query.Set("fmt", "json")

	mbURL := fmt.Sprintf(musicBrainzReleaseGroupEndpoint, c.musicBrainzAPIHost) +
		"?" + query.Encode()

	body, err := c.getBody(ctx, serviceMusicBrainz, mbURL)
	if err != nil {
		return "", c.fail(serviceMusicBrainz, err)
	}

	var result mbReleaseGroupList
	if err := json.Unmarshal(body, &result); err != nil {
		return "", c.fail(serviceMusicBrainz, decodeErr(
			serviceMusicBrainz,
			fmt.Errorf("decoding music brainz JSON API response: %w", err),
		))
	}

	if result.ReleaseGroups == nil {
		return "", c.fail(serviceMusicBrainz, decodeErr(
			serviceMusicBrainz,
			errors.New(`response has no "release-groups" list`),
		))
	}

	candidates := make([]string, 0, len(result.ReleaseGroups))
	for _, rg := range result.ReleaseGroups {
		candidates = append(candidates, fmt.Sprintf("%s (%s)", rg.ID, rg.Title))
	}
	c.observer.CandidatesFound(serviceMusicBrainz, candidates)

	if len(result.ReleaseGroups) < 1 {
		return "", c.fail(serviceMusicBrainz, notFoundErr(
			serviceMusicBrainz,
			fmt.Errorf("no release group for artist(%s) album(%s)", artist, album),
		))
	}

	mbid := result.ReleaseGroups[0].ID
	if mbid == "" {
		return "", c.fail(serviceMusicBrainz, decodeErr(
			serviceMusicBrainz,
			errors.New("first release group has an empty id"),
		))
	}

	c.observer.Resolved(serviceMusicBrainz, mbid)
	return mbid, nil
}

// The following are structures only used to decode the JSON response from the
// MusicBrainz API. And only the stuff we are interested in and nothing more.
type mbReleaseGroupList struct {
	ReleaseGroups []mbReleaseGroup `json:"release-groups"`
}

type mbReleaseGroup struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
