package webserver

import "net/http"

// The following are URL Path endpoints for certain API calls.
const (
	APIv1EndpointAbout               = "/v1/about"
	APIv1EndpointAlbumArtwork        = "/v1/album/artwork"
	APIv1EndpointReleaseGroupArtwork = "/v1/release-group/{mbid}/artwork"
)

// APIv1Methods defines on which HTTP methods APIv1 endpoints will respond to.
// It is an uri_path => list of HTTP methods map.
var APIv1Methods = map[string][]string{
	APIv1EndpointAbout:               {http.MethodGet},
	APIv1EndpointAlbumArtwork:        {http.MethodGet},
	APIv1EndpointReleaseGroupArtwork: {http.MethodGet},
}
