package webserver

import (
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ironsmile/coverlookup/src/art"
	"github.com/ironsmile/coverlookup/src/webserver/webutils"
)

// AlbumArtworkHandler is a http.Handler which will find the artwork URL of a
// particular album. The album is given with the `artist` and `album` query
// parameters.
type AlbumArtworkHandler struct {
	finder art.Finder
	logger *log.Logger
}

// NewAlbumArtworkHandler returns a new AlbumArtworkHandler which looks up images
// with `finder`.
func NewAlbumArtworkHandler(finder art.Finder, logger *log.Logger) *AlbumArtworkHandler {
	return &AlbumArtworkHandler{
		finder: finder,
		logger: logger,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (aah AlbumArtworkHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	artist := strings.TrimSpace(query.Get("artist"))
	album := strings.TrimSpace(query.Get("album"))

	if artist == "" || album == "" {
		webutils.JSONError(
			writer,
			"both `artist` and `album` query parameters are required",
			http.StatusBadRequest,
		)
		return
	}

	imageURL, ok := aah.finder.FindAlbumArt(req.Context(), artist, album)
	if !ok {
		webutils.JSONError(writer, "artwork not found", http.StatusNotFound)
		return
	}

	if err := webutils.JSONResponse(writer, artworkResponse{URL: imageURL}); err != nil {
		aah.logger.Error("writing album artwork response", "err", err)
	}
}

type artworkResponse struct {
	URL string `json:"url"`
}
