package webserver

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/ironsmile/coverlookup/src/art"
	"github.com/ironsmile/coverlookup/src/webserver/webutils"
)

// ReleaseGroupArtworkHandler is a http.Handler which returns the artwork URL for a
// MusicBrainz release group ID. Unlike AlbumArtworkHandler it tells apart missing
// artwork (404) from failures to reach or understand the Cover Art Archive (502).
type ReleaseGroupArtworkHandler struct {
	resolver art.ArtworkResolver
	logger   *log.Logger
}

// NewReleaseGroupArtworkHandler returns a new ReleaseGroupArtworkHandler.
func NewReleaseGroupArtworkHandler(
	resolver art.ArtworkResolver,
	logger *log.Logger,
) *ReleaseGroupArtworkHandler {
	return &ReleaseGroupArtworkHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// ServeHTTP is required by the http.Handler's interface
func (h ReleaseGroupArtworkHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	mbid, ok := vars["mbid"]
	if !ok || mbid == "" {
		http.NotFoundHandler().ServeHTTP(writer, req)
		return
	}

	imageURL, err := h.resolver.ResolveArtworkURL(req.Context(), mbid)
	if errors.Is(err, art.ErrNotFound) {
		webutils.JSONError(writer, "artwork not found", http.StatusNotFound)
		return
	} else if err != nil {
		h.logger.Warn("resolving release group artwork", "mbid", mbid, "err", err)
		webutils.JSONError(writer, "upstream lookup failed", http.StatusBadGateway)
		return
	}

	if err := webutils.JSONResponse(writer, artworkResponse{URL: imageURL}); err != nil {
		h.logger.Error("writing release group artwork response", "err", err)
	}
}
