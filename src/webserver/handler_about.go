package webserver

import (
	"net/http"

	"github.com/ironsmile/coverlookup/src/version"
	"github.com/ironsmile/coverlookup/src/webserver/webutils"
)

// aboutHandler tells clients which version of the server they are talking to and
// how it introduces itself to the upstream services.
type aboutHandler struct {
	resp aboutResponse
}

// NewAboutHandler returns the HTTP handler which shows a JSON with information
// about the server.
func NewAboutHandler(useragent string) http.Handler {
	return &aboutHandler{
		resp: aboutResponse{
			ServerVersion: version.Version,
			UserAgent:     useragent,
		},
	}
}

func (h *aboutHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if err := webutils.JSONResponse(writer, h.resp); err != nil {
		webutils.JSONError(writer, err.Error(), http.StatusInternalServerError)
	}
}

type aboutResponse struct {
	ServerVersion string `json:"server_version"`
	UserAgent     string `json:"user_agent"`
}
