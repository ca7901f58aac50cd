package art

import (
	"net/http"
	"strings"

	cca "gopkg.in/mineo/gocaa.v1"
)

// SetCAAClient sets the underlying CAAClient which will be used by the Client for
// downloading images.
func (c *Client) SetCAAClient(caac CAAClient) {
	c.caaClient = caac
}

// SetMusicBrainzAPIURL sets the MusicBrainz API URL.
func (c *Client) SetMusicBrainzAPIURL(apiURL string) {
	c.musicBrainzAPIHost = strings.TrimSuffix(apiURL, "/")
}

// SetCoverArtAPIURL sets the Cover Art Archive URL. The default gocaa client is
// pointed there too.
func (c *Client) SetCoverArtAPIURL(apiURL string) {
	c.coverArtAPIHost = strings.TrimSuffix(apiURL, "/")
	if caac, ok := c.caaClient.(*cca.CAAClient); ok {
		caac.BaseURL = c.coverArtAPIHost
	}
}

// SetHTTPClient replaces the http.DefaultClient used for the JSON APIs.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// SetObserver makes the Client report its progress to o. A nil o, including a nil
// *LogObserver, silences it.
func (c *Client) SetObserver(o Observer) {
	if lo, ok := o.(*LogObserver); o == nil || (ok && lo == nil) {
		o = nopObserver{}
	}
	c.observer = o
}
