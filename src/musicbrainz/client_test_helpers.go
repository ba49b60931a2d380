package musicbrainz

import "net/http"

// SetAPIURL sets the MusicBrainz API URL. Only useful for tests.
func (c *Client) SetAPIURL(apiURL string) {
	c.apiURL = apiURL
}

// SetHTTPClient sets the HTTP client used for making requests. Useful for tests and
// for changing the request timeout.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}
