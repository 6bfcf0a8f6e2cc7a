// Package kap reads the public-disclosure platform: the disclosure feed,
// the Borsa Istanbul company directory and index memberships. The feed is a
// JSON API; the directory and the index lists only exist as HTML.
package kap

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

const (
	baseURL        = "https://www.kap.org.tr"
	disclosuresURL = baseURL + "/tr/api/disclosures"
	companiesURL   = baseURL + "/tr/bist-sirketler"
	indexesURL     = baseURL + "/tr/Endeksler"
)

// MaxLookbackDays is the furthest back the disclosure feed answers for.
const MaxLookbackDays = 180

// Client fetches from the platform.
type Client struct {
	http *http.Client
}

// NewClient returns a ready Client.
func NewClient() *Client { return &Client{http: new(http.Client)} }

// The platform rejects repeated identical user agents the same way the
// brokerage portal does.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
}

func (c *Client) get(addr string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	agent := userAgents[rand.Intn(len(userAgents))]
	req.Header.Set("User-Agent", fmt.Sprintf("%s %d", agent, time.Now().Unix()))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
