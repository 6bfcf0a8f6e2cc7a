package isyatirim

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/borsatools/bist/date"
)

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If a fresh cached response is not found, it proceeds
// with the actual HTTP request and caches the new response if it's successful.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the cache key includes today, so entries expire daily.
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	if req.Method == http.MethodPost && req.Body != nil {
		body, err := req.GetBody()
		if err == nil {
			payload, _ := io.ReadAll(body)
			key = fmt.Sprintf("%s %s", key, payload)
		}
	}
	key = fmt.Sprintf("bist-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// newDailyCachingClient returns an http.Client that uses a disk cache where entries expire daily.
func newDailyCachingClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{base: http.DefaultTransport}
	return client
}

// The portal throttles clients that keep a constant User-Agent, so each
// request carries one picked from a small pool, suffixed with the current
// timestamp the way a browser cache-buster would be.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
}

func userAgent() string {
	return fmt.Sprintf("%s %d", userAgents[rand.Intn(len(userAgents))], time.Now().Unix())
}

// decodeEnvelope unmarshals a portal response into data, unwrapping the
// inconsistent envelopes the endpoints answer with: {"value": ...} on the
// data endpoints, {"d": ...} on the ajax ones (where d may itself be a
// JSON-encoded string), {"data": ...} on the chart ones, or no envelope at
// all.
func decodeEnvelope(body []byte, data interface{}) error {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return json.Unmarshal(body, data)
	}
	if raw, ok := env["value"]; ok {
		return json.Unmarshal(raw, data)
	}
	if raw, ok := env["d"]; ok {
		var doubled string
		if err := json.Unmarshal(raw, &doubled); err == nil {
			return json.Unmarshal([]byte(doubled), data)
		}
		return json.Unmarshal(raw, data)
	}
	if raw, ok := env["data"]; ok {
		return json.Unmarshal(raw, data)
	}
	return json.Unmarshal(body, data)
}

// wget performs an HTTP GET to the given address and returns the raw body.
func wget(client *http.Client, addr string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		addr = addr + "?" + params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent())
	return do(client, req)
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// enveloped JSON response body into the provided data structure.
func jwget(client *http.Client, addr string, params url.Values, data interface{}) error {
	body, err := wget(client, addr, params)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, data)
}

// jwpost performs an HTTP POST with a JSON payload and unmarshals the
// enveloped JSON response body into the provided data structure.
func jwpost(client *http.Client, addr string, payload interface{}, data interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, addr, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("Content-Type", "application/json")
	body, err := do(client, req)
	if err != nil {
		return err
	}
	return decodeEnvelope(body, data)
}

func do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("cannot http %s %v/%v: %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
