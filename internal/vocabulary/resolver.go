package vocabulary

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gocolly/colly"
)

const (
	// BaseURL is the dictionary entry endpoint; the percent-encoded query
	// is appended to it.
	BaseURL = "https://www.vocabulary.com/dictionary/"

	resolveTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36"
)

// browserHeaders emulates an ordinary Chrome page view so the lookup is
// served like a regular visitor's request.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
	"Accept-Language":           "en-US,en;q=0.9",
	"Cache-Control":             "max-age=0",
	"Sec-Ch-Ua":                 `"Google Chrome";v="137", "Chromium";v="137", "Not/A)Brand";v="24"`,
	"Sec-Ch-Ua-Mobile":          "?0",
	"Sec-Ch-Ua-Platform":        `"macOS"`,
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Sec-Fetch-User":            "?1",
	"Upgrade-Insecure-Requests": "1",
}

// tokenPattern matches the quoted audio identifier embedded in the entry
// page markup, e.g. data-audio="C/BNUT8S5S2HDK". The scan runs over the raw
// body and the first match is authoritative; the pattern is narrow enough
// that anchoring it to a specific attribute has not been necessary.
var tokenPattern = regexp.MustCompile(`"([A-Z]/[A-Z0-9]+)"`)

// ErrNoToken is returned when the entry page loads but contains no audio token.
var ErrNoToken = errors.New("no audio token found")

// RequestError reports a failed page fetch, either a transport failure or a
// non-success HTTP status.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Resolver looks up the pronunciation audio token for a query on the
// dictionary site.
type Resolver struct {
	BaseURL string        // Dictionary base URL, query gets appended
	Timeout time.Duration // Request timeout for the page fetch
}

// NewResolver creates a resolver with the vocabulary.com defaults
func NewResolver() *Resolver {
	return &Resolver{
		BaseURL: BaseURL,
		Timeout: resolveTimeout,
	}
}

// Resolve fetches the dictionary entry page for query and extracts the audio
// token from its markup. It returns ErrNoToken if the page contains none and
// a *RequestError if the page could not be fetched.
func (r *Resolver) Resolve(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("query cannot be empty")
	}

	pageURL := r.BaseURL + url.PathEscape(query)

	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(r.Timeout)

	c.OnRequest(func(req *colly.Request) {
		for name, value := range browserHeaders {
			req.Headers.Set(name, value)
		}
	})

	var body []byte
	c.OnResponse(func(resp *colly.Response) {
		body = resp.Body
	})

	// Visit blocks until the response arrived and reports transport
	// failures and non-success statuses as errors.
	if err := c.Visit(pageURL); err != nil {
		return "", &RequestError{URL: pageURL, Err: err}
	}

	match := tokenPattern.FindSubmatch(body)
	if match == nil {
		return "", ErrNoToken
	}

	return string(match[1]), nil
}
