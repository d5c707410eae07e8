package crawler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const fixtureBaseURL = "https://example.com"

var fixtureTime = time.Date(2024, time.June, 1, 12, 34, 56, 0, time.UTC)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (fn roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return fn(req) }

func readFixture(t *testing.T, parts ...string) []byte {
	t.Helper()

	path := filepath.Join(append([]string{"..", "testdata"}, parts...)...)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read fixture: %s", path)

	return b
}

// newFixtureClient serves:
//
//	/ok      horoscope fixture page
//	/plain   minimal page without seo tags
//	/missing 404
//	/broken  500
//	/down    transport error
func newFixtureClient(t *testing.T) *http.Client {
	t.Helper()

	page := readFixture(t, "pages", "horoscope.html")

	return &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			switch req.URL.Path {
			case "/ok":
				return responseWithBody(http.StatusOK, page, http.Header{
					"Content-Type": []string{"text/html; charset=utf-8"},
				}), nil
			case "/plain":
				return responseWithBody(http.StatusOK, []byte("<html><body>hello there</body></html>"), nil), nil
			case "/broken":
				return responseWithBody(http.StatusInternalServerError, []byte("oops"), nil), nil
			case "/down":
				return nil, errors.New("connection refused")
			default:
				return responseWithBody(http.StatusNotFound, []byte("not found"), nil), nil
			}
		}),
	}
}

func responseWithBody(status int, body []byte, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}

	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }
