package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

const (
	// DefaultTimeout bounds a single request including the body read.
	DefaultTimeout = 15 * time.Second
	// DefaultUserAgent identifies the crawler as a desktop browser to avoid trivial bot blocking.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0 Safari/537.36"

	transportErrorPrefix = "ERROR: "
)

var errNilClient = errors.New("http client is required")

// Kind classifies a fetch outcome.
type Kind int

const (
	// KindSuccess is a 2xx response with a decoded body.
	KindSuccess Kind = iota
	// KindHTTPError is a response with any other status code.
	KindHTTPError
	// KindTransportError means no usable response was received.
	KindTransportError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindHTTPError:
		return "http_error"
	case KindTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one fetch attempt.
// StatusLabel is "<code> <reason>" for HTTP responses and "ERROR: <cause>" for
// transport failures. Body is set only for KindSuccess.
type Outcome struct {
	Kind        Kind
	StatusCode  int
	StatusLabel string
	Body        string
	Err         error
}

// OK reports whether the outcome carries a page body.
func (o Outcome) OK() bool {
	return o.Kind == KindSuccess
}

// Fetcher performs single-attempt GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// New creates a Fetcher. A non-positive timeout or empty user agent falls back to the defaults.
func New(client *http.Client, timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Fetcher{
		client:    client,
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// Fetch issues one GET for rawURL and classifies the result. It never returns
// an error: every failure is folded into the Outcome.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) Outcome {
	if f.client == nil {
		return transportFailure(errNilClient)
	}

	requestCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return transportFailure(fmt.Errorf("invalid request: %w", err))
	}

	request.Header.Set("User-Agent", f.userAgent)

	response, err := f.client.Do(request)
	if err != nil {
		return transportFailure(err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	label := statusLabel(response)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return Outcome{
			Kind:        KindHTTPError,
			StatusCode:  response.StatusCode,
			StatusLabel: label,
		}
	}

	body, err := readBody(response)
	if err != nil {
		return transportFailure(fmt.Errorf("read body: %w", err))
	}

	return Outcome{
		Kind:        KindSuccess,
		StatusCode:  response.StatusCode,
		StatusLabel: label,
		Body:        body,
	}
}

// readBody decodes the body using the declared or sniffed charset. Without a
// declared charset, a body that is valid UTF-8 is kept as is.
func readBody(response *http.Response) (string, error) {
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	encoding, _, certain := charset.DetermineEncoding(raw, response.Header.Get("Content-Type"))
	if !certain && utf8.Valid(raw) {
		return string(raw), nil
	}

	decoded, err := encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

func transportFailure(err error) Outcome {
	return Outcome{
		Kind:        KindTransportError,
		StatusLabel: transportErrorPrefix + err.Error(),
		Err:         err,
	}
}

// statusLabel renders "<code> <reason>", preferring the reason phrase sent by the server.
func statusLabel(response *http.Response) string {
	code := strconv.Itoa(response.StatusCode)

	reason := strings.TrimSpace(strings.TrimPrefix(response.Status, code))
	if reason == "" {
		reason = http.StatusText(response.StatusCode)
	}

	if reason == "" {
		return code
	}

	return code + " " + reason
}
