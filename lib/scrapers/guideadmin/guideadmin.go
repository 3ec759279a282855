package guideadmin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"guidetrack-backend/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrPageNotReady means the detail view never rendered its ready marker
// within the fetch deadline. The caller is expected to skip that guide and
// move on, nothing else about the session is suspect.
var ErrPageNotReady = fmt.Errorf("guide page not ready")

type Client struct {
	Tenant Tenant
	Http   *resty.Client
	cache  pageCache

	readyTimeout time.Duration
	pollInterval time.Duration
}

type ClientOptions struct {
	// overrides the tenant's builtin base url, mostly for tests
	BaseUrl string
	// how long Fetch will wait for the ready marker, defaults to 15s
	ReadyTimeout time.Duration
	// if non-nil, fetched markup is cached here so repeated runs against
	// the same guide skip the network
	Cache *badger.DB
	// if non-nil, every request/response exchange is dumped to it when
	// debug logging is enabled
	InstrumentOutput restyutil.InstrumentOutput
}

// Session carries the request-time credentials for one tenant domain.
// There is no refresh handling, the tokens are assumed valid for the
// whole run.
type Session struct {
	SessionToken string
	XsrfToken    string
}

func NewClient(tenant Tenant, session Session, opts ClientOptions) (*Client, error) {
	if session.SessionToken == "" {
		return nil, fmt.Errorf("tenant '%s': session token is not set", tenant.Name)
	}
	if session.XsrfToken == "" {
		return nil, fmt.Errorf("tenant '%s': xsrf token is not set", tenant.Name)
	}

	if opts.BaseUrl != "" {
		tenant.BaseUrl = opts.BaseUrl
	}
	baseUrl, err := url.Parse(tenant.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(tenant.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetCookies([]*http.Cookie{
		{
			Name:     tenant.SessionCookie,
			Value:    session.SessionToken,
			Domain:   tenant.CookieDomain,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
		},
		{
			Name:     tenant.XsrfCookie,
			Value:    session.XsrfToken,
			Domain:   tenant.CookieDomain,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
		},
	})
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)

	readyTimeout := opts.ReadyTimeout
	if readyTimeout == 0 {
		readyTimeout = time.Second * 15
	}

	c := &Client{
		Tenant: tenant,
		Http:   client,
		cache: pageCache{
			db:      opts.Cache,
			baseUrl: baseUrl,
		},
		readyTimeout: readyTimeout,
		pollInterval: time.Second,
	}
	return c, nil
}

// Fetch requests the guide detail page and returns the parsed document
// once the tenant's ready marker is present. If the marker never shows up
// within the ready timeout it returns ErrPageNotReady.
func (c *Client) Fetch(ctx context.Context, id int64) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()
	span.SetAttributes(attribute.Int64("guide_id", id))

	endpoint := strconv.FormatInt(id, 10)

	if c.cache.db != nil {
		cached, err := c.cache.get(ctx, c.Tenant.Name, endpoint)
		if err == nil {
			span.SetStatus(codes.Ok, "CACHE HIT")
			return goquery.NewDocumentFromReader(bytes.NewBuffer(cached.Markup))
		}
		if err != errPageNotCached {
			span.RecordError(err)
		}
	}

	deadline := time.Now().Add(c.readyTimeout)
	for {
		doc, ready, err := c.fetchOnce(ctx, endpoint)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch guide page")
			return nil, err
		}
		if ready {
			if c.cache.db != nil {
				markup, err := doc.Html()
				if err == nil {
					err = c.cache.set(ctx, c.Tenant.Name, endpoint, page{
						Markup:    []byte(markup),
						ExpiresAt: time.Now().Unix() + pageCacheLifetime,
					})
				}
				if err != nil {
					span.RecordError(err)
				}
			}
			return doc, nil
		}

		if time.Now().After(deadline) {
			span.SetStatus(codes.Error, "ready marker never appeared")
			return nil, fmt.Errorf("guide %d: %w", id, ErrPageNotReady)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) (*goquery.Document, bool, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return nil, false, err
	}
	// the panel serves an empty shell (or an interstitial) until the
	// detail view is rendered, both count as not ready
	if res.StatusCode() != 200 {
		return nil, false, nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, false, err
	}
	return doc, doc.Find(c.Tenant.ReadyMarker).Length() > 0, nil
}
