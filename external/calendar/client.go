package calendar

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/aribowo/matchday-tracker/internal/platform/logging"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultDateLayout  = "2006-01-02"
	fixtureFeedPath    = "/v1/fixtures"
	headerFeedToken    = "X-Feed-Token"
	maxResponseBodyLog = 256
)

// Fixture is one upcoming match published by a league calendar feed.
type Fixture struct {
	Date        time.Time
	Opponent    string
	Competition string
	Venue       string
}

type fixtureFeedItem struct {
	Date        string `json:"date"`
	Opponent    string `json:"opponent"`
	Competition string `json:"competition"`
	Venue       string `json:"venue"`
}

type fixtureFeedEnvelope struct {
	Fixtures []fixtureFeedItem `json:"fixtures"`
}

type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client pulls fixture calendars over HTTP.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
	logger  *logging.Logger
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, crerr.New("calendar feed base url is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, crerr.Newf("calendar feed base url %q must use http or https", baseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		http:    &fasthttp.Client{ReadTimeout: timeout, WriteTimeout: timeout},
		baseURL: baseURL,
		token:   strings.TrimSpace(cfg.Token),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// UpcomingFixtures fetches the feed's fixtures for one team code from a given
// date onward.
func (c *Client) UpcomingFixtures(ctx context.Context, teamCode string, from time.Time) ([]Fixture, error) {
	teamCode = strings.TrimSpace(teamCode)
	if teamCode == "" {
		return nil, crerr.New("team code is required")
	}

	requestURL := c.buildFeedURL(teamCode, from)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.token != "" {
		req.Header.Set(headerFeedToken, c.token)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Wrapf(err, "fetch fixture feed team=%s", teamCode)
	}

	status := resp.StatusCode()
	body := resp.Body()
	if status != fasthttp.StatusOK {
		c.logger.WarnContext(ctx, "fixture feed returned non-200",
			"team_code", teamCode,
			"status", status,
			"body", truncateForLog(string(body), maxResponseBodyLog),
		)
		return nil, crerr.Newf("fixture feed status %d for team=%s", status, teamCode)
	}

	var envelope fixtureFeedEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, crerr.Wrap(err, "decode fixture feed payload")
	}

	out := make([]Fixture, 0, len(envelope.Fixtures))
	for _, item := range envelope.Fixtures {
		parsed, err := time.Parse(defaultDateLayout, strings.TrimSpace(item.Date))
		if err != nil {
			c.logger.WarnContext(ctx, "skipping feed fixture with bad date",
				"team_code", teamCode,
				"date", item.Date,
			)
			continue
		}
		opponent := strings.TrimSpace(item.Opponent)
		if opponent == "" {
			continue
		}
		out = append(out, Fixture{
			Date:        parsed,
			Opponent:    opponent,
			Competition: strings.ToLower(strings.TrimSpace(item.Competition)),
			Venue:       strings.TrimSpace(item.Venue),
		})
	}

	return out, nil
}

func (c *Client) buildFeedURL(teamCode string, from time.Time) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	_, _ = buf.WriteString(fixtureFeedPath)
	_, _ = buf.WriteString("?team=")
	_, _ = buf.WriteString(teamCode)
	if !from.IsZero() {
		_, _ = buf.WriteString("&from=")
		_, _ = buf.WriteString(from.Format(defaultDateLayout))
	}

	return buf.String()
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
