package cfapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is a rate-limited, read-only client for the upstream API. It
// enforces a minimum interval between outbound calls process-wide and owns
// no retry policy; callers decide how to treat an UpstreamError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New builds a client enforcing at least cooldown between calls. The burst
// of one makes the limiter behave exactly like the classic
// last-call-plus-cooldown sleep.
func New(baseURL string, cooldown time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Every(cooldown), 1),
	}
}

// UpstreamError is returned when the API answered without a success payload.
type UpstreamError struct {
	Method  string
	Comment string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error on %s: %s", e.Method, e.Comment)
}

// benignComments are upstream comment substrings that mean a contest has no
// data to give yet; callers skip the contest instead of aborting the run.
var benignComments = []string{
	"has not started",
	"not found",
	"Rating changes are unavailable",
}

// IsBenignContestError reports whether err is an UpstreamError that should
// end the current contest's fetch without failing the whole run.
func IsBenignContestError(err error) bool {
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		return false
	}
	for _, s := range benignComments {
		if strings.Contains(ue.Comment, s) {
			return true
		}
	}
	return false
}

type envelope struct {
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result"`
	Comment string          `json:"comment"`
}

func (c *Client) get(ctx context.Context, method string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + "/" + method
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", method, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%s: decode envelope: %w", method, err)
	}
	if env.Result == nil {
		return &UpstreamError{Method: method, Comment: env.Comment}
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}

func (c *Client) RatedUsers(ctx context.Context, activeOnly bool) ([]RatedUser, error) {
	params := url.Values{"activeOnly": {strconv.FormatBool(activeOnly)}}
	var users []RatedUser
	if err := c.get(ctx, "user.ratedList", params, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ContestList(ctx context.Context) ([]Contest, error) {
	var contests []Contest
	if err := c.get(ctx, "contest.list", nil, &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

func (c *Client) Standings(ctx context.Context, contestID int) (*Standings, error) {
	params := url.Values{"contestId": {strconv.Itoa(contestID)}}
	var standings Standings
	if err := c.get(ctx, "contest.standings", params, &standings); err != nil {
		return nil, err
	}
	return &standings, nil
}

func (c *Client) Hacks(ctx context.Context, contestID int) ([]Hack, error) {
	params := url.Values{"contestId": {strconv.Itoa(contestID)}}
	var hacks []Hack
	if err := c.get(ctx, "contest.hacks", params, &hacks); err != nil {
		return nil, err
	}
	return hacks, nil
}

func (c *Client) RatingChanges(ctx context.Context, contestID int) ([]RatingChange, error) {
	params := url.Values{"contestId": {strconv.Itoa(contestID)}}
	var changes []RatingChange
	if err := c.get(ctx, "contest.ratingChanges", params, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// Status returns one page of a contest's submissions; from is 1-based.
func (c *Client) Status(ctx context.Context, contestID, from, count int) ([]Submission, error) {
	params := url.Values{
		"contestId": {strconv.Itoa(contestID)},
		"from":      {strconv.Itoa(from)},
		"count":     {strconv.Itoa(count)},
	}
	var subs []Submission
	if err := c.get(ctx, "contest.status", params, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
