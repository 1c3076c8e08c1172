// Package opentdb is the question bank client. It issues one GET per
// batch, validates the reply against a JSON Schema and transforms raw
// records into quiz.Question values: texts entity-decoded, answer order
// shuffled, the exactly-one-correct invariant enforced at construction.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rudram/trivl/internal/htmltext"
	"github.com/rudram/trivl/internal/quiz"
	"github.com/rudram/trivl/internal/shuffle"
)

const defaultBaseURL = "https://opentdb.com/api.php"

// Client talks to the question bank. It holds no session state; it only
// produces data for the caller to seed a session with.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger attaches a logger for request outcome logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a question bank client. An empty baseURL selects the
// public Open Trivia DB endpoint.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BatchRequest names the parameters of one fetch. Zero-valued fields are
// omitted from the query so the upstream applies its own defaults.
type BatchRequest struct {
	Amount     int
	Category   int
	Difficulty Difficulty
}

// FetchBatch retrieves one batch of multiple-choice questions. It fails
// with *NetworkError on transport trouble or a non-2xx status and with
// *FormatError when the body does not carry the expected result list.
// The returned count is whatever the upstream produced — the client does
// not pad or truncate.
func (c *Client) FetchBatch(ctx context.Context, req BatchRequest) ([]quiz.Question, error) {
	reqURL := c.batchURL(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn("question bank request failed", zap.String("url", reqURL), zap.Error(err))
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("question bank returned error status",
			zap.String("url", reqURL), zap.Int("status", resp.StatusCode))
		return nil, &NetworkError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read body: %w", err)}
	}

	if err := validateResponse(body); err != nil {
		return nil, err
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &FormatError{Err: err}
	}

	if parsed.ResponseCode != 0 {
		// Non-zero codes signal upstream conditions like "not enough
		// questions"; the results list still decides what the caller gets.
		c.log.Warn("question bank response code",
			zap.Int("response_code", parsed.ResponseCode),
			zap.Int("results", len(parsed.Results)))
	}

	questions, err := buildQuestions(parsed.Results)
	if err != nil {
		return nil, err
	}

	c.log.Debug("fetched question batch",
		zap.Int("requested", req.Amount),
		zap.Int("received", len(questions)),
		zap.Duration("elapsed", time.Since(start)))
	return questions, nil
}

// batchURL builds the request URL with the batch parameters.
func (c *Client) batchURL(req BatchRequest) string {
	params := url.Values{}
	params.Set("type", "multiple")
	if req.Amount > 0 {
		params.Set("amount", strconv.Itoa(req.Amount))
	}
	if req.Category > 0 {
		params.Set("category", strconv.Itoa(req.Category))
	}
	if req.Difficulty != "" {
		params.Set("difficulty", string(req.Difficulty))
	}
	return c.baseURL + "?" + params.Encode()
}

// buildQuestions transforms raw records into domain questions: decode all
// texts, place the correct answer first, shuffle, then let the Question
// constructor enforce its invariants.
func buildQuestions(raw []rawQuestion) ([]quiz.Question, error) {
	questions := make([]quiz.Question, 0, len(raw))
	for i, r := range raw {
		answers := make([]quiz.Answer, 0, len(r.IncorrectAnswers)+1)
		answers = append(answers, quiz.Answer{
			Text:    htmltext.Decode(r.CorrectAnswer),
			Correct: true,
		})
		for _, wrong := range r.IncorrectAnswers {
			answers = append(answers, quiz.Answer{Text: htmltext.Decode(wrong)})
		}
		shuffle.Shuffle(answers)

		q, err := quiz.NewQuestion(htmltext.Decode(r.Question), answers)
		if err != nil {
			return nil, &FormatError{Err: fmt.Errorf("result %d: %w", i, err)}
		}
		questions = append(questions, q)
	}
	return questions, nil
}
