package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mpesa_c2b/internal/domain/entities"
	"mpesa_c2b/internal/infrastructure/crypto"
	"mpesa_c2b/internal/infrastructure/metrics"
	"mpesa_c2b/pkg/result"

	"github.com/sony/gobreaker"
)

const (
	c2bPort = 18352
	c2bPath = "/ipg/v1x/c2bPayment/singleStage/"

	defaultHTTPTimeout = 30 * time.Second
	maxResponseBytes   = 1 << 20

	// unrecognizedCodeLabel bounds the code label for codes outside the table.
	unrecognizedCodeLabel = "unrecognized"
)

var errGatewayServerStatus = errors.New("gateway server error status")

// TokenEncoder turns the api key into an Authorization header value.
type TokenEncoder func(publicKey, secret string) (string, error)

// BreakerSettings configures the circuit breaker in front of the gateway.
type BreakerSettings struct {
	// MaxConsecutiveFailures trips the breaker. Zero disables the breaker.
	MaxConsecutiveFailures uint32
	OpenTimeout            time.Duration
}

var DefaultBreakerSettings = BreakerSettings{MaxConsecutiveFailures: 5, OpenTimeout: 30 * time.Second}

type c2bRequestBody struct {
	TransactionReference string `json:"input_TransactionReference"`
	CustomerMSISDN       string `json:"input_CustomerMSISDN"`
	Amount               string `json:"input_Amount"`
	ThirdPartyReference  string `json:"input_ThirdPartyReference"`
	ServiceProviderCode  string `json:"input_ServiceProviderCode"`
}

type c2bResponseBody struct {
	ResponseCode string `json:"output_ResponseCode"`
	ResponseDesc string `json:"output_ResponseDesc"`
}

type rawResponse struct {
	status int
	reason string
	body   []byte
}

func (r *rawResponse) ok() bool {
	return r.status >= 200 && r.status < 300
}

// MPesaGateway submits C2B single stage payments.
//
// Credentials are fixed at construction. A token is encoded for every call.
// The gateway is safe for concurrent use.
type MPesaGateway struct {
	creds    entities.Credentials
	client   *http.Client
	baseURL  string
	encode   TokenEncoder
	breaker  *gobreaker.CircuitBreaker
	settings BreakerSettings
	mockMode bool
}

type Option func(*MPesaGateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *MPesaGateway) { g.client = c }
}

// WithBaseURL replaces "https://<api_host>:18352" (tests, proxies).
func WithBaseURL(u string) Option {
	return func(g *MPesaGateway) { g.baseURL = strings.TrimRight(u, "/") }
}

func WithTokenEncoder(enc TokenEncoder) Option {
	return func(g *MPesaGateway) { g.encode = enc }
}

func WithBreakerSettings(s BreakerSettings) Option {
	return func(g *MPesaGateway) { g.settings = s }
}

// WithMockMode answers every request with INS-0 without calling the network.
func WithMockMode(enabled bool) Option {
	return func(g *MPesaGateway) { g.mockMode = enabled }
}

func NewMPesaGateway(creds entities.Credentials, opts ...Option) (*MPesaGateway, error) {
	g := &MPesaGateway{
		creds:    creds,
		client:   &http.Client{Timeout: defaultHTTPTimeout},
		encode:   crypto.EncodeBearerToken,
		settings: DefaultBreakerSettings,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.mockMode {
		log.Printf("[c2b][gateway] mock mode enabled")
		return g, nil
	}

	if err := creds.Validate(); err != nil {
		log.Printf("[c2b][gateway] invalid credentials err=%v", err)
		return nil, err
	}

	if g.settings.MaxConsecutiveFailures > 0 {
		g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "mpesa-c2b",
			Timeout: g.settings.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= g.settings.MaxConsecutiveFailures
			},
			IsSuccessful: func(err error) bool {
				// Caller cancellation says nothing about gateway health.
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("[c2b][gateway] breaker state change name=%s from=%s to=%s", name, from, to)
			},
		})
	}

	log.Printf("[c2b][gateway] M-Pesa client initialized creds=%s", creds)
	return g, nil
}

// C2BPayment submits req and classifies the reply.
//
// Every transport, HTTP and decoding fault ends up as a failure Result with a
// nil error. A non-nil error means the request could not be built at all
// (token encoding) and must not be retried.
func (g *MPesaGateway) C2BPayment(ctx context.Context, req entities.C2BPaymentRequest) (result.Result[string], error) {
	if strings.TrimSpace(req.ServiceProviderCode) == "" {
		req.ServiceProviderCode = g.creds.ServiceProviderCode
	}

	if g.mockMode {
		log.Printf("[c2b][gateway] mock create start transaction_reference=%s", req.TransactionReference)
		success, _ := entities.LookupOutcome(entities.CodeSuccess)
		r, _ := ClassifyResponse(http.StatusOK, string(success.Code), success.Label, true)
		return r, nil
	}

	log.Printf("[c2b][gateway] create start transaction_reference=%s third_party_reference=%s amount=%s",
		req.TransactionReference, req.ThirdPartyReference, req.Amount.String())

	token, err := g.encode(g.creds.PublicKey, g.creds.APIKey)
	if err != nil {
		log.Printf("[c2b][gateway] bearer token encoding failed err=%v", err)
		return result.Failure[string](err.Error()), err
	}

	body, err := json.Marshal(c2bRequestBody{
		TransactionReference: req.TransactionReference,
		CustomerMSISDN:       req.CustomerMSISDN,
		Amount:               req.Amount.String(),
		ThirdPartyReference:  req.ThirdPartyReference,
		ServiceProviderCode:  req.ServiceProviderCode,
	})
	if err != nil {
		log.Printf("[c2b][gateway] request marshal failed err=%v", err)
		return g.failure("marshal_error", requestFailureMessage(err.Error())), nil
	}

	start := time.Now()
	raw, err := g.execute(ctx, token, body)
	if err != nil {
		marker := "transport_error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			marker = "circuit_open"
		}
		metrics.ObserveDuration(marker, time.Since(start).Seconds())
		log.Printf("[c2b][gateway] request failed transaction_reference=%s kind=%s err=%v", req.TransactionReference, marker, err)
		return g.failure(marker, requestFailureMessage(err.Error())), nil
	}

	if !raw.ok() {
		metrics.ObserveDuration("http_error", time.Since(start).Seconds())
		log.Printf("[c2b][gateway] non-2xx response transaction_reference=%s status=%d", req.TransactionReference, raw.status)
		r := ClassifyHTTPFailure(raw.status, raw.reason)
		metrics.IncOutcome("http_error", string(entities.SeverityServerError))
		return r, nil
	}

	var out c2bResponseBody
	if err := json.Unmarshal(raw.body, &out); err != nil {
		metrics.ObserveDuration("decode_error", time.Since(start).Seconds())
		log.Printf("[c2b][gateway] response decode failed transaction_reference=%s err=%v", req.TransactionReference, err)
		return g.failure("decode_error", requestFailureMessage(err.Error())), nil
	}

	r, err := ClassifyResponse(raw.status, out.ResponseCode, out.ResponseDesc, true)
	outcome, known := entities.LookupOutcome(entities.ResponseCode(out.ResponseCode))
	codeLabel := out.ResponseCode
	if !known {
		codeLabel = unrecognizedCodeLabel
	}
	metrics.ObserveDuration(string(outcome.Severity), time.Since(start).Seconds())
	metrics.IncOutcome(codeLabel, string(outcome.Severity))

	if err != nil {
		var esc *EscalationError
		if errors.As(err, &esc) {
			metrics.IncEscalation(string(esc.Outcome.Code))
		}
		log.Printf("[c2b][gateway] ESCALATION transaction_reference=%s code=%s err=%v", req.TransactionReference, out.ResponseCode, err)
		return result.Failure[string](requestFailureMessage(err.Error())), nil
	}

	if r.IsSuccess() {
		log.Printf("[c2b][gateway] create success transaction_reference=%s code=%s", req.TransactionReference, out.ResponseCode)
	} else {
		log.Printf("[c2b][gateway] create rejected transaction_reference=%s code=%s severity=%s", req.TransactionReference, out.ResponseCode, outcome.Severity)
	}
	return r, nil
}

func (g *MPesaGateway) failure(marker, msg string) result.Result[string] {
	metrics.IncOutcome(marker, string(entities.SeverityUnknown))
	return result.Failure[string](msg)
}

// execute runs post through the breaker. 5xx replies count as breaker
// failures but are still handed back for classification.
func (g *MPesaGateway) execute(ctx context.Context, token string, body []byte) (*rawResponse, error) {
	if g.breaker == nil {
		return g.post(ctx, token, body)
	}

	out, err := g.breaker.Execute(func() (interface{}, error) {
		raw, err := g.post(ctx, token, body)
		if err != nil {
			return nil, err
		}
		if raw.status >= http.StatusInternalServerError {
			return raw, errGatewayServerStatus
		}
		return raw, nil
	})
	raw, _ := out.(*rawResponse)
	if errors.Is(err, errGatewayServerStatus) && raw != nil {
		return raw, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (g *MPesaGateway) post(ctx context.Context, token string, body []byte) (*rawResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", token)
	httpReq.Header.Set("Origin", g.creds.Origin)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &rawResponse{status: resp.StatusCode, reason: reasonPhrase(resp), body: b}, nil
}

// reasonPhrase strips the numeric code from resp.Status ("502 Bad Gateway").
func reasonPhrase(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

func (g *MPesaGateway) endpoint() string {
	if g.baseURL != "" {
		return g.baseURL + c2bPath
	}
	return fmt.Sprintf("https://%s:%d%s", g.creds.APIHost, c2bPort, c2bPath)
}
