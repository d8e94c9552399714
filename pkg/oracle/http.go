package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Config configures an HTTPOracle. The API key and organization id are the
// only values read from the environment (see ConfigFromEnv).
type Config struct {
	APIKey string
	OrgID  string
	Model  Model

	// BaseURL defaults to the provider's chat-completions endpoint.
	BaseURL string
	// HTTPClient defaults to a client with a 60s timeout.
	HTTPClient *http.Client

	// internalRetries bounds the oracle's own transient-failure retries,
	// distinct from the agent's maxLLMTries retries over whole-call
	// failures/parse failures.
	internalRetries int
}

// ConfigFromEnv reads OPENAI_API_KEY and OPENAI_ORG_ID, the two
// environment variables.
func ConfigFromEnv(model Model) Config {
	return Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		OrgID:  os.Getenv("OPENAI_ORG_ID"),
		Model:  model,
	}
}

// HTTPOracle is an Oracle backed by an OpenAI-compatible chat-completions
// endpoint over net/http. No suitable third-party LLM HTTP client surfaced
// anywhere in the reference corpus (see DESIGN.md), so this component is
// deliberately built on the standard library.
type HTTPOracle struct {
	cfg Config
}

func NewHTTPOracle(cfg Config) *HTTPOracle {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	if cfg.internalRetries == 0 {
		cfg.internalRetries = 3
	}
	return &HTTPOracle{cfg: cfg}
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireRequest struct {
	Model            string          `json:"model"`
	Messages         []wireMessage   `json:"messages"`
	MaxTokens        int             `json:"max_tokens,omitempty"`
	Temperature      float64         `json:"temperature"`
	N                int             `json:"n,omitempty"`
	Stop             []string        `json:"stop,omitempty"`
	FrequencyPenalty float64         `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64         `json:"presence_penalty,omitempty"`
	LogitBias        map[string]float64 `json:"logit_bias,omitempty"`
	Logprobs         bool            `json:"logprobs,omitempty"`
	TopLogprobs      int             `json:"top_logprobs,omitempty"`
}

type wireTopLogprob struct {
	Token   string  `json:"token"`
	Logprob float64 `json:"logprob"`
}

type wireLogprobContent struct {
	Token       string           `json:"token"`
	Logprob     float64          `json:"logprob"`
	TopLogprobs []wireTopLogprob `json:"top_logprobs"`
}

type wireChoice struct {
	Message wireMessage `json:"message"`
	Logprobs *struct {
		Content []wireLogprobContent `json:"content"`
	} `json:"logprobs"`
}

type wireResponse struct {
	Choices []wireChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *HTTPOracle) Chat(ctx context.Context, messages []Message, opt Options) ([]Choice, error) {
	req := wireRequest{
		Model:            o.cfg.Model.apiModelName(),
		Temperature:      opt.Temperature,
		MaxTokens:        opt.MaxTokens,
		N:                opt.N,
		Stop:             opt.Stop,
		FrequencyPenalty: opt.FrequencyPenalty,
		PresencePenalty:  opt.PresencePenalty,
		Logprobs:         opt.Logprobs,
		TopLogprobs:      opt.TopLogprobs,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, wireMessage{Role: string(m.Role), Content: m.Content})
	}
	if len(opt.LogitBias) > 0 {
		req.LogitBias = make(map[string]float64, len(opt.LogitBias))
		for tok, bias := range opt.LogitBias {
			req.LogitBias[fmt.Sprintf("%d", tok)] = bias
		}
	}

	var lastErr error
	for attempt := 0; attempt <= o.cfg.internalRetries; attempt++ {
		if contextx.IsCancelled(ctx) {
			return nil, ctx.Err()
		}
		if attempt > 0 {
			logw.Warningf(ctx, "oracle: retrying chat call after transient failure: %v", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 250 * time.Millisecond):
			}
		}

		choices, transient, err := o.doChat(ctx, req)
		if err == nil {
			return choices, nil
		}
		lastErr = err
		if !transient {
			return nil, err
		}
	}
	return nil, fmt.Errorf("oracle: %w: %v", ErrExhausted, lastErr)
}

func (o *HTTPOracle) doChat(ctx context.Context, req wireRequest) ([]Choice, bool, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, false, fmt.Errorf("oracle: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("oracle: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	if o.cfg.OrgID != "" {
		httpReq.Header.Set("OpenAI-Organization", o.cfg.OrgID)
	}

	resp, err := o.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, true, fmt.Errorf("oracle: request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("oracle: read response: %w", err)
	}

	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, fmt.Errorf("oracle: transient status %d: %s", resp.StatusCode, payload)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("oracle: status %d: %s", resp.StatusCode, payload)
	}

	var wire wireResponse
	if err := json.Unmarshal(payload, &wire); err != nil {
		return nil, false, fmt.Errorf("oracle: decode response: %w", err)
	}
	if wire.Error != nil {
		return nil, false, fmt.Errorf("oracle: provider error: %s", wire.Error.Message)
	}

	return toChoices(wire.Choices), false, nil
}

func toChoices(in []wireChoice) []Choice {
	out := make([]Choice, 0, len(in))
	for _, c := range in {
		choice := Choice{Message: Message{Role: Role(c.Message.Role), Content: c.Message.Content}}
		if c.Logprobs != nil {
			for _, lp := range c.Logprobs.Content {
				tok := TokenLogprob{Token: lp.Token, Logprob: lp.Logprob}
				for _, alt := range lp.TopLogprobs {
					tok.TopLogprobs = append(tok.TopLogprobs, TokenLogprob{Token: alt.Token, Logprob: alt.Logprob})
				}
				choice.Logprobs = append(choice.Logprobs, tok)
			}
		}
		out = append(out, choice)
	}
	return out
}
