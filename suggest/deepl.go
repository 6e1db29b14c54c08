package suggest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guilgui51/keyhub"
)

const (
	deeplFreeEndpoint = "https://api-free.deepl.com/v2/translate"
	deeplProEndpoint  = "https://api.deepl.com/v2/translate"
)

// DeepLProvider implements Provider using the DeepL REST API.
type DeepLProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// DeepLConfig holds configuration for the DeepL provider.
type DeepLConfig struct {
	APIKey   string        // DeepL API key; ":fx" suffixed keys select the free endpoint
	Endpoint string        // Custom endpoint (optional)
	Timeout  time.Duration // Request timeout (default: 15s)
}

// NewDeepLProvider creates a new DeepL provider.
func NewDeepLProvider(cfg DeepLConfig) *DeepLProvider {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = deeplProEndpoint
		if strings.HasSuffix(cfg.APIKey, ":fx") {
			endpoint = deeplFreeEndpoint
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &DeepLProvider{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Translate requests one translation from DeepL.
func (p *DeepLProvider) Translate(ctx context.Context, req Request) (string, error) {
	form := url.Values{}
	form.Set("text", req.Text)
	form.Set("source_lang", deeplLang(req.SourceLang))
	form.Set("target_lang", deeplLang(req.TargetLang))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &keyhub.ProviderError{Message: "building DeepL request", Cause: err}
	}
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("User-Agent", keyhub.UserAgent())

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", &keyhub.ProviderError{Message: "DeepL API call failed", Cause: err, Retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &keyhub.ProviderError{
			Message:   "DeepL returned " + resp.Status + ": " + strings.TrimSpace(string(body)),
			Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	var parsed struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &keyhub.ProviderError{Message: "decoding DeepL response", Cause: err}
	}
	if len(parsed.Translations) == 0 {
		return "", &keyhub.ProviderError{Message: "empty DeepL response", Retryable: true}
	}
	return parsed.Translations[0].Text, nil
}

// deeplLang converts a locale code to DeepL's language format. DeepL takes
// the base language uppercased, except for region-variant targets it knows
// (EN-GB, EN-US, PT-BR, PT-PT, ZH-HANS).
func deeplLang(code string) string {
	normalized := strings.ToUpper(keyhub.NormalizeLocale(code))
	switch normalized {
	case "EN-GB", "EN-US", "PT-BR", "PT-PT":
		return normalized
	}
	return strings.ToUpper(keyhub.BaseLang(code))
}

// Verify DeepLProvider implements Provider
var _ Provider = (*DeepLProvider)(nil)
