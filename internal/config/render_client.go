package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SecretStorage lista secret files de onde credenciais podem ser carregadas
type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

type RenderClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type secretFilePage []struct {
	SecretFile struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	} `json:"secretFile"`
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		apiKey:     config.Render.APIKey,
		baseURL:    config.Render.BaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListSecrets devolve nome -> conteúdo dos secret files do serviço
func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.baseURL, url.PathEscape(serviceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("config: build render request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config: list secrets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("config: list secrets: status %d: %s", resp.StatusCode, body)
	}

	var page secretFilePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("config: decode secrets: %w", err)
	}

	secrets := make(map[string]string, len(page))
	for _, item := range page {
		secrets[item.SecretFile.Name] = item.SecretFile.Content
	}

	return secrets, nil
}
