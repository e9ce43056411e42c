// Package llm holds the assistant client that answers free-text questions
// about a tenant's finances, grounded on the aggregated snapshot.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finhub/internal/models"
)

// Assistant answers a free-text question using the tenant's snapshot as
// grounding context.
type Assistant interface {
	Ask(ctx context.Context, question string, snapshot *models.Snapshot) (string, error)
}

type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
}

type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type GenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func NewClient(endpoint, model string) *Client {
	return &Client{
		endpoint: endpoint,
		model:    model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Ask renders the snapshot into the grounding prompt and returns the
// model's free-text answer.
func (c *Client) Ask(ctx context.Context, question string, snapshot *models.Snapshot) (string, error) {
	contextJSON, err := json.Marshal(assistantContext(snapshot))
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot context: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	prompt := fmt.Sprintf(AssistantPromptTemplate, today, string(contextJSON), question)

	answer, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// assistantContext trims the snapshot to what the prompt needs: the summary,
// recurring charges, and the most recent transactions. Full transaction
// histories would blow the context window without improving answers.
func assistantContext(snapshot *models.Snapshot) map[string]interface{} {
	const maxTransactions = 50

	transactions := snapshot.Transactions
	if len(transactions) > maxTransactions {
		transactions = transactions[:maxTransactions]
	}

	context := map[string]interface{}{
		"summary":          snapshot.Summary,
		"recurringCharges": snapshot.RecurringCharges,
		"transactions":     transactions,
	}
	if snapshot.Payroll != nil {
		context["payroll"] = snapshot.Payroll
	}
	if snapshot.DevActivity != nil {
		context["devActivity"] = snapshot.DevActivity
	}
	if len(snapshot.Failures) > 0 {
		context["providerFailures"] = snapshot.Failures
	}
	return context
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call model endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("model endpoint error (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return genResp.Response, nil
}
