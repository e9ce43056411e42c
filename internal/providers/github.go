package providers

import (
	"context"
	"net/http"

	"finhub/internal/models"
)

// GitHubAdapter exposes repository activity only. It implements none of the
// financial capabilities; the aggregator surfaces its output as dashboard
// context, not money.
type GitHubAdapter struct {
	httpFetcher
}

func NewGitHubAdapter(baseURL string, client *http.Client) *GitHubAdapter {
	return &GitHubAdapter{httpFetcher{
		provider: models.ProviderGitHub,
		baseURL:  baseURL,
		client:   client,
	}}
}

func (a *GitHubAdapter) Type() models.ProviderType {
	return models.ProviderGitHub
}

type githubRepo struct {
	FullName        string `json:"full_name"`
	OpenIssuesCount int    `json:"open_issues_count"`
}

type githubEvent struct {
	Type    string `json:"type"`
	Payload struct {
		Size   int    `json:"size"`
		Action string `json:"action"`
	} `json:"payload"`
}

func (a *GitHubAdapter) FetchActivity(ctx context.Context, conn Conn) (*models.DevActivity, error) {
	if err := a.requireReady(conn); err != nil {
		return nil, err
	}

	var repos []githubRepo
	if err := a.getJSON(ctx, "/user/repos?per_page=100", conn.Credentials, &repos); err != nil {
		return nil, err
	}

	var events []githubEvent
	if err := a.getJSON(ctx, "/users/"+conn.Credentials["login"]+"/events?per_page=100", conn.Credentials, &events); err != nil {
		return nil, err
	}

	activity := &models.DevActivity{
		Repositories: len(repos),
		Source:       a.provider,
	}

	for _, repo := range repos {
		activity.OpenIssues += repo.OpenIssuesCount
	}

	for _, event := range events {
		switch event.Type {
		case "PushEvent":
			activity.Commits += event.Payload.Size
		case "PullRequestEvent":
			if event.Payload.Action == "opened" {
				activity.OpenPRs++
			}
		}
	}

	return activity, nil
}
