package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"finhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func githubConn() Conn {
	return Conn{
		Connection: &models.Connection{
			ProviderType: models.ProviderGitHub,
			Connected:    true,
		},
		Credentials: Credentials{"token": "ghp_abc", "login": "octocat"},
	}
}

func TestGitHubAdapter_FetchActivity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[
			{"full_name":"octocat/api","open_issues_count":4},
			{"full_name":"octocat/web","open_issues_count":1}
		]`))
	})
	mux.HandleFunc("/users/octocat/events", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"type":"PushEvent","payload":{"size":3}},
			{"type":"PushEvent","payload":{"size":1}},
			{"type":"PullRequestEvent","payload":{"action":"opened"}},
			{"type":"PullRequestEvent","payload":{"action":"closed"}},
			{"type":"IssuesEvent","payload":{"action":"opened"}}
		]`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	adapter := NewGitHubAdapter(server.URL, server.Client())
	activity, err := adapter.FetchActivity(context.Background(), githubConn())

	require.NoError(t, err)
	assert.Equal(t, 2, activity.Repositories)
	assert.Equal(t, 5, activity.OpenIssues)
	assert.Equal(t, 4, activity.Commits, "push events contribute their commit count")
	assert.Equal(t, 1, activity.OpenPRs, "only opened pull requests count")
	assert.Equal(t, models.ProviderGitHub, activity.Source)
}

func TestGitHubAdapter_NoFinancialCapability(t *testing.T) {
	adapter := NewGitHubAdapter("http://unused", http.DefaultClient)

	assert.False(t, HasFinancialCapability(adapter))
	_, ok := interface{}(adapter).(ActivityFetcher)
	assert.True(t, ok)
}

func TestGitHubAdapter_NotConfigured(t *testing.T) {
	adapter := NewGitHubAdapter("http://unused", http.DefaultClient)

	_, err := adapter.FetchActivity(context.Background(), Conn{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGitHubAdapter_UpstreamErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := NewGitHubAdapter(server.URL, server.Client())
	_, err := adapter.FetchActivity(context.Background(), githubConn())

	unavailable, ok := AsUnavailable(err)
	require.True(t, ok)
	assert.Equal(t, models.ProviderGitHub, unavailable.Provider)
}
