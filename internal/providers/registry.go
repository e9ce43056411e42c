package providers

import (
	"net/http"

	"finhub/internal/config"
	"finhub/internal/models"
)

// Registry holds one adapter per provider type and dispatches by tag. The
// aggregator asks it which connected providers expose which capabilities and
// never touches concrete adapter types.
type Registry struct {
	adapters map[models.ProviderType]Adapter
}

// NewRegistry builds the full adapter set from provider config. All adapters
// share one HTTP client; per-call timeouts come from the aggregator's
// contexts rather than the client.
func NewRegistry(cfg config.ProvidersConfig, client *http.Client) *Registry {
	if client == nil {
		client = http.DefaultClient
	}

	adapters := []Adapter{
		NewMercuryAdapter(cfg.MercuryBaseURL, client),
		NewWaveAdapter(cfg.WaveBaseURL, client),
		NewStripeAdapter(cfg.StripeBaseURL, client),
		NewDoorLoopAdapter(cfg.DoorLoopBaseURL, client),
		NewQuickBooksAdapter(cfg.QuickBooksBaseURL, client),
		NewXeroAdapter(cfg.XeroBaseURL, client),
		NewBrexAdapter(cfg.BrexBaseURL, client),
		NewGustoAdapter(cfg.GustoBaseURL, client),
		NewGitHubAdapter(cfg.GitHubBaseURL, client),
	}

	byType := make(map[models.ProviderType]Adapter, len(adapters))
	for _, adapter := range adapters {
		byType[adapter.Type()] = adapter
	}

	return &Registry{adapters: byType}
}

// NewRegistryWith builds a registry from explicit adapters; used by tests to
// substitute fakes.
func NewRegistryWith(adapters ...Adapter) *Registry {
	byType := make(map[models.ProviderType]Adapter, len(adapters))
	for _, adapter := range adapters {
		byType[adapter.Type()] = adapter
	}
	return &Registry{adapters: byType}
}

// Get returns the adapter for the given provider type.
func (r *Registry) Get(providerType models.ProviderType) (Adapter, bool) {
	adapter, ok := r.adapters[providerType]
	return adapter, ok
}
