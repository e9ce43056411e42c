package services

import (
	"sort"
	"time"

	"finhub/internal/models"
)

// FormatterService projects a snapshot plus registry state into the
// published Universal Connector envelope. It owns no state and performs no
// I/O; formatting the same inputs twice yields identical output except for
// the timestamp.
type FormatterService struct {
	optimizationService OptimizationServiceInterface
	now                 func() time.Time
}

// NewFormatterService creates a new formatter service
func NewFormatterService(optimizationService OptimizationServiceInterface) FormatterServiceInterface {
	return &FormatterService{
		optimizationService: optimizationService,
		now:                 time.Now,
	}
}

// Format builds the versioned response. authInfo is nil on the public
// variant; the data payload is the same either way.
func (s *FormatterService) Format(tenant *models.Tenant, snapshot *models.Snapshot, connections []models.Connection, authInfo *models.AuthInfo) *models.UniversalConnectorResponse {
	return &models.UniversalConnectorResponse{
		Version:   models.ConnectorVersion,
		Timestamp: s.now().UTC(),
		Source:    models.ConnectorSource,
		AccountID: tenant.ID,
		AuthInfo:  authInfo,
		Data: models.ConnectorData{
			Summary:          snapshot.Summary,
			Transactions:     snapshot.Transactions,
			RecurringCharges: snapshot.RecurringCharges,
			Optimizations:    s.optimizationService.Suggest(snapshot.RecurringCharges),
			Payroll:          snapshot.Payroll,
			DevActivity:      snapshot.DevActivity,
			ProviderFailures: snapshot.Failures,
		},
		ConnectedServices: connectedServices(connections),
	}
}

// connectedServices lists the connected providers sorted by provider type so
// the output is deterministic regardless of registry iteration order.
func connectedServices(connections []models.Connection) []models.ConnectedService {
	services := make([]models.ConnectedService, 0, len(connections))
	for _, connection := range connections {
		if !connection.Connected {
			continue
		}
		services = append(services, models.ConnectedService{
			ID:         connection.ID,
			Name:       connection.ProviderType.DisplayName(),
			Type:       connection.ProviderType,
			LastSynced: connection.LastSyncedAt,
		})
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].Type < services[j].Type
	})

	return services
}
