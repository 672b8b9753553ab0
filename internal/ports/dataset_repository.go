package ports

import (
	"context"

	"advisorseed/internal/domain/dataset"
)

// TableCounts reports stored row counts per generated table.
type TableCounts struct {
	Members    int64
	Citations  int64
	Governance int64
}

// DatasetRepository persists generated datasets. Loading replaces any
// previously stored rows; demo databases are reloaded wholesale.
type DatasetRepository interface {
	ReplaceDataset(ctx context.Context, ds dataset.Dataset) error
	Counts(ctx context.Context) (TableCounts, error)
	ListMembers(ctx context.Context, country string, limit int) ([]dataset.MemberProfile, error)
	ListGovernanceByMember(ctx context.Context, memberID string, limit int) ([]dataset.GovernanceLogEntry, error)
}
