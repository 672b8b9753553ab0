// Package dataset orchestrates demo-dataset generation, persistence,
// and export behind a single service wired by the bootstrap module.
package dataset

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"advisorseed/internal/bootstrap/logging"
	domaindataset "advisorseed/internal/domain/dataset"
	"advisorseed/internal/errs"
	"advisorseed/internal/export"
	"advisorseed/internal/ports"
)

// DefaultGovernanceCount is the governance log count used when no
// override is given.
const DefaultGovernanceCount = 154

type Service struct {
	repo ports.DatasetRepository
	uow  ports.UnitOfWork
	now  func() time.Time
}

// NewService wires dataset usecases with repository and unit of work.
func NewService(repo ports.DatasetRepository, uow ports.UnitOfWork) *Service {
	return &Service{
		repo: repo,
		uow:  uow,
		now:  time.Now,
	}
}

// GenerateInput selects the shape of one generation run. A zero Seed
// derives one from the current time; CountryCounts overrides the
// per-country defaults for the codes it names.
type GenerateInput struct {
	Seed            int64
	GovernanceCount int
	CountryCounts   map[string]int
}

// ApplyProfile folds a run profile's overrides into the input. Explicit
// values passed by the caller win over profile values, so the profile
// only fills fields still at their zero value.
func (in GenerateInput) ApplyProfile(profile domaindataset.RunProfile) GenerateInput {
	if in.Seed == 0 {
		in.Seed = profile.Seed
	}
	if in.GovernanceCount == 0 && profile.GovernanceCount != nil {
		in.GovernanceCount = *profile.GovernanceCount
	}
	if len(in.CountryCounts) == 0 && len(profile.MemberCounts) > 0 {
		in.CountryCounts = profile.MemberCounts
	}
	return in
}

// GenerateDataset produces the member table for every supported
// country, the citation registry, and the governance logs, all from one
// seeded random source.
func (s *Service) GenerateDataset(ctx context.Context, in GenerateInput) (domaindataset.Dataset, error) {
	if ctx == nil {
		return domaindataset.Dataset{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return domaindataset.Dataset{}, errs.Wrap(err, "check context")
	}

	rng, seed := domaindataset.NewSeededRNG(in.Seed)
	now := s.now()
	logCtx := logging.WithAttrs(ctx, slog.String("component", "usecase.dataset"), slog.Int64("seed", seed))

	var members []domaindataset.MemberProfile
	for _, country := range domaindataset.Countries() {
		count := country.MemberCount
		if override, ok := in.CountryCounts[country.Code]; ok {
			count = override
		}
		for seq := 1; seq <= count; seq++ {
			member, err := domaindataset.GenerateMember(rng, country.Code, seq)
			if err != nil {
				return domaindataset.Dataset{}, errs.Wrapf(err, "generate member %s seq %d", country.Code, seq)
			}
			members = append(members, member)
		}
	}

	citations := domaindataset.BuildCitationRegistry(now)

	governance, err := domaindataset.GenerateGovernanceLogs(rng, now, members, in.GovernanceCount)
	if err != nil {
		return domaindataset.Dataset{}, errs.Wrap(err, "generate governance logs")
	}

	logging.Info(logCtx, "dataset generated",
		slog.Int("members", len(members)),
		slog.Int("citations", len(citations)),
		slog.Int("governance", len(governance)),
	)

	return domaindataset.Dataset{
		Members:     members,
		Citations:   citations,
		Governance:  governance,
		Seed:        seed,
		GeneratedAt: now,
	}, nil
}

// LoadDataset replaces the stored tables with the dataset inside one
// transaction.
func (s *Service) LoadDataset(ctx context.Context, ds domaindataset.Dataset) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.ReplaceDataset(txCtx, ds)
	})
	if err != nil {
		return errs.Wrap(err, "load dataset")
	}

	logging.Info(logging.WithAttrs(ctx, slog.String("component", "usecase.dataset")), "dataset loaded",
		slog.Int("members", len(ds.Members)),
		slog.Int("citations", len(ds.Citations)),
		slog.Int("governance", len(ds.Governance)),
	)
	return nil
}

// Summary reports stored row counts per table.
func (s *Service) Summary(ctx context.Context) (ports.TableCounts, error) {
	if ctx == nil {
		return ports.TableCounts{}, errors.New("context is required")
	}
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return ports.TableCounts{}, errs.Wrap(err, "count dataset rows")
	}
	return counts, nil
}

// StoredMembers lists persisted members, optionally filtered by country.
func (s *Service) StoredMembers(ctx context.Context, country string, limit int) ([]domaindataset.MemberProfile, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	members, err := s.repo.ListMembers(ctx, country, limit)
	if err != nil {
		return nil, errs.Wrap(err, "list stored members")
	}
	return members, nil
}

// ExportCSV writes the dataset as one CSV file per table under dir.
func (s *Service) ExportCSV(ctx context.Context, ds domaindataset.Dataset, dir string) error {
	if err := export.WriteCSVDir(dir, ds); err != nil {
		return err
	}
	logging.Info(logging.WithAttrs(ctx, slog.String("component", "usecase.dataset")), "csv export written",
		slog.String("dir", dir))
	return nil
}

// ExportSQL writes the dataset as batch-insert statements at path.
func (s *Service) ExportSQL(ctx context.Context, ds domaindataset.Dataset, path string) error {
	if err := export.WriteSQLFile(path, ds); err != nil {
		return err
	}
	logging.Info(logging.WithAttrs(ctx, slog.String("component", "usecase.dataset")), "sql export written",
		slog.String("path", path))
	return nil
}
