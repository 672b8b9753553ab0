package dataset

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	domaindataset "advisorseed/internal/domain/dataset"
	"advisorseed/internal/infrastructure/persistence/sqlite/model"
	"advisorseed/internal/infrastructure/persistence/sqlite/repository"
	"advisorseed/internal/infrastructure/persistence/sqlite/uow"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "datasets.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(&model.MemberProfile{}, &model.Citation{}, &model.GovernanceLog{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	svc := NewService(repository.NewDatasetRepository(db), uow.NewUnitOfWork(db))
	svc.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateDatasetDefaults(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	ds, err := svc.GenerateDataset(ctx, GenerateInput{Seed: 99, GovernanceCount: DefaultGovernanceCount})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(ds.Members) != domaindataset.DefaultMemberTotal() {
		t.Fatalf("member total = %d, want %d", len(ds.Members), domaindataset.DefaultMemberTotal())
	}

	perCountry := map[string]int{}
	for _, m := range ds.Members {
		perCountry[m.Country]++
	}
	want := map[string]int{"AU": 20, "US": 3, "UK": 2, "IN": 3}
	if !reflect.DeepEqual(perCountry, want) {
		t.Fatalf("per-country counts = %v, want %v", perCountry, want)
	}

	if len(ds.Citations) != 9 {
		t.Fatalf("citation count = %d, want 9", len(ds.Citations))
	}
	if len(ds.Governance) != DefaultGovernanceCount {
		t.Fatalf("governance count = %d, want %d", len(ds.Governance), DefaultGovernanceCount)
	}
	if ds.Seed != 99 {
		t.Fatalf("seed = %d, want 99", ds.Seed)
	}
	if !ds.GeneratedAt.Equal(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("generated at = %v", ds.GeneratedAt)
	}
}

func TestGenerateDatasetDeterministic(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	in := GenerateInput{Seed: 4242, GovernanceCount: 20}

	first, err := svc.GenerateDataset(ctx, in)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := svc.GenerateDataset(ctx, in)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	if !reflect.DeepEqual(first.Members, second.Members) {
		t.Fatalf("members differ for identical seed")
	}
	// Governance entries carry random session ids, so compare the
	// seed-driven fields only.
	if len(first.Governance) != len(second.Governance) {
		t.Fatalf("governance lengths differ")
	}
	for i := range first.Governance {
		a, b := first.Governance[i], second.Governance[i]
		if a.UserID != b.UserID || a.QueryString != b.QueryString || a.Cost != b.Cost || !a.Timestamp.Equal(b.Timestamp) {
			t.Fatalf("governance entry %d differs for identical seed", i)
		}
	}
}

func TestGenerateDatasetCountryOverrides(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	ds, err := svc.GenerateDataset(ctx, GenerateInput{
		Seed:            5,
		GovernanceCount: 10,
		CountryCounts:   map[string]int{"AU": 2, "US": 0},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	perCountry := map[string]int{}
	for _, m := range ds.Members {
		perCountry[m.Country]++
	}
	if perCountry["AU"] != 2 {
		t.Fatalf("AU count = %d, want 2", perCountry["AU"])
	}
	if perCountry["US"] != 0 {
		t.Fatalf("US count = %d, want 0", perCountry["US"])
	}
	if perCountry["UK"] != 2 || perCountry["IN"] != 3 {
		t.Fatalf("untouched countries changed: %v", perCountry)
	}
}

func TestGenerateDatasetInvalidGovernanceCount(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GenerateDataset(context.Background(), GenerateInput{Seed: 1, GovernanceCount: -3})
	if err == nil {
		t.Fatalf("expected error for negative governance count")
	}
}

func TestApplyProfilePrecedence(t *testing.T) {
	count := 40
	profile := domaindataset.RunProfile{
		Version:         1,
		Seed:            777,
		GovernanceCount: &count,
		MemberCounts:    map[string]int{"AU": 5},
	}

	filled := GenerateInput{}.ApplyProfile(profile)
	if filled.Seed != 777 || filled.GovernanceCount != 40 || filled.CountryCounts["AU"] != 5 {
		t.Fatalf("profile not applied to zero input: %+v", filled)
	}

	explicit := GenerateInput{
		Seed:            1,
		GovernanceCount: 2,
		CountryCounts:   map[string]int{"US": 1},
	}.ApplyProfile(profile)
	if explicit.Seed != 1 || explicit.GovernanceCount != 2 {
		t.Fatalf("explicit values overridden: %+v", explicit)
	}
	if _, ok := explicit.CountryCounts["AU"]; ok {
		t.Fatalf("explicit country counts overridden: %+v", explicit.CountryCounts)
	}
}

func TestLoadDatasetAndSummary(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	ds, err := svc.GenerateDataset(ctx, GenerateInput{Seed: 11, GovernanceCount: 25})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := svc.LoadDataset(ctx, ds); err != nil {
		t.Fatalf("load: %v", err)
	}

	counts, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if counts.Members != int64(len(ds.Members)) || counts.Citations != 9 || counts.Governance != 25 {
		t.Fatalf("unexpected counts: %+v", counts)
	}

	// A second load replaces, never appends.
	if err := svc.LoadDataset(ctx, ds); err != nil {
		t.Fatalf("second load: %v", err)
	}
	counts, err = svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary after reload: %v", err)
	}
	if counts.Members != int64(len(ds.Members)) {
		t.Fatalf("member count after reload = %d, want %d", counts.Members, len(ds.Members))
	}

	members, err := svc.StoredMembers(ctx, "AU", 5)
	if err != nil {
		t.Fatalf("stored members: %v", err)
	}
	if len(members) != 5 {
		t.Fatalf("stored AU members = %d, want 5", len(members))
	}
	for _, m := range members {
		if m.Country != "AU" {
			t.Fatalf("filter leaked member %s", m.MemberID)
		}
	}
}

func TestExportDataset(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	ds, err := svc.GenerateDataset(ctx, GenerateInput{Seed: 3, GovernanceCount: 8})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	dir := t.TempDir()
	if err := svc.ExportCSV(ctx, ds, dir); err != nil {
		t.Fatalf("export csv: %v", err)
	}
	if err := svc.ExportSQL(ctx, ds, filepath.Join(dir, "seed_data.sql")); err != nil {
		t.Fatalf("export sql: %v", err)
	}

	for _, name := range []string{"member_profiles.csv", "citation_registry.csv", "governance.csv", "seed_data.sql"} {
		if _, statErr := os.Stat(filepath.Join(dir, name)); statErr != nil {
			t.Fatalf("expected export file %s: %v", name, statErr)
		}
	}
}
