package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"advisorseed/internal/domain/dataset"
	"advisorseed/internal/errs"
	"advisorseed/internal/infrastructure/persistence/sqlite/model"
	"advisorseed/internal/ports"
)

const insertBatchSize = 100

type DatasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

func (r *DatasetRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

// ReplaceDataset clears the three tables and loads the dataset rows.
// Callers wanting atomicity run it inside a unit of work.
func (r *DatasetRepository) ReplaceDataset(ctx context.Context, ds dataset.Dataset) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	for _, target := range []any{&model.GovernanceLog{}, &model.Citation{}, &model.MemberProfile{}} {
		if err := db.Where("1 = 1").Delete(target).Error; err != nil {
			return errs.Wrap(err, "clear table")
		}
	}

	members := make([]model.MemberProfile, 0, len(ds.Members))
	for _, m := range ds.Members {
		members = append(members, memberToModel(m))
	}
	if len(members) > 0 {
		if err := db.CreateInBatches(members, insertBatchSize).Error; err != nil {
			return errs.Wrap(err, "insert member profiles")
		}
	}

	citations := make([]model.Citation, 0, len(ds.Citations))
	for _, c := range ds.Citations {
		citations = append(citations, citationToModel(c))
	}
	if len(citations) > 0 {
		if err := db.CreateInBatches(citations, insertBatchSize).Error; err != nil {
			return errs.Wrap(err, "insert citation registry")
		}
	}

	logs := make([]model.GovernanceLog, 0, len(ds.Governance))
	for _, g := range ds.Governance {
		logs = append(logs, governanceToModel(g))
	}
	if len(logs) > 0 {
		if err := db.CreateInBatches(logs, insertBatchSize).Error; err != nil {
			return errs.Wrap(err, "insert governance logs")
		}
	}

	return nil
}

func (r *DatasetRepository) Counts(ctx context.Context) (ports.TableCounts, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.TableCounts{}, err
	}

	var counts ports.TableCounts
	if err := db.Model(&model.MemberProfile{}).Count(&counts.Members).Error; err != nil {
		return ports.TableCounts{}, errs.Wrap(err, "count member profiles")
	}
	if err := db.Model(&model.Citation{}).Count(&counts.Citations).Error; err != nil {
		return ports.TableCounts{}, errs.Wrap(err, "count citation registry")
	}
	if err := db.Model(&model.GovernanceLog{}).Count(&counts.Governance).Error; err != nil {
		return ports.TableCounts{}, errs.Wrap(err, "count governance logs")
	}
	return counts, nil
}

func (r *DatasetRepository) ListMembers(ctx context.Context, country string, limit int) ([]dataset.MemberProfile, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.MemberProfile{})
	if trimmed := strings.TrimSpace(country); trimmed != "" {
		query = query.Where("country = ?", strings.ToUpper(trimmed))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.MemberProfile
	if err := query.Order("member_id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query member profiles")
	}

	out := make([]dataset.MemberProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromModel(row))
	}
	return out, nil
}

func (r *DatasetRepository) ListGovernanceByMember(ctx context.Context, memberID string, limit int) ([]dataset.GovernanceLogEntry, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.GovernanceLog{}).Where("user_id = ?", memberID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.GovernanceLog
	if err := query.Order("event_id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query governance logs")
	}

	out := make([]dataset.GovernanceLogEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := governanceFromModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func memberToModel(m dataset.MemberProfile) model.MemberProfile {
	return model.MemberProfile{
		MemberID:                 m.MemberID,
		Country:                  m.Country,
		Name:                     m.Name,
		Age:                      m.Age,
		Gender:                   string(m.Gender),
		EmploymentStatus:         string(m.EmploymentStatus),
		SuperBalance:             m.SuperBalance,
		AnnualIncomeOutsideSuper: m.AnnualIncomeOutsideSuper,
		Debt:                     m.Debt,
		OtherAssets:              m.OtherAssets,
		AccountBasedPension:      m.AccountBasedPension,
		Dependents:               m.Dependents,
		FinancialLiteracy:        m.FinancialLiteracy,
		HealthStatus:             m.HealthStatus,
		HomeOwnership:            m.HomeOwnership,
		RiskProfile:              m.RiskProfile,
		MaritalStatus:            m.MaritalStatus,
		PersonaType:              m.PersonaType,
		PreservationAge:          m.PreservationAge,
	}
}

func memberFromModel(m model.MemberProfile) dataset.MemberProfile {
	return dataset.MemberProfile{
		MemberID:                 m.MemberID,
		Country:                  m.Country,
		Name:                     m.Name,
		Age:                      m.Age,
		Gender:                   dataset.Gender(m.Gender),
		EmploymentStatus:         dataset.EmploymentStatus(m.EmploymentStatus),
		SuperBalance:             m.SuperBalance,
		AnnualIncomeOutsideSuper: m.AnnualIncomeOutsideSuper,
		Debt:                     m.Debt,
		OtherAssets:              m.OtherAssets,
		AccountBasedPension:      m.AccountBasedPension,
		Dependents:               m.Dependents,
		FinancialLiteracy:        m.FinancialLiteracy,
		HealthStatus:             m.HealthStatus,
		HomeOwnership:            m.HomeOwnership,
		RiskProfile:              m.RiskProfile,
		MaritalStatus:            m.MaritalStatus,
		PersonaType:              m.PersonaType,
		PreservationAge:          m.PreservationAge,
	}
}

func citationToModel(c dataset.Citation) model.Citation {
	return model.Citation{
		CitationID:     c.CitationID,
		Country:        c.Country,
		Authority:      c.Authority,
		RegulationName: c.RegulationName,
		RegulationCode: c.RegulationCode,
		EffectiveDate:  c.EffectiveDate,
		SourceURL:      c.SourceURL,
		Description:    c.Description,
		ToolType:       string(c.ToolType),
		LastVerified:   c.LastVerified.UTC().Format(time.RFC3339),
	}
}

func governanceToModel(g dataset.GovernanceLogEntry) model.GovernanceLog {
	return model.GovernanceLog{
		EventID:            g.EventID,
		Timestamp:          g.Timestamp.UTC().Format(time.RFC3339),
		UserID:             g.UserID,
		SessionID:          g.SessionID,
		Country:            g.Country,
		QueryString:        g.QueryString,
		AgentResponse:      g.AgentResponse,
		ResultPreview:      g.ResultPreview,
		Cost:               g.Cost,
		Citations:          strings.Join(g.Citations, ","),
		ToolUsed:           g.ToolUsed,
		JudgeResponse:      g.JudgeResponse,
		JudgeVerdict:       string(g.JudgeVerdict),
		ErrorInfo:          g.ErrorInfo,
		ValidationMode:     g.ValidationMode,
		ValidationAttempts: g.ValidationAttempts,
		TotalTimeSeconds:   g.TotalTimeSeconds,
	}
}

func governanceFromModel(g model.GovernanceLog) (dataset.GovernanceLogEntry, error) {
	ts, err := time.Parse(time.RFC3339, g.Timestamp)
	if err != nil {
		return dataset.GovernanceLogEntry{}, errs.Wrapf(err, "parse timestamp for event %q", g.EventID)
	}

	var citations []string
	if g.Citations != "" {
		citations = strings.Split(g.Citations, ",")
	}

	return dataset.GovernanceLogEntry{
		EventID:            g.EventID,
		Timestamp:          ts,
		UserID:             g.UserID,
		SessionID:          g.SessionID,
		Country:            g.Country,
		QueryString:        g.QueryString,
		AgentResponse:      g.AgentResponse,
		ResultPreview:      g.ResultPreview,
		Cost:               g.Cost,
		Citations:          citations,
		ToolUsed:           g.ToolUsed,
		JudgeResponse:      g.JudgeResponse,
		JudgeVerdict:       dataset.JudgeVerdict(g.JudgeVerdict),
		ErrorInfo:          g.ErrorInfo,
		ValidationMode:     g.ValidationMode,
		ValidationAttempts: g.ValidationAttempts,
		TotalTimeSeconds:   g.TotalTimeSeconds,
	}, nil
}
