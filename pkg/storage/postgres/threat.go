package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
)

const threatsTable = "threats"

func (p *PgSQL) StoreThreats(ctx context.Context, threats ...domain.Threat) ([]domain.Threat, error) {
	if len(threats) == 0 {
		return nil, nil
	}

	var result []PgThreat
	if err := p.Builder.Insert(threatsTable).
		Rows(domainThreatsToPg(threats)).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"name":        goqu.L("EXCLUDED.name"),
			"type":        goqu.L("EXCLUDED.type"),
			"description": goqu.L("EXCLUDED.description"),
			"severity":    goqu.L("EXCLUDED.severity"),
			"file_path":   goqu.L("EXCLUDED.file_path"),
			// is_cleaned only ever flips to true, never back
			"is_cleaned": goqu.L("threats.is_cleaned OR EXCLUDED.is_cleaned"),
		})).
		Returning(&PgThreat{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store threats into pg: %w", err)
	}

	return pgThreatsToDomain(result), nil
}

func (p *PgSQL) ThreatByID(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	var row PgThreat
	found, err := p.Builder.From(threatsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch threat by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Threats(ctx context.Context, filter storage.ThreatFilter) ([]domain.Threat, error) {
	var rows []PgThreat
	if err := p.Builder.From(threatsTable).
		Where(threatFilterExpressions(filter)...).
		Order(goqu.I("detected_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch threats from pg: %w", err)
	}

	return pgThreatsToDomain(rows), nil
}

func (p *PgSQL) MarkThreatCleaned(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	var row PgThreat
	found, err := p.Builder.Update(threatsTable).
		Set(goqu.Record{"is_cleaned": true}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgThreat{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark threat cleaned in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteThreat(ctx context.Context, id domain.ThreatID) (bool, error) {
	res, err := p.Builder.Delete(threatsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete threat in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) CountThreats(ctx context.Context, filter storage.ThreatFilter) (int64, error) {
	count, err := p.Builder.From(threatsTable).
		Where(threatFilterExpressions(filter)...).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count threats in pg: %w", err)
	}

	return count, nil
}

func threatFilterExpressions(filter storage.ThreatFilter) []goqu.Expression {
	w := []goqu.Expression{}
	if !filter.OwnerID.IsZero() {
		w = append(w, goqu.I("owner_id").Eq(uuid.UUID(filter.OwnerID)))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("type").Eq(string(filter.Type)))
	}
	if filter.Cleaned != nil {
		w = append(w, goqu.I("is_cleaned").Eq(*filter.Cleaned))
	}

	return w
}
