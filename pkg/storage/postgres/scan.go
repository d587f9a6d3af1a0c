package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
)

const scansTable = "scans"

func (p *PgSQL) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	pgScans, err := domainScansToPg(scans)
	if err != nil {
		return nil, err
	}

	var result []PgScan
	if err := p.Builder.Insert(scansTable).
		Rows(pgScans).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"end_time":      goqu.L("EXCLUDED.end_time"),
			"total_scanned": goqu.L("EXCLUDED.total_scanned"),
			"threats":       goqu.L("EXCLUDED.threats"),
		})).
		Returning(&PgScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scans into pg: %w", err)
	}

	return pgScansToDomain(result)
}

func (p *PgSQL) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) OwnerScans(ctx context.Context, ownerID domain.UserID, limit uint) ([]domain.Scan, error) {
	var rows []PgScan
	if err := p.Builder.From(scansTable).
		Where(goqu.I("owner_id").Eq(uuid.UUID(ownerID))).
		Order(goqu.I("start_time").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch owner scans from pg: %w", err)
	}

	return pgScansToDomain(rows)
}

func (p *PgSQL) RecentScans(ctx context.Context, limit uint) ([]domain.Scan, error) {
	var rows []PgScan
	if err := p.Builder.From(scansTable).
		Order(goqu.I("start_time").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent scans from pg: %w", err)
	}

	return pgScansToDomain(rows)
}

// CompleteScan finalizes a running scan with a single guarded UPDATE. The
// `end_time IS NULL` predicate is the compare-and-set: once any writer sets
// end_time, every later attempt matches no row and reports nil.
func (p *PgSQL) CompleteScan(ctx context.Context,
	id domain.ScanID,
	completion storage.ScanCompletion) (*domain.Scan, error) {
	threats := completion.Threats
	if threats == nil {
		threats = []domain.Threat{}
	}
	raw, err := json.Marshal(threats)
	if err != nil {
		return nil, fmt.Errorf("could not marshal threats: %w", err)
	}

	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(goqu.Record{
			// end_time never precedes start_time, even with a skewed clock
			"end_time":      goqu.L("GREATEST(?::timestamptz, start_time)", completion.EndTime),
			"total_scanned": completion.TotalScanned,
			"threats":       raw,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("end_time").IsNull(),
	).Returning(&PgScan{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not complete scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteScan(ctx context.Context, id domain.ScanID) (bool, error) {
	res, err := p.Builder.Delete(scansTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete scan in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) CountScans(ctx context.Context, filter storage.ScanFilter) (int64, error) {
	w := []goqu.Expression{}
	if !filter.OwnerID.IsZero() {
		w = append(w, goqu.I("owner_id").Eq(uuid.UUID(filter.OwnerID)))
	}
	if filter.Type != "" {
		w = append(w, goqu.I("type").Eq(string(filter.Type)))
	}
	if filter.Running != nil {
		if *filter.Running {
			w = append(w, goqu.I("end_time").IsNull())
		} else {
			w = append(w, goqu.I("end_time").IsNotNull())
		}
	}

	count, err := p.Builder.From(scansTable).Where(w...).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count scans in pg: %w", err)
	}

	return count, nil
}
