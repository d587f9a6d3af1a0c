package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"avconsole/pkg/domain"
)

// PgScan is the row shape of the scans table. Discovered threats are embedded
// as a JSONB document so a scan round-trips as one record.
type PgScan struct {
	ID      uuid.UUID     `db:"id"`
	OwnerID uuid.NullUUID `db:"owner_id"`

	Type      string       `db:"type"`
	StartTime time.Time    `db:"start_time"`
	EndTime   sql.NullTime `db:"end_time"`

	TotalScanned int             `db:"total_scanned"`
	Threats      json.RawMessage `db:"threats"`
}

func (p *PgScan) ToDomain() (*domain.Scan, error) {
	threats := []domain.Threat{}
	if len(p.Threats) > 0 {
		if err := json.Unmarshal(p.Threats, &threats); err != nil {
			return nil, fmt.Errorf("could not unmarshal scan threats: %w", err)
		}
	}

	scan := &domain.Scan{
		ID:           domain.ScanID(p.ID),
		Type:         domain.ScanType(p.Type),
		StartTime:    p.StartTime,
		TotalScanned: p.TotalScanned,
		Threats:      threats,
	}
	if p.OwnerID.Valid {
		scan.OwnerID = domain.UserID(p.OwnerID.UUID)
	}
	if p.EndTime.Valid {
		scan.EndTime = p.EndTime.Time
	}

	return scan, nil
}

func (p *PgScan) FromDomain(scan domain.Scan) error {
	threats := scan.Threats
	if threats == nil {
		threats = []domain.Threat{}
	}
	raw, err := json.Marshal(threats)
	if err != nil {
		return fmt.Errorf("could not marshal scan threats: %w", err)
	}

	*p = PgScan{
		ID:           uuid.UUID(scan.ID),
		OwnerID:      nullUUID(uuid.UUID(scan.OwnerID)),
		Type:         string(scan.Type),
		StartTime:    scan.StartTime,
		EndTime:      nullTime(scan.EndTime),
		TotalScanned: scan.TotalScanned,
		Threats:      raw,
	}

	return nil
}

// PgThreat is the row shape of the threats table.
type PgThreat struct {
	ID      uuid.UUID     `db:"id"`
	OwnerID uuid.NullUUID `db:"owner_id"`

	Name        string         `db:"name"`
	Type        string         `db:"type"`
	Description string         `db:"description"`
	Severity    string         `db:"severity"`
	FilePath    sql.NullString `db:"file_path"`

	IsCleaned  bool      `db:"is_cleaned"`
	DetectedAt time.Time `db:"detected_at"`
}

func (p *PgThreat) ToDomain() *domain.Threat {
	threat := &domain.Threat{
		ID:          domain.ThreatID(p.ID),
		Name:        p.Name,
		Type:        domain.ThreatType(p.Type),
		Description: p.Description,
		Severity:    domain.Severity(p.Severity),
		FilePath:    p.FilePath.String,
		Cleaned:     p.IsCleaned,
		DetectedAt:  p.DetectedAt,
	}
	if p.OwnerID.Valid {
		threat.OwnerID = domain.UserID(p.OwnerID.UUID)
	}

	return threat
}

func (p *PgThreat) FromDomain(threat domain.Threat) {
	*p = PgThreat{
		ID:          uuid.UUID(threat.ID),
		OwnerID:     nullUUID(uuid.UUID(threat.OwnerID)),
		Name:        threat.Name,
		Type:        string(threat.Type),
		Description: threat.Description,
		Severity:    string(threat.Severity),
		FilePath: sql.NullString{
			String: threat.FilePath,
			Valid:  threat.FilePath != "",
		},
		IsCleaned:  threat.Cleaned,
		DetectedAt: threat.DetectedAt,
	}
}

// PgUser is the row shape of the users table.
type PgUser struct {
	ID uuid.UUID `db:"id"`

	Email       string `db:"email"`
	DisplayName string `db:"display_name"`
	IsAdmin     bool   `db:"is_admin"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:          domain.UserID(p.ID),
		Email:       p.Email,
		DisplayName: p.DisplayName,
		IsAdmin:     p.IsAdmin,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:          uuid.UUID(user.ID),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
	}
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func domainScansToPg(scans []domain.Scan) ([]PgScan, error) {
	out := make([]PgScan, len(scans))
	for i := range out {
		if err := out[i].FromDomain(scans[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgScansToDomain(scans []PgScan) ([]domain.Scan, error) {
	out := make([]domain.Scan, 0, len(scans))
	for _, scan := range scans {
		d, err := scan.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func domainThreatsToPg(threats []domain.Threat) []PgThreat {
	out := make([]PgThreat, len(threats))
	for i := range out {
		out[i].FromDomain(threats[i])
	}

	return out
}

func pgThreatsToDomain(threats []PgThreat) []domain.Threat {
	out := make([]domain.Threat, 0, len(threats))
	for _, threat := range threats {
		out = append(out, *threat.ToDomain())
	}

	return out
}
