package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"

	auditDomain "lendhub-backend/internal/domain/audit"
)

// Action tags contain underscores, which LIKE treats as a single-character
// wildcard. '|' is the escape character because MySQL and sqlite disagree
// on backslash handling in string literals.
var likeEscaper = strings.NewReplacer("|", "||", "%", "|%", "_", "|_")

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) List(ctx context.Context, f auditDomain.Filter) ([]auditDomain.Entry, error) {
	q := r.db.WithContext(ctx).
		Where("loan_application_id = ?", f.LoanApplicationID).
		Order("created_at DESC, id DESC")
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var out []auditDomain.Entry
	res := q.Find(&out)
	return out, res.Error
}

func (r *AuditRepository) Count(ctx context.Context, loanApplicationID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&auditDomain.Entry{}).
		Where("loan_application_id = ?", loanApplicationID).
		Count(&n)
	return n, res.Error
}

func (r *AuditRepository) CountByAction(ctx context.Context, loanApplicationID string) (map[auditDomain.Action]int64, error) {
	type row struct {
		Action auditDomain.Action
		N      int64
	}
	var rows []row
	res := r.db.WithContext(ctx).
		Model(&auditDomain.Entry{}).
		Select("action, COUNT(*) AS n").
		Where("loan_application_id = ?", loanApplicationID).
		Group("action").
		Scan(&rows)
	if res.Error != nil {
		return nil, res.Error
	}
	out := make(map[auditDomain.Action]int64, len(rows))
	for _, rw := range rows {
		out[rw.Action] = rw.N
	}
	return out, nil
}

func (r *AuditRepository) ListByActionPrefix(ctx context.Context, loanApplicationID, prefix string) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ? AND action LIKE ? ESCAPE '|'", loanApplicationID, likeEscaper.Replace(prefix)+"%").
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
