package internal

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/DrGermanius/backoffice/internal/migrations"
	"github.com/DrGermanius/backoffice/internal/model"
)

const (
	withdrawalFields = "id, organization_id, user_id, reference_id, amount, bank_code, channel_code, " +
		"account_number_encrypted, account_holder_name_encrypted, account_number_last4, status, approval_status, " +
		"is_admin, batch_id, payout_provider_id, rejection_reason, approved_by, approved_at, created_at, updated_at"
	paymentInfoFields = "organization_id, user_id, bank_code, account_number_encrypted, " +
		"account_holder_name_encrypted, account_number_last4, last_updated_at, created_at"

	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

type IRepository interface {
	GetOrganizationRevenue(context.Context, string) (int64, error)
	GetRevenueShare(context.Context, string, string) (model.RevenueShare, bool, error)
	GetRevenueShares(context.Context, string) ([]model.RevenueShare, error)
	GetWithdrawnAmount(context.Context, string, string) (int64, error)
	CreateWithdrawal(context.Context, model.Withdrawal, int64) error
	GetWithdrawal(context.Context, string, string) (model.Withdrawal, error)
	GetWithdrawals(context.Context, model.WithdrawalFilter) ([]model.Withdrawal, int, error)
	GetApprovedWithdrawals(context.Context, string, []string) ([]model.Withdrawal, error)
	UpdateApproval(context.Context, model.ApprovalUpdate) (model.Withdrawal, error)
	MarkDisbursed(context.Context, model.DisbursementUpdate) error
	UpdatePayoutStatus(context.Context, string, string) (model.Withdrawal, error)
	GetPaymentInfo(context.Context, string, string) (model.PaymentInfo, error)
	SavePaymentInfo(context.Context, model.PaymentInfo, time.Time) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, errors.Wrap(err, "could not reach database")
	}

	if err = migrations.Up(conn); err != nil {
		return nil, errors.Wrap(err, "could not migrate database")
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanWithdrawal(s scanner) (model.Withdrawal, error) {
	var w model.Withdrawal
	err := s.Scan(&w.ID, &w.OrganizationID, &w.UserID, &w.ReferenceID, &w.Amount, &w.BankCode, &w.ChannelCode,
		&w.AccountNumberEncrypted, &w.AccountHolderNameEncrypted, &w.AccountNumberLast4, &w.Status, &w.ApprovalStatus,
		&w.IsAdmin, &w.BatchID, &w.PayoutProviderID, &w.RejectionReason, &w.ApprovedBy, &w.ApprovedAt,
		&w.CreatedAt, &w.UpdatedAt)
	return w, err
}

// inList renders constant statuses into an IN list; values never come from a request.
func inList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

func (r Repository) GetOrganizationRevenue(ctx context.Context, orgID string) (int64, error) {
	var total int64
	err := r.Conn.QueryRowContext(ctx, "SELECT COALESCE(SUM(amount), 0) FROM payments WHERE organization_id = $1 AND status IN "+
		inList(model.RevenuePaymentStatuses), orgID).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, "could not sum organization revenue")
	}
	return total, nil
}

func (r Repository) GetRevenueShare(ctx context.Context, orgID, userID string) (model.RevenueShare, bool, error) {
	rs := model.RevenueShare{OrganizationID: orgID, UserID: userID}
	err := r.Conn.QueryRowContext(ctx, "SELECT share_percent FROM revenue_shares WHERE organization_id = $1 AND user_id = $2",
		orgID, userID).Scan(&rs.SharePercent)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RevenueShare{}, false, nil
	}
	if err != nil {
		return model.RevenueShare{}, false, errors.Wrap(err, "could not get revenue share")
	}
	return rs, true, nil
}

func (r Repository) GetRevenueShares(ctx context.Context, orgID string) ([]model.RevenueShare, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT organization_id, user_id, share_percent FROM revenue_shares WHERE organization_id = $1", orgID)
	if err != nil {
		return nil, errors.Wrap(err, "could not get revenue shares")
	}
	defer rows.Close()

	var shares []model.RevenueShare
	for rows.Next() {
		var rs model.RevenueShare
		if err = rows.Scan(&rs.OrganizationID, &rs.UserID, &rs.SharePercent); err != nil {
			return nil, err
		}
		shares = append(shares, rs)
	}

	return shares, rows.Err()
}

func withdrawnQuery() string {
	return "SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE organization_id = $1 AND user_id = $2 AND status IN " +
		inList(model.ActiveWithdrawalStatuses)
}

func (r Repository) GetWithdrawnAmount(ctx context.Context, orgID, userID string) (int64, error) {
	var total int64
	err := r.Conn.QueryRowContext(ctx, withdrawnQuery(), orgID, userID).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, "could not sum withdrawals")
	}
	return total, nil
}

// CreateWithdrawal inserts w only if the actor's active withdrawals plus w still
// fit into grossShare. The check and the insert run under an advisory lock held
// by the transaction, so concurrent requests of one actor are serialized.
func (r Repository) CreateWithdrawal(ctx context.Context, w model.Withdrawal, grossShare int64) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lockKey := w.OrganizationID + ":" + w.UserID
	if _, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", lockKey); err != nil {
		return errors.Wrap(err, "could not lock actor balance")
	}

	var withdrawn int64
	if err = tx.QueryRowContext(ctx, withdrawnQuery(), w.OrganizationID, w.UserID).Scan(&withdrawn); err != nil {
		return errors.Wrap(err, "could not sum withdrawals")
	}

	if available := grossShare - withdrawn; w.Amount > available {
		if available < 0 {
			available = 0
		}
		return insufficientBalance(w.Amount, available)
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO withdrawals ("+withdrawalFields+") "+
		"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)",
		w.ID, w.OrganizationID, w.UserID, w.ReferenceID, w.Amount, w.BankCode, w.ChannelCode,
		w.AccountNumberEncrypted, w.AccountHolderNameEncrypted, w.AccountNumberLast4, w.Status, w.ApprovalStatus,
		w.IsAdmin, w.BatchID, w.PayoutProviderID, w.RejectionReason, w.ApprovedBy, w.ApprovedAt, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateReferenceID
		}
		return errors.Wrap(err, "could not insert withdrawal")
	}

	return tx.Commit()
}

func (r Repository) GetWithdrawal(ctx context.Context, orgID, id string) (model.Withdrawal, error) {
	row := r.Conn.QueryRowContext(ctx, "SELECT "+withdrawalFields+" FROM withdrawals WHERE id = $1 AND organization_id = $2", id, orgID)
	w, err := scanWithdrawal(row)
	var pgErr *pgconn.PgError
	if errors.Is(err, sql.ErrNoRows) || (errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation) {
		return model.Withdrawal{}, ErrWithdrawalNotFound
	}
	if err != nil {
		return model.Withdrawal{}, errors.Wrap(err, "could not get withdrawal")
	}
	return w, nil
}

func (r Repository) GetWithdrawals(ctx context.Context, f model.WithdrawalFilter) ([]model.Withdrawal, int, error) {
	where := []string{"organization_id = $1"}
	args := []interface{}{f.OrganizationID}
	add := func(column, value string) {
		args = append(args, value)
		where = append(where, column+" = $"+strconv.Itoa(len(args)))
	}
	if f.UserID != "" {
		add("user_id", f.UserID)
	}
	if f.Status != "" {
		add("status", f.Status)
	}
	if f.ApprovalStatus != "" {
		add("approval_status", f.ApprovalStatus)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.Conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM withdrawals WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "could not count withdrawals")
	}

	query := "SELECT " + withdrawalFields + " FROM withdrawals WHERE " + cond + " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}
	if f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", f.Offset)
	}

	ws, err := r.queryWithdrawals(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return ws, total, nil
}

// GetApprovedWithdrawals keeps the order of ids.
func (r Repository) GetApprovedWithdrawals(ctx context.Context, orgID string, ids []string) ([]model.Withdrawal, error) {
	args := []interface{}{orgID, model.ApprovalStatusApproved}
	placeholders := make([]string, len(ids))
	for i, id := range ids {
		args = append(args, id)
		placeholders[i] = "$" + strconv.Itoa(len(args))
	}

	query := "SELECT " + withdrawalFields + " FROM withdrawals WHERE organization_id = $1 AND approval_status = $2 AND id IN (" +
		strings.Join(placeholders, ", ") + ")"
	ws, err := r.queryWithdrawals(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Withdrawal, len(ws))
	for _, w := range ws {
		byID[w.ID] = w
	}
	ordered := make([]model.Withdrawal, 0, len(ws))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			ordered = append(ordered, w)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r Repository) queryWithdrawals(ctx context.Context, query string, args ...interface{}) ([]model.Withdrawal, error) {
	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "could not query withdrawals")
	}
	defer rows.Close()

	var ws []model.Withdrawal
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}

	return ws, rows.Err()
}

// UpdateApproval only touches a withdrawal that is still PENDING_APPROVAL.
// ErrStateChanged means another decision got there first (or the row is gone).
func (r Repository) UpdateApproval(ctx context.Context, u model.ApprovalUpdate) (model.Withdrawal, error) {
	row := r.Conn.QueryRowContext(ctx, `UPDATE withdrawals
		SET approval_status = $1, status = COALESCE(NULLIF($2, ''), status), rejection_reason = $3,
			approved_by = $4, approved_at = $5, updated_at = $5
		WHERE id = $6 AND organization_id = $7 AND approval_status = $8
		RETURNING `+withdrawalFields,
		u.ApprovalStatus, u.Status, u.RejectionReason, u.DecidedBy, u.DecidedAt,
		u.WithdrawalID, u.OrganizationID, model.ApprovalStatusPendingApproval)

	w, err := scanWithdrawal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Withdrawal{}, ErrStateChanged
	}
	if err != nil {
		return model.Withdrawal{}, errors.Wrap(err, "could not update approval")
	}
	return w, nil
}

// MarkDisbursed only touches a withdrawal that is still APPROVED.
func (r Repository) MarkDisbursed(ctx context.Context, u model.DisbursementUpdate) error {
	res, err := r.Conn.ExecContext(ctx, `UPDATE withdrawals
		SET approval_status = $1, status = $2, payout_provider_id = $3, batch_id = $4, updated_at = $5
		WHERE id = $6 AND approval_status = $7`,
		model.ApprovalStatusDisbursed, u.Status, u.PayoutProviderID, u.BatchID, u.DisbursedAt,
		u.WithdrawalID, model.ApprovalStatusApproved)
	if err != nil {
		return errors.Wrap(err, "could not mark withdrawal disbursed")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "could not retrieve num rows affected")
	}
	if n != 1 {
		return ErrStateChanged
	}
	return nil
}

// UpdatePayoutStatus never moves a payout out of a terminal status. For a finalized
// payout the row is returned unchanged.
func (r Repository) UpdatePayoutStatus(ctx context.Context, payoutProviderID, status string) (model.Withdrawal, error) {
	row := r.Conn.QueryRowContext(ctx, "UPDATE withdrawals SET status = $1, updated_at = $2 "+
		"WHERE payout_provider_id = $3 AND status NOT IN ($4, $5, $6, $7) RETURNING "+withdrawalFields,
		status, time.Now(), payoutProviderID,
		model.WithdrawalStatusSucceeded, model.WithdrawalStatusFailed, model.WithdrawalStatusCancelled, model.WithdrawalStatusReversed)
	w, err := scanWithdrawal(row)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Withdrawal{}, errors.Wrap(err, "could not update payout status")
	}

	row = r.Conn.QueryRowContext(ctx, "SELECT "+withdrawalFields+" FROM withdrawals WHERE payout_provider_id = $1", payoutProviderID)
	w, err = scanWithdrawal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Withdrawal{}, ErrWithdrawalNotFound
	}
	if err != nil {
		return model.Withdrawal{}, errors.Wrap(err, "could not get withdrawal by payout")
	}
	return w, nil
}

func (r Repository) GetPaymentInfo(ctx context.Context, orgID, userID string) (model.PaymentInfo, error) {
	var p model.PaymentInfo
	err := r.Conn.QueryRowContext(ctx, "SELECT "+paymentInfoFields+" FROM payment_infos WHERE organization_id = $1 AND user_id = $2",
		orgID, userID).Scan(&p.OrganizationID, &p.UserID, &p.BankCode, &p.AccountNumberEncrypted,
		&p.AccountHolderNameEncrypted, &p.AccountNumberLast4, &p.LastUpdatedAt, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PaymentInfo{}, ErrPaymentInfoNotFound
	}
	if err != nil {
		return model.PaymentInfo{}, errors.Wrap(err, "could not get payment info")
	}
	return p, nil
}

// SavePaymentInfo inserts or overwrites the actor's payment info. An existing
// row is only overwritten when it was last updated at or before editableBefore.
func (r Repository) SavePaymentInfo(ctx context.Context, p model.PaymentInfo, editableBefore time.Time) error {
	res, err := r.Conn.ExecContext(ctx, `INSERT INTO payment_infos (`+paymentInfoFields+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (organization_id, user_id) DO UPDATE
		SET bank_code = EXCLUDED.bank_code,
			account_number_encrypted = EXCLUDED.account_number_encrypted,
			account_holder_name_encrypted = EXCLUDED.account_holder_name_encrypted,
			account_number_last4 = EXCLUDED.account_number_last4,
			last_updated_at = EXCLUDED.last_updated_at
		WHERE payment_infos.last_updated_at <= $9`,
		p.OrganizationID, p.UserID, p.BankCode, p.AccountNumberEncrypted, p.AccountHolderNameEncrypted,
		p.AccountNumberLast4, p.LastUpdatedAt, p.CreatedAt, editableBefore)
	if err != nil {
		return errors.Wrap(err, "could not save payment info")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "could not retrieve num rows affected")
	}
	if n != 1 {
		return ErrStateChanged
	}
	return nil
}
