package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "user_id", "category_id", "title", "type", "amount", "paid_or_received_at", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

// FindByID retrieves the transaction with the given ID owned by userID.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID, userID string) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(ownedBy(id, userID)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, wrapErr("transactions.FindByID", err)
	}
	return rowToTransaction(row), nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into(transactionsTableName, "user_id", "category_id", "title", "type", "amount", "paid_or_received_at", "created_at"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Title),
			psql.Arg(int16(create.Type)),
			psql.Arg(create.Amount),
			psql.Arg(create.PaidOrReceivedAt),
			psql.Arg(create.CreatedAt),
		),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, wrapErr("transactions.Insert", err)
	}
	return rowToTransaction(row), nil
}

// Update overwrites the mutable columns in one statement. ErrNotFound when the
// ID does not exist for update.UserID.
func (t *TransactionsTable) Update(ctx context.Context, update *TransactionUpdate) (*Transaction, error) {
	q := psql.Update(
		um.Table(transactionsTableName),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("title").ToArg(update.Title),
		um.SetCol("type").ToArg(int16(update.Type)),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("paid_or_received_at").ToArg(update.PaidOrReceivedAt),
		um.Where(ownedBy(update.ID, update.UserID)),
		um.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, wrapErr("transactions.Update", err)
	}
	return rowToTransaction(row), nil
}

// Delete removes the transaction and returns its last values.
func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID, userID string) (*Transaction, error) {
	q := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(ownedBy(id, userID)),
		dm.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, wrapErr("transactions.Delete", err)
	}
	return rowToTransaction(row), nil
}

// ListByPeriod returns one page ordered by paid_or_received_at ascending.
func (t *TransactionsTable) ListByPeriod(ctx context.Context, filter *TransactionPeriodFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(periodPredicate(filter)),
		sm.OrderBy(psql.Quote("paid_or_received_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, wrapErr("transactions.ListByPeriod", err)
	}
	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// CountByPeriod counts every row matching the filter, ignoring pagination.
func (t *TransactionsTable) CountByPeriod(ctx context.Context, filter *TransactionPeriodFilter) (int, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From(transactionsTableName),
		sm.Where(periodPredicate(filter)),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, wrapErr("transactions.CountByPeriod", err)
	}
	return int(count), nil
}

func periodPredicate(filter *TransactionPeriodFilter) bob.Expression {
	return psql.And(
		psql.Quote("user_id").EQ(psql.Arg(filter.UserID)),
		psql.Quote("paid_or_received_at").GTE(psql.Arg(filter.StartDate)),
		psql.Quote("paid_or_received_at").LTE(psql.Arg(filter.EndDate)),
	)
}

// ownedBy is the mandatory two-key predicate for single-record statements.
func ownedBy(id uuid.UUID, userID string) bob.Expression {
	return psql.And(
		psql.Quote("id").EQ(psql.Arg(id)),
		psql.Quote("user_id").EQ(psql.Arg(userID)),
	)
}
