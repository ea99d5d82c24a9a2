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

const categoriesTableName = "categories"

var categoryColumns = []any{"id", "user_id", "title", "description"}

// Ensure CategoriesTable implements ICategoryTable at compile time.
var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable for the given database.
func NewCategoriesTable(db *sql.DB) *CategoriesTable {
	return &CategoriesTable{exec: bob.NewDB(db)}
}

// FindByID retrieves the category with the given ID owned by userID.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID, userID string) (*Category, error) {
	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(ownedBy(id, userID)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, wrapErr("categories.FindByID", err)
	}
	return rowToCategory(row), nil
}

// Insert creates a new category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into(categoriesTableName, "user_id", "title", "description"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Title),
			psql.Arg(nullableDescription(create.Description)),
		),
		im.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, wrapErr("categories.Insert", err)
	}
	return rowToCategory(row), nil
}

// Update overwrites title and description of the category owned by update.UserID.
func (t *CategoriesTable) Update(ctx context.Context, update *CategoryUpdate) (*Category, error) {
	q := psql.Update(
		um.Table(categoriesTableName),
		um.SetCol("title").ToArg(update.Title),
		um.SetCol("description").ToArg(nullableDescription(update.Description)),
		um.Where(ownedBy(update.ID, update.UserID)),
		um.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, wrapErr("categories.Update", err)
	}
	return rowToCategory(row), nil
}

// Delete removes the category and returns its last values.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID, userID string) (*Category, error) {
	q := psql.Delete(
		dm.From(categoriesTableName),
		dm.Where(ownedBy(id, userID)),
		dm.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, wrapErr("categories.Delete", err)
	}
	return rowToCategory(row), nil
}

// List returns one page of the user's categories ordered by title.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.OrderBy(psql.Quote("title")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, wrapErr("categories.List", err)
	}
	result := make([]*Category, len(rows))
	for i, row := range rows {
		result[i] = rowToCategory(row)
	}
	return result, nil
}

// Count returns how many categories userID owns.
func (t *CategoriesTable) Count(ctx context.Context, userID string) (int, error) {
	q := psql.Select(
		sm.Columns("count(*)"),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, wrapErr("categories.Count", err)
	}
	return int(count), nil
}
