package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-keeper/models"
)

var userColumns = []string{
	"id",
	"email",
	"password_hash",
	"name",
	"role",
	"created_at",
	"updated_at",
}

// productColumns selects the product row plus its owner summary. The owner
// columns come from a LEFT JOIN and are therefore nullable.
var productColumns = []string{
	"p.id",
	"p.name",
	"p.description",
	"p.price",
	"p.stock",
	"p.user_id",
	"p.created_at",
	"p.updated_at",
	"u.id",
	"u.name",
	"u.email",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, user.Name, string(user.Role), user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildInsertProductQuery(b sq.StatementBuilderType, product models.Product) (string, []any, error) {
	return b.Insert("products").
		Columns("id", "name", "description", "price", "stock", "user_id", "created_at", "updated_at").
		Values(
			product.ID,
			product.Name,
			product.Description,
			product.Price,
			product.Stock,
			product.UserID,
			product.CreatedAt,
			product.UpdatedAt,
		).
		ToSql()
}

func selectProducts(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(productColumns...).
		From("products p").
		LeftJoin("users u ON u.id = p.user_id")
}

// buildListProductsQuery applies every present filter with AND semantics and
// orders newest first.
func buildListProductsQuery(b sq.StatementBuilderType, filter models.ProductFilter) (string, []any, error) {
	query := selectProducts(b)

	if filter.UserID != "" {
		query = query.Where(sq.Eq{"p.user_id": filter.UserID})
	}
	if filter.MinPrice != nil {
		query = query.Where(sq.GtOrEq{"p.price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		query = query.Where(sq.LtOrEq{"p.price": *filter.MaxPrice})
	}

	return query.OrderBy("p.created_at DESC", "p.id DESC").ToSql()
}

func buildSelectProductByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return selectProducts(b).
		Where(sq.Eq{"p.id": id}).
		Limit(1).
		ToSql()
}

// buildUpdateProductQuery sets only the fields present in update and always
// bumps updated_at.
func buildUpdateProductQuery(b sq.StatementBuilderType, id string, update models.UpdateProductRequest, now time.Time) (string, []any, error) {
	query := b.Update("products").Set("updated_at", now)

	if update.Name != nil {
		query = query.Set("name", strings.TrimSpace(*update.Name))
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	} else if update.ClearDescription {
		query = query.Set("description", nil)
	}
	if update.Price != nil {
		query = query.Set("price", *update.Price)
	}
	if update.Stock != nil {
		query = query.Set("stock", *update.Stock)
	}

	return query.Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteProductQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
}
