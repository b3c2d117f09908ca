// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-keeper/models"
)

func Test_buildSelectUserQuery_ByEmail(t *testing.T) {
	query, args, err := buildSelectUserQuery(postgresBuilder, sq.Eq{"email": "a@b.c"})
	require.NoError(t, err)

	require.Equal(t, []any{"a@b.c"}, args)
	require.Equal(t,
		"SELECT id, email, password_hash, name, role, created_at, updated_at FROM users WHERE email = $1 LIMIT 1",
		query)
}

func Test_buildInsertUserQuery_Placeholders(t *testing.T) {
	now := time.Now()
	user := models.User{ID: "u-1", Email: "a@b.c", PasswordHash: "h", Name: "Ann", Role: models.RoleUser, CreatedAt: now, UpdatedAt: now}

	query, args, err := buildInsertUserQuery(postgresBuilder, user)
	require.NoError(t, err)
	require.Len(t, args, len(userColumns))
	require.Contains(t, query, "$7")

	query, _, err = buildInsertUserQuery(sqliteBuilder, user)
	require.NoError(t, err)
	require.NotContains(t, query, "$1")
	require.Equal(t, len(userColumns), strings.Count(query, "?"))
}

func Test_buildListProductsQuery(t *testing.T) {
	minPrice, maxPrice := 1.5, 20.0

	tests := []struct {
		name      string
		filter    models.ProductFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			filter:    models.ProductFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "owner only",
			filter:    models.ProductFilter{UserID: "u-1"},
			wantWhere: "WHERE p.user_id = $1",
			wantArgs:  []any{"u-1"},
		},
		{
			name:      "price range",
			filter:    models.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice},
			wantWhere: "WHERE p.price >= $1 AND p.price <= $2",
			wantArgs:  []any{minPrice, maxPrice},
		},
		{
			name:      "all filters",
			filter:    models.ProductFilter{UserID: "u-1", MinPrice: &minPrice, MaxPrice: &maxPrice},
			wantWhere: "WHERE p.user_id = $1 AND p.price >= $2 AND p.price <= $3",
			wantArgs:  []any{"u-1", minPrice, maxPrice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListProductsQuery(postgresBuilder, tt.filter)
			require.NoError(t, err)

			assert.True(t, strings.HasSuffix(query, "ORDER BY p.created_at DESC, p.id DESC"))
			assert.Contains(t, query, "LEFT JOIN users u ON u.id = p.user_id")
			if tt.wantWhere == "" {
				assert.NotContains(t, query, "WHERE")
			} else {
				assert.Contains(t, query, tt.wantWhere)
			}
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildUpdateProductQuery(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	name := "  Desk  "
	stock := int64(7)

	tests := []struct {
		name      string
		update    models.UpdateProductRequest
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "name is trimmed",
			update:    models.UpdateProductRequest{Name: &name},
			wantQuery: "UPDATE products SET updated_at = $1, name = $2 WHERE id = $3",
			wantArgs:  []any{now, "Desk", "p-1"},
		},
		{
			name:      "clear description",
			update:    models.UpdateProductRequest{ClearDescription: true, Stock: &stock},
			wantQuery: "UPDATE products SET updated_at = $1, description = $2, stock = $3 WHERE id = $4",
			wantArgs:  []any{now, nil, stock, "p-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateProductQuery(postgresBuilder, "p-1", tt.update, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildDeleteProductQuery(t *testing.T) {
	query, args, err := buildDeleteProductQuery(sqliteBuilder, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM products WHERE id = ?", query)
	assert.Equal(t, []any{"p-1"}, args)
}
