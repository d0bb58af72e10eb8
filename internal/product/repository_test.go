package product

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AddProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	input := CreateProductInput{
		Name:       "iPhone 15 Pro",
		Price:      999.99,
		Unit:       "piece",
		CategoryID: 1,
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "unit", "category_id"}).
			AddRow(1, input.Name, "", input.Price, input.Unit, input.CategoryID)

		mock.ExpectQuery("INSERT INTO products").
			WithArgs(input.Name, input.Description, input.Price, input.Unit, input.CategoryID).
			WillReturnRows(rows)

		res, err := repo.AddProduct(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.ID)
		assert.Equal(t, 999.99, res.Price)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").WillReturnError(errors.New("db error"))
		_, err := repo.AddProduct(context.Background(), input)
		assert.Error(t, err)
	})
}

func TestRepository_GetProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success_ByCategory", func(t *testing.T) {
		categoryID := int64(1)
		limit := int32(10)
		page := int32(1)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p WHERE p.category_id = \\$1").
			WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "unit", "category_id", "name"}).
			AddRow(1, "iPhone 15 Pro", "", 999.99, "piece", 1, "Electronics")

		mock.ExpectQuery("SELECT p.id, p.name, p.description, p.price, p.unit, p.category_id, c.name").
			WithArgs(categoryID, limit, 0).
			WillReturnRows(rows)

		res, total, err := repo.GetProducts(context.Background(), ListOptions{
			CategoryID: &categoryID,
			Limit:      &limit,
			Page:       &page,
		})
		assert.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Electronics", res[0].CategoryName)
		assert.Equal(t, int64(1), total)
	})

	t.Run("Count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p").
			WillReturnError(errors.New("db error"))

		_, _, err := repo.GetProducts(context.Background(), ListOptions{})
		assert.Error(t, err)
	})
}

func TestRepository_GetProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "unit", "category_id", "name"}).
			AddRow(1, "iPhone 15 Pro", "", 999.99, "piece", 1, "Electronics")

		mock.ExpectQuery("SELECT p.id, p.name, p.description, p.price, p.unit, p.category_id, c.name").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		res, err := repo.GetProduct(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "iPhone 15 Pro", res.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT p.id, p.name, p.description, p.price, p.unit, p.category_id, c.name").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "unit", "category_id", "name"}))

		_, err := repo.GetProduct(context.Background(), 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
