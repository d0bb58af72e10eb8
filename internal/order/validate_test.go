package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() Customer {
	return Customer{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Address: "123 Test Street, City",
	}
}

func validLine() OrderLine {
	return OrderLine{
		ProductID:    "P1",
		ProductName:  "Widget",
		CategoryID:   "C1",
		CategoryName: "Gadgets",
		Quantity:     2,
		UnitPrice:    10.00,
	}
}

func TestValidateCustomer(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, ValidateCustomer(validCustomer()))
	})

	t.Run("Name with digits", func(t *testing.T) {
		c := validCustomer()
		c.Name = "John123"

		errs := ValidateCustomer(c)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "Name can only contain letters (English/Hebrew) and spaces", errs[0].Message)
	})

	t.Run("Hebrew name accepted", func(t *testing.T) {
		c := validCustomer()
		c.Name = "דוד כהן"
		assert.Empty(t, ValidateCustomer(c))
	})

	t.Run("Name too short", func(t *testing.T) {
		c := validCustomer()
		c.Name = "J"

		errs := ValidateCustomer(c)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "between 2 and 100")
	})

	t.Run("Missing everything", func(t *testing.T) {
		errs := ValidateCustomer(Customer{})
		require.Len(t, errs, 3)
		assert.Equal(t, "Name is required", errs[0].Message)
		assert.Equal(t, "Email is required", errs[1].Message)
		assert.Equal(t, "Address is required", errs[2].Message)
	})

	t.Run("Bad email syntax", func(t *testing.T) {
		c := validCustomer()
		c.Email = "not-an-email"

		errs := ValidateCustomer(c)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("Short address", func(t *testing.T) {
		c := validCustomer()
		c.Address = "short"

		errs := ValidateCustomer(c)
		require.Len(t, errs, 1)
		assert.Equal(t, "address", errs[0].Field)
		assert.Contains(t, errs[0].Message, "between 10 and 200")
	})
}

func TestValidateLine(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, ValidateLine(validLine()))
	})

	t.Run("All violations reported", func(t *testing.T) {
		errs := ValidateLine(OrderLine{})
		// productId, productName, categoryId, categoryName, quantity, unitPrice
		assert.Len(t, errs, 6)
	})

	t.Run("Quantity out of range", func(t *testing.T) {
		l := validLine()
		l.Quantity = 0

		errs := ValidateLine(l)
		require.Len(t, errs, 1)
		assert.Equal(t, "quantity", errs[0].Field)

		l.Quantity = 1001
		errs = ValidateLine(l)
		require.Len(t, errs, 1)
		assert.Equal(t, "quantity", errs[0].Field)
	})

	t.Run("Unit price out of range", func(t *testing.T) {
		l := validLine()
		l.UnitPrice = 0.001

		errs := ValidateLine(l)
		require.Len(t, errs, 1)
		assert.Equal(t, "unitPrice", errs[0].Field)

		l.UnitPrice = 100001
		errs = ValidateLine(l)
		require.Len(t, errs, 1)
		assert.Equal(t, "unitPrice", errs[0].Field)
	})

	t.Run("Wrong supplied total caught", func(t *testing.T) {
		l := validLine()
		l.TotalPrice = 99.99 // 2 × 10.00 should be 20.00

		errs := ValidateLine(l)
		require.Len(t, errs, 1)
		assert.Equal(t, "totalPrice", errs[0].Field)
		assert.Contains(t, errs[0].Message, "Total price mismatch")
	})

	t.Run("Total within tolerance accepted", func(t *testing.T) {
		l := validLine()
		l.TotalPrice = 20.005
		assert.Empty(t, ValidateLine(l))
	})

	t.Run("Category name too long", func(t *testing.T) {
		l := validLine()
		for len(l.CategoryName) <= 50 {
			l.CategoryName += "x"
		}

		errs := ValidateLine(l)
		require.Len(t, errs, 1)
		assert.Equal(t, "categoryName", errs[0].Field)
	})
}
