package order

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minNameLen        = 2
	maxNameLen        = 100
	minAddressLen     = 10
	maxAddressLen     = 200
	maxProductNameLen = 100
	maxCategoryLen    = 50
	minQuantity       = 1
	maxQuantity       = 1000
	minUnitPrice      = 0.01
	maxUnitPrice      = 100000.0
)

var (
	// Letters (English/Hebrew) and spaces only.
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\x{0590}-\x{05FF}\s]+$`)
	emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

// ValidateCustomer runs every customer field rule and returns the full list
// of violations; the customer is valid iff the list is empty.
func ValidateCustomer(c Customer) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	case utf8.RuneCountInString(name) < minNameLen || utf8.RuneCountInString(name) > maxNameLen:
		errs = append(errs, FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	case !nameRegex.MatchString(name):
		errs = append(errs, FieldError{Field: "name", Message: "Name can only contain letters (English/Hebrew) and spaces"})
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please provide a valid email address"})
	}

	address := strings.TrimSpace(c.Address)
	switch {
	case address == "":
		errs = append(errs, FieldError{Field: "address", Message: "Address is required"})
	case utf8.RuneCountInString(address) < minAddressLen || utf8.RuneCountInString(address) > maxAddressLen:
		errs = append(errs, FieldError{Field: "address", Message: "Address must be between 10 and 200 characters"})
	}

	return errs
}

// ValidateLine runs every rule for one order line and returns the full list
// of violations. A nonzero client-supplied total is cross-checked against
// the recomputation rather than trusted.
func ValidateLine(l OrderLine) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(l.ProductID) == "" {
		errs = append(errs, FieldError{Field: "productId", Message: "Product ID is required"})
	}

	productName := strings.TrimSpace(l.ProductName)
	if utf8.RuneCountInString(productName) < minNameLen || utf8.RuneCountInString(productName) > maxProductNameLen {
		errs = append(errs, FieldError{Field: "productName", Message: "Product name must be between 2 and 100 characters"})
	}

	if strings.TrimSpace(l.CategoryID) == "" {
		errs = append(errs, FieldError{Field: "categoryId", Message: "Category ID is required"})
	}

	categoryName := strings.TrimSpace(l.CategoryName)
	if utf8.RuneCountInString(categoryName) < minNameLen || utf8.RuneCountInString(categoryName) > maxCategoryLen {
		errs = append(errs, FieldError{Field: "categoryName", Message: "Category name must be between 2 and 50 characters"})
	}

	if l.Quantity < minQuantity || l.Quantity > maxQuantity {
		errs = append(errs, FieldError{Field: "quantity", Message: "Quantity must be a positive integer between 1 and 1000"})
	}

	if l.UnitPrice < minUnitPrice || l.UnitPrice > maxUnitPrice {
		errs = append(errs, FieldError{Field: "unitPrice", Message: "Unit price must be a positive number between 0.01 and 100000"})
	}

	if l.TotalPrice != 0 && l.Quantity >= minQuantity && l.UnitPrice >= minUnitPrice {
		expected := LineTotal(l.Quantity, l.UnitPrice)
		if math.Abs(l.TotalPrice-expected) > 0.01 {
			errs = append(errs, FieldError{
				Field:   "totalPrice",
				Message: fmt.Sprintf("Total price mismatch. Expected: %v, Got: %v", expected, l.TotalPrice),
			})
		}
	}

	return errs
}
