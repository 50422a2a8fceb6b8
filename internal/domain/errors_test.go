package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		kind error
		msg  string
	}{
		{&domain.NotFoundError{}, domain.ErrNotFound, "Product not found: ID is missing."},
		{&domain.NotFoundError{ID: "12"}, domain.ErrNotFound, "Product not found: 12"},
		{&domain.OutOfStockError{Name: "Tablet"}, domain.ErrOutOfStock, "Product out of stock: Tablet"},
		{&domain.InsufficientStockError{Name: "Tablet", Requested: 9, Available: 2}, domain.ErrInsufficientStock,
			"Insufficient stock for Tablet. Requested: 9, Available: 2"},
		{&domain.DuplicateNameError{Name: "laptop"}, domain.ErrDuplicateName, "Item already exists: laptop"},
		{&domain.ValidationError{Field: "quantity", Message: "Invalid quantity or price."}, domain.ErrValidation,
			"Invalid quantity or price."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.msg, tt.err.Error())
		assert.True(t, errors.Is(tt.err, tt.kind), tt.msg)
	}
}

func TestErrorKinds_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("procuring: %w", &domain.OutOfStockError{Name: "Tablet"})
	assert.True(t, errors.Is(err, domain.ErrOutOfStock))
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	var oos *domain.OutOfStockError
	assert.True(t, errors.As(err, &oos))
	assert.Equal(t, "Tablet", oos.Name)
}
