package refundrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("should match the pgx unique violation code", func(t *testing.T) {
		err := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "idx_refund_requests_operation_token",
		}

		assert.True(t, isUniqueViolation(err))
	})

	t.Run("should match a wrapped unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert refund request: %w", &pgconn.PgError{Code: "23505"})

		assert.True(t, isUniqueViolation(err))
	})

	t.Run("should not match other postgres errors", func(t *testing.T) {
		// 23503 is a foreign key violation.
		assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	})

	t.Run("should not match non-driver errors", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection reset")))
		assert.False(t, isUniqueViolation(nil))
	})
}
