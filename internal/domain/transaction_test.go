package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	before := time.Now()
	tx := NewTransaction(KindDeposit, decimal.NewFromInt(100), "Salary")
	after := time.Now()

	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, KindDeposit, tx.Kind)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Salary", tx.Description)
	assert.False(t, tx.Timestamp.Before(before))
	assert.False(t, tx.Timestamp.After(after))
}

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		kind   TransactionKind
		amount int64
		want   int64
	}{
		{"deposit is positive", KindDeposit, 100, 100},
		{"withdrawal is negative", KindWithdrawal, 40, -40},
		{"transfer out is negative", KindTransferOut, 25, -25},
		{"transfer in is positive", KindTransferIn, 25, 25},
		{"interest is positive", KindInterest, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := NewTransaction(tt.kind, decimal.NewFromInt(tt.amount), "")
			assert.True(t, tx.SignedAmount().Equal(decimal.NewFromInt(tt.want)))
		})
	}
}
