package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpenseFractionalAmount(t *testing.T) {
	svc := NewExpenseService(newMockExpenseRepo())

	// 19.99 must land on exactly 1999 cents, not truncate to 1998
	expense, err := svc.CreateExpense(context.Background(), &CreateExpenseInput{
		UserID:      uuid.New(),
		Description: "Courier charges",
		Amount:      19.99,
		Category:    "Transport",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1999), expense.Amount)
}

func TestCreateExpenseRejectsNonPositive(t *testing.T) {
	svc := NewExpenseService(newMockExpenseRepo())

	for _, amount := range []float64{0, -10} {
		_, err := svc.CreateExpense(context.Background(), &CreateExpenseInput{
			UserID:      uuid.New(),
			Description: "Bad entry",
			Amount:      amount,
			Category:    "Misc",
		})
		require.Error(t, err)
	}
}

func TestUpdateExpenseFractionalAmount(t *testing.T) {
	svc := NewExpenseService(newMockExpenseRepo())

	expense, err := svc.CreateExpense(context.Background(), &CreateExpenseInput{
		UserID:      uuid.New(),
		Description: "Needle stock",
		Amount:      10,
		Category:    "Supplies",
	})
	require.NoError(t, err)

	amount := 4.35
	updated, err := svc.UpdateExpense(context.Background(), expense.ID, &UpdateExpenseInput{
		Amount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(435), updated.Amount)
}

func TestExpenseTotalForRange(t *testing.T) {
	repo := newMockExpenseRepo()
	svc := NewExpenseService(repo)

	today := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	for _, input := range []struct {
		amount float64
		date   time.Time
	}{
		{120.50, today},
		{30.25, today},
		{999, yesterday},
	} {
		date := input.date
		_, err := svc.CreateExpense(context.Background(), &CreateExpenseInput{
			UserID:      uuid.New(),
			Description: "Entry",
			Amount:      input.amount,
			Category:    "Misc",
			ExpenseDate: &date,
		})
		require.NoError(t, err)
	}

	start := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	total, err := svc.TotalForRange(context.Background(), start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.InDelta(t, 150.75, total, 0.001)
}
