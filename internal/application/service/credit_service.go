package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/domain/entity"
	"github.com/sewlanka/pos-api/internal/domain/enum"
	"github.com/sewlanka/pos-api/internal/domain/repository"
	"github.com/sewlanka/pos-api/pkg/apperror"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// CreditService handles credit payment tracking against sales sold on credit
type CreditService struct {
	creditRepo repository.CreditPaymentRepository
	saleRepo   repository.SaleRepository
}

// NewCreditService creates a new credit service
func NewCreditService(
	creditRepo repository.CreditPaymentRepository,
	saleRepo repository.SaleRepository,
) *CreditService {
	return &CreditService{
		creditRepo: creditRepo,
		saleRepo:   saleRepo,
	}
}

// RecordPaymentInput represents a payment towards an outstanding balance
type RecordPaymentInput struct {
	SaleID        uuid.UUID
	UserID        uuid.UUID
	Amount        float64
	PaymentMethod string
	ChequeNumber  *string
	ChequeDate    *time.Time
	Note          *string
}

// RecordPayment applies a payment to a sale's outstanding balance. The amount
// must be positive and no larger than the balance.
func (s *CreditService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.CreditPayment, error) {
	sale, err := s.saleRepo.GetByID(ctx, input.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	amountCents := centsFromFloat(input.Amount)
	if amountCents <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}
	if amountCents > sale.Balance {
		return nil, apperror.NewBadRequestError("Payment exceeds the outstanding balance")
	}

	payment := &entity.CreditPayment{
		SaleID:        input.SaleID,
		UserID:        input.UserID,
		Amount:        amountCents,
		PaymentMethod: input.PaymentMethod,
		ChequeNumber:  input.ChequeNumber,
		ChequeDate:    input.ChequeDate,
		Note:          input.Note,
	}

	if err := s.creditRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	newPaid := sale.AmountPaid + amountCents
	newBalance := sale.TotalAmount - newPaid
	status := enum.DeriveCreditStatus(newBalance, sale.TotalAmount)

	if err := s.saleRepo.UpdatePayment(ctx, sale.ID, newPaid, newBalance, status); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListPayments returns the payment history of a sale, oldest first
func (s *CreditService) ListPayments(ctx context.Context, saleID uuid.UUID) ([]entity.CreditPayment, error) {
	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.creditRepo.ListBySale(ctx, saleID)
}

// DeletePayment removes a recorded payment and adds its amount back to the
// sale's outstanding balance.
func (s *CreditService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.creditRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}

	sale, err := s.saleRepo.GetByID(ctx, payment.SaleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}

	if err := s.creditRepo.Delete(ctx, id); err != nil {
		return err
	}

	newPaid := sale.AmountPaid - payment.Amount
	if newPaid < 0 {
		newPaid = 0
	}
	newBalance := sale.TotalAmount - newPaid
	status := enum.DeriveCreditStatus(newBalance, sale.TotalAmount)

	return s.saleRepo.UpdatePayment(ctx, sale.ID, newPaid, newBalance, status)
}

// ListOutstandingSales returns the credit book: sales with a positive balance,
// oldest first so long-overdue customers surface at the top.
func (s *CreditService) ListOutstandingSales(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.ListOutstanding(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
