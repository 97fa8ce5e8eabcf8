package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sewlanka/pos-api/internal/application/service"
	"github.com/sewlanka/pos-api/internal/presentation/http/dto/request"
	"github.com/sewlanka/pos-api/internal/presentation/http/dto/response"
	"github.com/sewlanka/pos-api/pkg/pagination"
)

// CreditHandler handles credit payment HTTP requests
type CreditHandler struct {
	creditService *service.CreditService
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(creditService *service.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// ListOutstanding handles listing the credit book
func (h *CreditHandler) ListOutstanding(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.creditService.ListOutstandingSales(c.Request.Context(), &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Outstanding sales retrieved successfully", result)
}

// ListPayments handles listing the payment history of a sale
func (h *CreditHandler) ListPayments(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	payments, err := h.creditService.ListPayments(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", payments)
}

// RecordPayment handles recording a payment against a sale's balance
func (h *CreditHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.RecordPaymentInput{
		SaleID:        saleID,
		UserID:        *userID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		ChequeNumber:  req.ChequeNumber,
		Note:          req.Note,
	}

	if req.ChequeDate != nil {
		if chequeDate, err := time.Parse("2006-01-02", *req.ChequeDate); err == nil {
			input.ChequeDate = &chequeDate
		}
	}

	payment, err := h.creditService.RecordPayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// DeletePayment handles removing a recorded payment
func (h *CreditHandler) DeletePayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.creditService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment deleted successfully", nil)
}
