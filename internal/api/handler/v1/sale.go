package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasirgo/pos-api/internal/api/handler/v1/request"
	"github.com/kasirgo/pos-api/internal/api/handler/v1/response"
	"github.com/kasirgo/pos-api/internal/domain"
	"github.com/kasirgo/pos-api/internal/service"
)

type SaleService interface {
	CreateSale(ctx context.Context, lines []domain.SaleLine, paymentMethod string, referenceNo *string) (domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.SaleSummary, error)
	GetSale(ctx context.Context, id uint) (domain.Sale, error)
}

type SaleHandler struct {
	svc SaleService
}

func NewSaleHandler(svc SaleService) *SaleHandler {
	return &SaleHandler{
		svc: svc,
	}
}

// HandleCreateSale godoc
// @Summary      Record a new sale
// @Description  Writes the sale header, its line items and the stock decrements atomically
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateSaleRequest true "request body"
// @Success      201      {object}   map[string]string
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sales [post]
// @Security BearerAuth
func (h *SaleHandler) HandleCreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	lines := make([]domain.SaleLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = domain.SaleLine{
			ProductID: item.ID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
	}

	var referenceNo *string
	if req.ReferenceNo != "" {
		referenceNo = &req.ReferenceNo
	}

	_, err := h.svc.CreateSale(ctx.Request.Context(), lines, req.PaymentMethod, referenceNo)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptySale), errors.Is(err, service.ErrInvalidLineItem):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrInsufficientStock), errors.Is(err, service.ErrProductNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateSale -> h.svc.CreateSale -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Sale recorded successfully"})
}

// HandleListSales godoc
// @Summary      List all sales
// @Description  Returns sale headers with the summed item quantity, newest first
// @Tags         sales
// @Produce      json
// @Success      200  {array}   domain.SaleSummary
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sales [get]
// @Security BearerAuth
func (h *SaleHandler) HandleListSales(ctx *gin.Context) {
	sales, err := h.svc.ListSales(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListSales -> h.svc.ListSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// HandleGetSale godoc
// @Summary      Get one sale with its items
// @Tags         sales
// @Produce      json
// @Param        id   path      int true "sale ID"
// @Success      200  {object}  domain.Sale
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sales/{id} [get]
// @Security BearerAuth
func (h *SaleHandler) HandleGetSale(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid sale id")))

		return
	}

	sale, err := h.svc.GetSale(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sale", "id", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetSale -> h.svc.GetSale -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sale)
}
