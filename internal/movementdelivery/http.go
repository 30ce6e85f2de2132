// Package movementdelivery manages delivery layer of movements.
package movementdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gustavoschneider/simple-code-challenge/internal/domain"
	"github.com/gustavoschneider/simple-code-challenge/pkg/errorspkg"
	"github.com/gustavoschneider/simple-code-challenge/pkg/web"
)

// Service provides service layer interface needed by movement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package movementdelivery
type Service interface {
	DepositToSavings(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Movement, error)
	WithdrawFromSavings(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.Movement, error)
	ListForMonth(ctx context.Context, accountID int64, month int) (domain.MonthStatement, error)
}

// Handler facilitates movement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns movement handler.
func NewHandler(ms Service) Handler {
	return Handler{service: ms}
}

type uriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type transferRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type listRequest struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}

// DepositToSavings handles http request to move money from balance to savings.
func (h *Handler) DepositToSavings(gctx *gin.Context) {
	h.transfer(gctx, h.service.DepositToSavings)
}

// WithdrawFromSavings handles http request to move money from savings to balance.
func (h *Handler) WithdrawFromSavings(gctx *gin.Context) {
	h.transfer(gctx, h.service.WithdrawFromSavings)
}

func (h *Handler) transfer(gctx *gin.Context, op func(context.Context, int64, decimal.Decimal) (domain.Movement, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.DetailResponse{Detail: bindingErrorMsg(err)})

		return
	}

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.DetailResponse{Detail: bindingErrorMsg(err)})

		return
	}

	movement, err := op(ctx, uri.ID, req.Amount)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInsufficientFunds, domain.ErrInsufficientSavings:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, movement)
}

// ListForMonth handles http request to get the account's movements for a month.
func (h *Handler) ListForMonth(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.DetailResponse{Detail: bindingErrorMsg(err)})

		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.DetailResponse{Detail: bindingErrorMsg(err)})

		return
	}

	statement, err := h.service.ListForMonth(ctx, uri.ID, req.Month)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statement)
}
