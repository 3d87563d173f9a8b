package api

import (
	"errors"
	"net/http"

	reqdto "ambassador-ledger/internal/handler/dto/request"
	resdto "ambassador-ledger/internal/handler/dto/response"
	"ambassador-ledger/internal/usecase/commands"
	"ambassador-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	ledgerCommands    commands.LedgerCommands
	ambassadorQueries queries.AmbassadorQueries
}

func NewLedgerHandler(ledgerCommands commands.LedgerCommands, ambassadorQueries queries.AmbassadorQueries) *LedgerHandler {
	return &LedgerHandler{
		ledgerCommands:    ledgerCommands,
		ambassadorQueries: ambassadorQueries,
	}
}

// @Summary Redeem a code
// @Description Resolve a coupon or referral code and accrue commission for the order
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemCodeRequest true "Redemption"
// @Success 201 {object} resdto.RedemptionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /redemptions [post]
func (h *LedgerHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.ledgerCommands.RedeemCode(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No approved ambassador for code",
			})
		case errors.Is(err, commands.ErrAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order already redeemed",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid redemption data",
			})
		case errors.Is(err, commands.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Storage temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRedeemResult(result))
}

// @Summary List active codes
// @Description List coupon and referral codes of every approved ambassador
// @Tags ledger
// @Produce json
// @Success 200 {array} resdto.ActiveCodeResponse
// @Router /codes [get]
func (h *LedgerHandler) ListActiveCodes(c *gin.Context) {
	views, err := h.ambassadorQueries.ListActiveCodes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ActiveCodeResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromActiveCodeView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Set order payment state
// @Description Flip one order's paid flag; a same-state request is a no-op
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ambassador ID"
// @Param orderId path string true "Order ID"
// @Param request body reqdto.SetOrderPaidRequest true "Payment state"
// @Success 200 {object} resdto.AmbassadorResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ambassadors/{id}/orders/{orderId} [patch]
func (h *LedgerHandler) SetOrderPaid(c *gin.Context) {
	id, ok := h.parseAmbassadorID(c)
	if !ok {
		return
	}
	orderID := c.Param("orderId")

	var req reqdto.SetOrderPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ledgerCommands.SetOrderPaid(c.Request.Context(), id, orderID, *req.IsPaid)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmbassadorView(view))
}

// @Summary Set all orders payment status
// @Description Bulk transition of every order of the ambassador
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ambassador ID"
// @Param request body reqdto.BulkPaymentStatusRequest true "Bulk status"
// @Success 200 {object} resdto.AmbassadorResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ambassadors/{id}/orders [patch]
func (h *LedgerHandler) SetAllOrdersStatus(c *gin.Context) {
	id, ok := h.parseAmbassadorID(c)
	if !ok {
		return
	}

	var req reqdto.BulkPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ledgerCommands.SetAllOrdersStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmbassadorView(view))
}

func (h *LedgerHandler) parseAmbassadorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ambassador ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *LedgerHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment status",
		})
	case errors.Is(err, commands.ErrAmbassadorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ambassador not found",
		})
	case errors.Is(err, commands.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, commands.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Storage temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
