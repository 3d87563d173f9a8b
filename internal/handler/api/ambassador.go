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

type AmbassadorHandler struct {
	ambassadorCommands commands.AmbassadorCommands
	ambassadorQueries  queries.AmbassadorQueries
}

func NewAmbassadorHandler(ambassadorCommands commands.AmbassadorCommands, ambassadorQueries queries.AmbassadorQueries) *AmbassadorHandler {
	return &AmbassadorHandler{
		ambassadorCommands: ambassadorCommands,
		ambassadorQueries:  ambassadorQueries,
	}
}

// @Summary Submit ambassador application
// @Description Apply to the ambassador program; the record starts in pending status
// @Tags ambassadors
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAmbassadorRequest true "Application"
// @Success 201 {object} resdto.AmbassadorResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /ambassadors [post]
func (h *AmbassadorHandler) Create(c *gin.Context) {
	var req reqdto.CreateAmbassadorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ambassadorCommands.CreateAmbassador(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAmbassadorView(view))
}

// @Summary List ambassadors
// @Description List every ambassador record with its ledger totals
// @Tags ambassadors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AmbassadorListResponse
// @Failure 401 {object} map[string]string
// @Router /ambassadors [get]
func (h *AmbassadorHandler) List(c *gin.Context) {
	items, err := h.ambassadorQueries.ListAmbassadors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AmbassadorListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAmbassadorListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get ambassador
// @Description Get one ambassador with its recent orders
// @Tags ambassadors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ambassador ID"
// @Success 200 {object} resdto.AmbassadorResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ambassadors/{id} [get]
func (h *AmbassadorHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.ambassadorQueries.GetAmbassador(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAmbassadorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ambassador not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmbassadorView(view))
}

// @Summary Update ambassador profile
// @Description Update coupon code, discount percent and commission rate
// @Tags ambassadors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ambassador ID"
// @Param request body reqdto.UpdateAmbassadorRequest true "Profile patch"
// @Success 200 {object} resdto.AmbassadorResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ambassadors/{id} [patch]
func (h *AmbassadorHandler) UpdateProfile(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAmbassadorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ambassadorCommands.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmbassadorView(view))
}

// @Summary Update ambassador status
// @Description Transition the ambassador lifecycle; approval derives the codes once
// @Tags ambassadors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ambassador ID"
// @Param request body reqdto.UpdateAmbassadorStatusRequest true "Status"
// @Success 200 {object} resdto.AmbassadorResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ambassadors/{id}/status [patch]
func (h *AmbassadorHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAmbassadorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.ambassadorCommands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAmbassadorView(view))
}

func (h *AmbassadorHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ambassador ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *AmbassadorHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ambassador data",
		})
	case errors.Is(err, commands.ErrAmbassadorNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Ambassador not found",
		})
	case errors.Is(err, commands.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Email already registered",
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
