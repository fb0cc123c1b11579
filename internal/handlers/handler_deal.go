package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	portssvc "github.com/SscSPs/fx_deal_system/internal/core/ports/services"
	"github.com/SscSPs/fx_deal_system/internal/dto"
	"github.com/SscSPs/fx_deal_system/internal/middleware"
	"github.com/SscSPs/fx_deal_system/internal/platform/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// HealthMessage is the liveness marker returned by the deals health endpoint.
const HealthMessage = "FX Deal System is running!"

var configureBindingOnce sync.Once

// configureBinding makes gin's validator report JSON field names and know the custom tags.
func configureBinding() {
	configureBindingOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("gin binding validator is not a go-playground validator")
			return
		}
		if err := validation.Configure(v); err != nil {
			slog.Error("Failed to configure binding validator", slog.String("error", err.Error()))
		}
	})
}

// dealHandler handles HTTP requests related to deals.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

// newDealHandler creates a new dealHandler.
func newDealHandler(ds portssvc.DealSvcFacade) *dealHandler {
	return &dealHandler{
		dealService: ds,
	}
}

// RegisterDealRoutes registers routes related to deals.
func RegisterDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	configureBinding()
	h := newDealHandler(dealService)

	deals := rg.Group("/deals")
	{
		deals.POST("", h.importDeal)
		deals.POST("/bulk", h.importDeals)
		deals.GET("", h.listDeals)
		deals.GET("/health", h.health)
		deals.GET("/:dealUniqueId", h.getDealByUniqueID)
	}
}

// importDeal godoc
// @Summary Import a deal
// @Description Validates, deduplicates and stores a single FX deal
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deal body dto.DealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid deal"
// @Failure 400 {object} dto.ValidationErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Duplicate deal"
// @Failure 500 {object} dto.ErrorResponse "Unexpected error"
// @Router /deals [post]
func (h *dealHandler) importDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportDeal", slog.String("error", err.Error()))
		writeBindError(c, err)
		return
	}

	logger = logger.With(slog.String("deal_unique_id", req.DealUniqueID))
	logger.Info("Received request to import deal")

	resp, err := h.dealService.ImportDeal(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("Deal imported successfully", slog.Int64("deal_id", *resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// importDeals godoc
// @Summary Import deals in bulk
// @Description Imports every deal independently; each item is reported as SUCCESS or FAILED
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deals body []dto.DealRequest true "Deals"
// @Success 201 {array} dto.DealResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Malformed body"
// @Router /deals/bulk [post]
func (h *dealHandler) importDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	// Items are decoded one by one without shape validation so that each gets its own result entry.
	body, err := c.GetRawData()
	if err != nil {
		writeBindError(c, err)
		return
	}
	batch, err := dto.DecodeDealBatch(body)
	if err != nil {
		logger.Warn("Failed to decode JSON for ImportDeals", slog.String("error", err.Error()))
		writeBindError(c, err)
		return
	}

	reqs := batch.Requests()
	logger.Info("Received bulk request",
		slog.Int("count", len(batch.Items)),
		slog.Int("malformed", len(batch.Items)-len(reqs)))
	responses := batch.Merge(h.dealService.ImportDeals(c.Request.Context(), reqs))
	c.JSON(http.StatusCreated, responses)
}

// listDeals godoc
// @Summary List all deals
// @Description Retrieves every stored deal
// @Tags deals
// @Produce  json
// @Success 200 {array} dto.DealResponse
// @Failure 500 {object} dto.ErrorResponse "Unexpected error"
// @Router /deals [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Received request to list deals")

	deals, err := h.dealService.ListDeals(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	logger.Info("Deals listed successfully", slog.Int("count", len(deals)))
	c.JSON(http.StatusOK, deals)
}

// getDealByUniqueID godoc
// @Summary Get a deal by its unique ID
// @Description Retrieves a stored deal by its business key
// @Tags deals
// @Produce  json
// @Param   dealUniqueId path string true "Deal unique ID"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} dto.ErrorResponse "Deal not found"
// @Failure 500 {object} dto.ErrorResponse "Unexpected error"
// @Router /deals/{dealUniqueId} [get]
func (h *dealHandler) getDealByUniqueID(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	dealUniqueID := c.Param("dealUniqueId")

	logger = logger.With(slog.String("deal_unique_id", dealUniqueID))
	logger.Info("Received request to get deal")

	resp, err := h.dealService.GetDealByUniqueID(c.Request.Context(), dealUniqueID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// health godoc
// @Summary Deals liveness check
// @Tags deals
// @Produce  plain
// @Success 200 {string} string "FX Deal System is running!"
// @Router /deals/health [get]
func (h *dealHandler) health(c *gin.Context) {
	c.String(http.StatusOK, HealthMessage)
}
