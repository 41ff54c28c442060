package analytics

import (
	"strconv"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *AnalyticsService
}

func NewAnalyticsHandler(analyticsService *AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func daysOf(c *gin.Context) int {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(DefaultDays)))
	return days
}

// Reporter 记者统计
// @Summary 记者个人统计
// @Tags Analytics
// @Produce json
// @Param days query int false "统计天数" default(30)
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=ReporterResponse}
// @Router /reporter/analytics [get]
func (h *AnalyticsHandler) Reporter(c *gin.Context) {
	result, err := h.analyticsService.Reporter(c.Request.Context(), c.GetUint(middleware.CtxUserID), daysOf(c), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load analytics")
		return
	}
	dto.SuccessResponse(c, result)
}

// Admin 全站统计
// @Summary 全站统计
// @Tags Admin
// @Produce json
// @Param days query int false "统计天数" default(30)
// @Param lang query string false "语言" Enums(bn, en)
// @Success 200 {object} response.Response{data=AdminResponse}
// @Router /admin/analytics [get]
func (h *AnalyticsHandler) Admin(c *gin.Context) {
	result, err := h.analyticsService.Admin(c.Request.Context(), daysOf(c), locale.FromRequest(c))
	if err != nil {
		dto.Error(c, err, "failed to load analytics")
		return
	}
	dto.SuccessResponse(c, result)
}
