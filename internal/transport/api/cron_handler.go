package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	accrualSvs AccrualServicer
}

func NewCronHandler(accrualSvs AccrualServicer) *CronHandler {
	return &CronHandler{accrualSvs: accrualSvs}
}

// AddDailyEarnings POST RouteGroup + DailyEarningsRoute. Запуск ежедневного начисления внешним планировщиком.
func (h *CronHandler) AddDailyEarnings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, CronServiceTimeout)
	defer cancel()

	report, err := h.accrualSvs.RunDaily(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
