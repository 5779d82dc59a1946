package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/service"
)

const (
	defaultAdminListLimit uint = 100
	maxAdminListLimit     uint = 500
)

type AdminHandler struct {
	submissionSvs SubmissionServicer
	withdrawalSvs WithdrawalServicer
	adminSvs      AdminServicer
	alertSvs      AlertServicer
}

type AdminHandlerArgs struct {
	SubmissionService SubmissionServicer
	WithdrawalService WithdrawalServicer
	AdminService      AdminServicer
	AlertService      AlertServicer
}

func NewAdminHandler(args AdminHandlerArgs) *AdminHandler {
	return &AdminHandler{
		submissionSvs: args.SubmissionService,
		withdrawalSvs: args.WithdrawalService,
		adminSvs:      args.AdminService,
		alertSvs:      args.AlertService,
	}
}

func listLimit(c *gin.Context) uint {
	return min(parseUintQuery(c, "limit", defaultAdminListLimit), maxAdminListLimit)
}

// PendingSubmissions GET RouteGroup + AdminSubmissionsRoute.
func (h *AdminHandler) PendingSubmissions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	subs, err := h.submissionSvs.ListPending(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	res := make([]SubmissionResponse, len(subs))
	for i := range subs {
		res[i] = newSubmissionResponse(&subs[i])
	}
	c.JSON(http.StatusOK, res)
}

type DecisionParams struct {
	Decision string `binding:"required,oneof=approved rejected" json:"decision"`
}

type SubmissionDecisionResponse struct {
	Submission SubmissionResponse `json:"submission"`
	Outcome    OutcomeResponse    `json:"outcome"`
}

// DecideSubmission POST RouteGroup + AdminSubmissionDecisionRoute. Ответ 200 даже если часть побочных
// эффектов не выполнена, подробности в поле outcome.
func (h *AdminHandler) DecideSubmission(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	var params DecisionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sub, outcome, err := h.submissionSvs.Decide(ctx, id, domain.SubmissionDecision(params.Decision))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SubmissionDecisionResponse{
		Submission: newSubmissionResponse(sub),
		Outcome:    newOutcomeResponse(outcome),
	})
}

type AdminWithdrawalsParams struct {
	Status string `binding:"omitempty,oneof=processing approved rejected" form:"status"`
}

// Withdrawals GET RouteGroup + AdminWithdrawalsRoute. Без параметра status отдаются заявки во всех статусах.
func (h *AdminHandler) Withdrawals(c *gin.Context) {
	var params AdminWithdrawalsParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.adminSvs.Withdrawals(ctx, domain.WithdrawalStatus(params.Status), listLimit(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	res := make([]WithdrawalResponse, len(items))
	for i := range items {
		res[i] = newWithdrawalResponse(&items[i].Withdrawal)
		res[i].Username = items[i].Username
	}
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) DecideWithdrawal(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	var params DecisionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	w, err := h.withdrawalSvs.Decide(ctx, id, domain.WithdrawalDecision(params.Decision))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalResponse(w))
}

// Users GET RouteGroup + AdminUsersRoute?q=. Поиск по username и email.
func (h *AdminHandler) Users(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profiles, err := h.adminSvs.Users(ctx, c.Query("q"), listLimit(c), parseUintQuery(c, "offset", 0))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	res := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		res[i] = newProfileResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, res)
}

type UserDetailsResponse struct {
	Profile     ProfileResponse      `json:"profile"`
	Earnings    []EarningResponse    `json:"earnings"`
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
}

func (h *AdminHandler) UserDetails(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	d, err := h.adminSvs.UserDetails(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserDetailsResponse{
		Profile:     newProfileResponse(d.Profile),
		Earnings:    newEarningsResponse(d.Earnings),
		Withdrawals: newWithdrawalsResponse(d.Withdrawals),
	})
}

// ExportUser GET RouteGroup + AdminUserExportRoute. Отдает CSV файл <username>_details.csv.
func (h *AdminHandler) ExportUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	details, err := h.adminSvs.UserDetails(ctx, userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	// буфер нужен, чтобы ошибка выгрузки не оборвала уже начатый ответ.
	var buf bytes.Buffer
	if exportErr := h.adminSvs.ExportUserDetails(ctx, userID, &buf); exportErr != nil {
		abortWithServiceError(c, exportErr)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_details.csv"`, details.Profile.Username))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.DeleteUser(ctx, userID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type DailyPointResponse struct {
	Day    string  `json:"day"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type StatsResponse struct {
	TotalUsers          int64                `json:"totalUsers"`
	InvestedUsers       int64                `json:"investedUsers"`
	TotalInvestment     float64              `json:"totalInvestment"`
	ApprovedWithdrawals float64              `json:"approvedWithdrawals"`
	Signups             []DailyPointResponse `json:"signups"`
	Withdrawals         []DailyPointResponse `json:"withdrawals"`
}

func (h *AdminHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.adminSvs.Stats(ctx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	series := func(points []service.DailyPoint) []DailyPointResponse {
		res := make([]DailyPointResponse, len(points))
		for i, p := range points {
			res[i] = DailyPointResponse{
				Day:    p.Day.Format(time.DateOnly),
				Count:  p.Count,
				Amount: p.Amount.InexactFloat64(),
			}
		}
		return res
	}
	c.JSON(http.StatusOK, StatsResponse{
		TotalUsers:          stats.TotalUsers,
		InvestedUsers:       stats.InvestedUsers,
		TotalInvestment:     stats.TotalInvestment.InexactFloat64(),
		ApprovedWithdrawals: stats.ApprovedWithdrawals.InexactFloat64(),
		Signups:             series(stats.Signups),
		Withdrawals:         series(stats.Withdrawals),
	})
}

// Alerts GET RouteGroup + AdminAlertsRoute. По умолчанию только нерешенные, ?all=true отдает все.
func (h *AdminHandler) Alerts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	alerts, err := h.alertSvs.List(ctx, c.Query("all") != "true")
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	res := make([]AlertResponse, len(alerts))
	for i := range alerts {
		res[i] = newAlertResponse(&alerts[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *AdminHandler) ResolveAlert(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	alert, err := h.alertSvs.Resolve(ctx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAlertResponse(alert))
}
