package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sajidali832/envo4/internal/domain"
)

// AccountHandler кабинет инвестора: сводка, рефералы, выводы.
type AccountHandler struct {
	userSvs       UserServicer
	referralSvs   ReferralServicer
	withdrawalSvs WithdrawalServicer
}

func NewAccountHandler(userSvs UserServicer, referralSvs ReferralServicer, withdrawalSvs WithdrawalServicer) *AccountHandler {
	return &AccountHandler{
		userSvs:       userSvs,
		referralSvs:   referralSvs,
		withdrawalSvs: withdrawalSvs,
	}
}

type DashboardResponse struct {
	Profile       ProfileResponse   `json:"profile"`
	PlanName      string            `json:"planName"`
	TotalEarned   float64           `json:"totalEarned"`
	ReferralBonus float64           `json:"referralBonus"`
	Earnings      []EarningResponse `json:"earnings"`
}

func (a *AccountHandler) Dashboard(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	d, err := a.userSvs.Dashboard(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, DashboardResponse{
		Profile:       newProfileResponse(d.Profile),
		PlanName:      d.PlanName,
		TotalEarned:   d.TotalEarned.InexactFloat64(),
		ReferralBonus: d.ReferralBonus.InexactFloat64(),
		Earnings:      newEarningsResponse(d.Earnings),
	})
}

func (a *AccountHandler) Referrals(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := a.referralSvs.Summary(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReferralsResponse(summary))
}

type WithdrawalMethodParams struct {
	Method        string `binding:"required,max_bytes=32"        json:"method"`
	AccountName   string `binding:"required,min=2,max=100"       json:"accountName"`
	AccountNumber string `binding:"required,min=11,max_bytes=34" json:"accountNumber"`
}

func (a *AccountHandler) SaveWithdrawalMethod(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawalMethodParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := a.withdrawalSvs.SaveMethod(reqCtx, currentUserID, domain.WithdrawalMethod{
		Method:        params.Method,
		AccountName:   params.AccountName,
		AccountNumber: params.AccountNumber,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type WithdrawParams struct {
	Amount decimal.Decimal `json:"amount"`
}

func (a *AccountHandler) RequestWithdrawal(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	w, err := a.withdrawalSvs.Request(reqCtx, currentUserID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newWithdrawalResponse(w))
}

func (a *AccountHandler) Withdrawals(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	ws, err := a.withdrawalSvs.History(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if len(ws) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalsResponse(ws))
}
