package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sajidali832/envo4/internal/domain"
	"github.com/sajidali832/envo4/internal/transport/api/middlewares"
)

// getUserIDFromContext берет из контекста gin ID текущего пользователя. ID устанавливается в
// middlewares.AuthRequired. Если значения нет, вернется uuid.Nil.
func getUserIDFromContext(c *gin.Context) uuid.UUID {
	v, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return uuid.Nil
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// abortWithBindError ошибки валидации тегов отдаются с 422, остальные ошибки разбора с 400.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}

// abortWithServiceError переводит ошибку сервисного слоя в HTTP статус. Доменные ошибки отдаются клиенту
// текстом, все прочие скрываются за 500.
func abortWithServiceError(c *gin.Context, err error) {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, valErr).SetType(gin.ErrorTypePublic)
		return
	}

	status := http.StatusInternalServerError
	var public error
	switch {
	case errors.Is(err, domain.ErrNoApprovedSubmission):
		status, public = http.StatusNotFound, domain.ErrNoApprovedSubmission
	case errors.Is(err, domain.ErrRecordNotFound):
		status, public = http.StatusNotFound, domain.ErrRecordNotFound
	case errors.Is(err, domain.ErrDuplicateUsername):
		status, public = http.StatusConflict, domain.ErrDuplicateUsername
	case errors.Is(err, domain.ErrDuplicateEmail):
		status, public = http.StatusConflict, domain.ErrDuplicateEmail
	case errors.Is(err, domain.ErrSubmissionAlreadyUsed):
		status, public = http.StatusConflict, domain.ErrSubmissionAlreadyUsed
	case errors.Is(err, domain.ErrInvalidTransition):
		status, public = http.StatusConflict, domain.ErrInvalidTransition
	case errors.Is(err, domain.ErrAccrualInProgress):
		status, public = http.StatusConflict, domain.ErrAccrualInProgress
	case errors.Is(err, domain.ErrDuplicateKey):
		status, public = http.StatusConflict, errors.New("record already exists")
	case errors.Is(err, domain.ErrNotEnoughBalance):
		status, public = http.StatusPaymentRequired, domain.ErrNotEnoughBalance
	case errors.Is(err, domain.ErrReferralLock):
		status, public = http.StatusForbidden, domain.ErrReferralLock
	case errors.Is(err, domain.ErrPayoutMethodMissing):
		status, public = http.StatusPreconditionFailed, domain.ErrPayoutMethodMissing
	}

	if public == nil {
		_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
		return
	}
	// исходная ошибка нужна в логе.
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.AbortWithStatusJSON(status, gin.H{"error": public.Error()})
}

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).SetType(gin.ErrorTypePublic)
		return uuid.Nil, false
	}
	return id, true
}

func parseUintQuery(c *gin.Context, name string, def uint) uint {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return def
	}
	return uint(v)
}
