package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sajidali832/envo4/internal/service"
)

const (
	// MaxProofSize предельный размер скриншота оплаты.
	MaxProofSize = 10 << 20

	proofFormField = "screenshot"
)

type SubmissionHandler struct {
	svs     SubmissionServicer
	catalog PlanCatalog
}

func NewSubmissionHandler(svs SubmissionServicer, catalog PlanCatalog) *SubmissionHandler {
	return &SubmissionHandler{
		svs:     svs,
		catalog: catalog,
	}
}

type SubmitParams struct {
	AccountName   string `binding:"required,min=2,max=100" form:"accountName"`
	AccountNumber string `binding:"required,pk_mobile"     form:"accountNumber"`
	Platform      string `binding:"required,max_bytes=32"  form:"platform"`
	PlanID        string `binding:"required,max_bytes=16"  form:"planId"`
	ReferrerID    string `binding:"omitempty,uuid"         form:"ref"`
}

// Create POST RouteGroup + SubmissionsRoute. Принимает multipart форму с полями SubmitParams и файлом
// screenshot.
func (h *SubmissionHandler) Create(c *gin.Context) {
	var params SubmitParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	fileHeader, fileErr := c.FormFile(proofFormField)
	if fileErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("screenshot file is required")).
			SetType(gin.ErrorTypePublic)
		return
	}
	if fileHeader.Size > MaxProofSize {
		_ = c.AbortWithError(http.StatusRequestEntityTooLarge, errors.New("screenshot file is too large")).
			SetType(gin.ErrorTypePublic)
		return
	}
	proof, readErr := readProof(fileHeader)
	if readErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, readErr).SetType(gin.ErrorTypePrivate)
		return
	}

	var referrer uuid.NullUUID
	if params.ReferrerID != "" {
		// формат уже проверен тегом uuid.
		referrer = uuid.NullUUID{UUID: uuid.MustParse(params.ReferrerID), Valid: true}
	}

	ctx, cancel := context.WithTimeout(c, UploadServiceTimeout)
	defer cancel()

	sub, err := h.svs.Submit(ctx, service.SubmitArgs{
		AccountName:   params.AccountName,
		AccountNumber: params.AccountNumber,
		Platform:      params.Platform,
		PlanID:        params.PlanID,
		ReferrerID:    referrer,
		Proof:         *proof,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSubmissionResponse(sub))
}

func readProof(fh *multipart.FileHeader) (*service.ProofFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open proof file: %s", err.Error())
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxProofSize+1))
	if err != nil {
		return nil, fmt.Errorf("read proof file: %s", err.Error())
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &service.ProofFile{
		FileName:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

type StatusParams struct {
	Phone string `binding:"required,pk_mobile" form:"phone"`
}

type StatusResponse struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Status GET RouteGroup + StatusRoute. Статус последней заявки для номера телефона.
func (h *SubmissionHandler) Status(c *gin.Context) {
	var params StatusParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sub, err := h.svs.Status(ctx, params.Phone)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{
		ID:        sub.ID,
		Status:    string(sub.Status),
		CreatedAt: sub.CreatedAt,
	})
}

// Plans GET RouteGroup + PlansRoute. Каталог тарифов.
func (h *SubmissionHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, newPlansResponse(h.catalog.All()))
}
