package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"watchthis/sharing/internal/auth"
	"watchthis/sharing/internal/models"
	"watchthis/sharing/internal/service"
)

// region --- DTOs ---

// CreateShareInput is the body of POST /shares. The sender is always the
// authenticated caller; a fromUserId in the body is ignored.
type CreateShareInput struct {
	MediaID  string `json:"mediaId" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	ToUserID string `json:"toUserId" example:"550e8400-e29b-41d4-a716-446655440002"`
	Message  string `json:"message,omitempty" example:"Check out this awesome video!"`
}

// UpdateShareInput is the body of PATCH /shares/{id}.
type UpdateShareInput struct {
	Status *string `json:"status" example:"watched" enums:"watched,archived"`
}

// ListSharesQuery is the query string of the list endpoints.
type ListSharesQuery struct {
	Status string `form:"status" binding:"omitempty,sharefilter"`
}

// ShareListResponse documents the list envelope for swag.
type ShareListResponse = PaginatedResponse[models.Share]

// endregion

// ShareHandler serves the /shares routes.
type ShareHandler struct {
	service *service.ShareService
	logger  *zap.Logger
}

// NewShareHandler returns a handler over svc.
func NewShareHandler(svc *service.ShareService, logger *zap.Logger) *ShareHandler {
	logger = logger.With(zap.String("component", "share_handler"))
	if err := RegisterValidators(); err != nil {
		logger.Warn("Custom validators unavailable", zap.Error(err))
	}
	return &ShareHandler{service: svc, logger: logger}
}

// bindBody decodes a JSON body. An empty body is treated as an empty object.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, service.KindValidation.Code(), "Invalid input data")
		return false
	}
	return true
}

func caller(c *gin.Context) *auth.Identity {
	id, _ := auth.FromContext(c)
	return id
}

// CreateShare godoc
// @Summary      Share a media item
// @Description  Creates a pending share from the authenticated user to another user.
// @Tags         shares
// @Security     SessionCookie
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        input body CreateShareInput true "Share Info"
// @Success      201  {object}  ShareResponse
// @Failure      400  {object}  ErrorResponse "MISSING_FIELDS, INVALID_SHARE or VALIDATION_ERROR"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /shares [post]
func (h *ShareHandler) CreateShare(c *gin.Context) {
	var input CreateShareInput
	if !bindBody(c, &input) {
		return
	}

	share, err := h.service.Create(c.Request.Context(), caller(c), service.CreateInput{
		MediaID:  input.MediaID,
		ToUserID: input.ToUserID,
		Message:  input.Message,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, ShareResponse{Success: true, Data: *share})
}

func (h *ShareHandler) list(c *gin.Context, sent bool) {
	var query ListSharesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		if failedTag(err, "sharefilter") {
			abortWithError(c, http.StatusBadRequest, service.KindInvalidStatus.Code(), "Status filter must be one of: all, pending, watched, archived")
			return
		}
		abortWithError(c, http.StatusBadRequest, service.KindValidation.Code(), "Invalid input data")
		return
	}

	page, limit := pageParams(c)
	input := service.ListInput{Status: query.Status, Page: page, Limit: limit}

	listFn := h.service.ListReceived
	if sent {
		listFn = h.service.ListSent
	}
	result, err := listFn(c.Request.Context(), caller(c), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(result))
}

// ListSentShares godoc
// @Summary      List sent shares
// @Description  Lists shares sent by the authenticated user, newest first.
// @Tags         shares
// @Security     SessionCookie
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "Filter by status" Enums(all, pending, watched, archived)
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(20)
// @Success      200  {object}  ShareListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /shares/sent [get]
func (h *ShareHandler) ListSentShares(c *gin.Context) {
	h.list(c, true)
}

// ListReceivedShares godoc
// @Summary      List received shares
// @Description  Lists shares received by the authenticated user, newest first.
// @Tags         shares
// @Security     SessionCookie
// @Security     BearerAuth
// @Produce      json
// @Param        status query string false "Filter by status" Enums(all, pending, watched, archived)
// @Param        page   query int    false "Page number" default(1)
// @Param        limit  query int    false "Page size" default(20)
// @Success      200  {object}  ShareListResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /shares/received [get]
func (h *ShareHandler) ListReceivedShares(c *gin.Context) {
	h.list(c, false)
}

// GetShareStats godoc
// @Summary      Share statistics
// @Description  Counts the authenticated user's sent and received shares by status.
// @Tags         shares
// @Security     SessionCookie
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /shares/stats [get]
func (h *ShareHandler) GetShareStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), caller(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Success: true, Data: *stats})
}

// GetShareByID godoc
// @Summary      Get a share
// @Description  Returns a share the authenticated user sent or received.
// @Tags         shares
// @Security     SessionCookie
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Share ID"
// @Success      200  {object}  ShareResponse
// @Failure      400  {object}  ErrorResponse "INVALID_ID"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "SHARE_NOT_FOUND"
// @Router       /shares/{id} [get]
func (h *ShareHandler) GetShareByID(c *gin.Context) {
	share, err := h.service.GetByID(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ShareResponse{Success: true, Data: *share})
}

// UpdateShare godoc
// @Summary      Update share status
// @Description  Marks a share watched (recipient only) or archived (either party).
// @Tags         shares
// @Security     SessionCookie
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "Share ID"
// @Param        input body  UpdateShareInput  true  "New status"
// @Success      200  {object}  ShareResponse
// @Failure      400  {object}  ErrorResponse "INVALID_ID or INVALID_STATUS"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /shares/{id} [patch]
func (h *ShareHandler) UpdateShare(c *gin.Context) {
	var input UpdateShareInput
	if !bindBody(c, &input) {
		return
	}

	share, err := h.service.UpdateStatus(c.Request.Context(), caller(c), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, ShareResponse{Success: true, Data: *share})
}

// DeleteShare godoc
// @Summary      Delete a share
// @Description  Permanently removes a share the authenticated user sent or received.
// @Tags         shares
// @Security     SessionCookie
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Share ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /shares/{id} [delete]
func (h *ShareHandler) DeleteShare(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), caller(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Share deleted successfully"})
}
