package notification

import (
	"net/http"
	"strconv"
	"strings"

	"newsbangla24/portal/internal/dto"
	"newsbangla24/portal/internal/middleware"
	"newsbangla24/portal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type NotificationHandler struct {
	service  *Service
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewNotificationHandler allowedOrigin 为空时接受所有来源
func NewNotificationHandler(service *Service, hub *Hub, allowedOrigin string) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "" || origin == "" || strings.EqualFold(origin, allowedOrigin)
			},
		},
	}
}

// List 获取通知列表
// @Summary 获取当前用户的通知
// @Tags Notification
// @Produce json
// @Param unread query bool false "只看未读"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)
	unread := c.Query("unread") == "true"
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.service.List(c.Request.Context(), userID, unread, page, pageSize)
	if err != nil {
		dto.Error(c, err, "failed to load notifications")
		return
	}
	dto.SuccessResponse(c, result)
}

// MarkRead 标记已读
// @Summary 标记通知为已读
// @Tags Notification
// @Produce json
// @Param id path int true "通知ID"
// @Success 200 {object} response.Response
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid notification id"),
		))
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.GetUint(middleware.CtxUserID), uint(id)); err != nil {
		dto.Error(c, err, "failed to update notification")
		return
	}
	dto.SuccessResponse(c, nil)
}

// MarkAllRead 全部标记已读
// @Summary 全部标记为已读
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Response{data=object{updated=int}}
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, err := h.service.MarkAllRead(c.Request.Context(), c.GetUint(middleware.CtxUserID))
	if err != nil {
		dto.Error(c, err, "failed to update notifications")
		return
	}
	dto.SuccessResponse(c, gin.H{"updated": n})
}

// UnreadCount 未读数
// @Summary 获取未读通知数
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Response{data=object{count=int}}
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, err := h.service.UnreadCount(c.Request.Context(), c.GetUint(middleware.CtxUserID))
	if err != nil {
		dto.Error(c, err, "failed to count notifications")
		return
	}
	dto.SuccessResponse(c, gin.H{"count": n})
}

// Stream 建立 websocket 连接，实时接收新通知
// @Summary 通知推送（websocket）
// @Tags Notification
// @Router /notifications/ws [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID := c.GetUint(middleware.CtxUserID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已经写入了错误响应
		return
	}
	if !h.hub.Register(userID, conn) {
		return
	}
	defer h.hub.Unregister(userID, conn)

	// 读循环：客户端断开时退出
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
