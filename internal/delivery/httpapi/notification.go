package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sokonova/sokonova-fulfillment-service/internal/domain"
)

type notificationResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Data      string `json:"data,omitempty"`
	ReadAt    string `json:"read_at,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toNotificationResponse(notification *domain.Notification) notificationResponse {
	resp := notificationResponse{
		ID: notification.ID,
		UserID: notification.UserID,
		Type: string(notification.Type),
		Title: notification.Title,
		Body: notification.Body,
		Data: notification.DataJSON,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
	if notification.ReadAt != nil {
		resp.ReadAt = notification.ReadAt.Format(time.RFC3339)
	}
	return resp
}

type notificationListResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
}

// GetNotifications возвращает уведомления пользователя.
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	page, limit := parsePagination(r)
	notifications, total, err := h.notifications.GetByUserID(userID, page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := notificationListResponse{
		Notifications: make([]notificationResponse, 0, len(notifications)),
		Total: total,
	}
	for _, notification := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(notification))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type registerUserRequest struct {
	ID              string `json:"id,omitempty"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Role            string `json:"role"`
	EmailEnabled    bool   `json:"email_enabled"`
	SMSEnabled      bool   `json:"sms_enabled"`
	PushEnabled     bool   `json:"push_enabled"`
	Timezone        string `json:"timezone,omitempty"`
	QuietHoursStart string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd   string `json:"quiet_hours_end,omitempty"`
}

// RegisterUser заводит пользователя с настройками каналов и тихих часов.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	role := domain.UserRole(req.Role)
	if req.Email == "" || (role != domain.RoleBuyer && role != domain.RoleSeller && role != domain.RoleAdmin) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user := domain.User{
		ID: req.ID,
		Email: req.Email,
		Phone: req.Phone,
		Role: role,
		EmailEnabled: req.EmailEnabled,
		SMSEnabled: req.SMSEnabled,
		PushEnabled: req.PushEnabled,
		Timezone: req.Timezone,
		QuietHoursStart: req.QuietHoursStart,
		QuietHoursEnd: req.QuietHoursEnd,
	}
	if err := h.notifications.RegisterUser(&user); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]string{"id": user.ID})
}

// MarkNotificationRead помечает уведомление прочитанным.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "notificationID")

	if err := h.notifications.MarkRead(notificationID); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
