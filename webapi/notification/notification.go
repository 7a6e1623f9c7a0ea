package notification

import (
	"time"

	"github.com/amirasaad/causehive/pkg/config"
	"github.com/amirasaad/causehive/pkg/domain/notification"
	"github.com/amirasaad/causehive/pkg/dto"
	"github.com/amirasaad/causehive/pkg/middleware"
	notificationrepo "github.com/amirasaad/causehive/pkg/repository/notification"
	notificationsvc "github.com/amirasaad/causehive/pkg/service/notification"
	"github.com/amirasaad/causehive/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AlertInput is a staff-authored system alert. Without user_id it is a
// broadcast to staff.
type AlertInput struct {
	Title    string     `json:"title" validate:"required,max=255"`
	Message  string     `json:"message" validate:"required"`
	Priority string     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
}

type NotificationDTO struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Type         string     `json:"notification_type"`
	Priority     string     `json:"priority"`
	Audience     string     `json:"audience"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
	CauseID      *uuid.UUID `json:"cause_id,omitempty"`
	DonationID   *uuid.UUID `json:"donation_id,omitempty"`
	WithdrawalID *uuid.UUID `json:"withdrawal_id,omitempty"`
	IsRead       bool       `json:"is_read"`
	IsArchived   bool       `json:"is_archived"`
	CreatedAt    time.Time  `json:"created_at"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
}

func toNotificationDTO(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:           n.ID,
		Title:        n.Title,
		Message:      n.Message,
		Type:         string(n.Type),
		Priority:     string(n.Priority),
		Audience:     string(n.Audience),
		UserID:       n.UserID,
		CauseID:      n.CauseID,
		DonationID:   n.DonationID,
		WithdrawalID: n.WithdrawalID,
		IsRead:       n.IsRead,
		IsArchived:   n.IsArchived,
		CreatedAt:    n.CreatedAt,
		ReadAt:       n.ReadAt,
	}
}

// Routes registers the notification inbox and staff alert routes.
func Routes(app *fiber.App, notificationSvc *notificationsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	admin := []fiber.Handler{protected, middleware.AdminOnly()}

	app.Get("/notifications", protected, List(notificationSvc))
	app.Get("/notifications/unread-count", protected, UnreadCount(notificationSvc))
	app.Post("/notifications/read-all", protected, MarkAllRead(notificationSvc))
	app.Post("/notifications/:id/read", protected, MarkRead(notificationSvc))
	app.Post("/notifications/:id/archive", protected, Archive(notificationSvc))

	app.Get("/admin/notifications", append(admin, AdminList(notificationSvc))...)
	app.Post("/admin/notifications", append(admin, AdminCreate(notificationSvc))...)
	app.Post("/admin/notifications/read-all", append(admin, AdminMarkAllRead(notificationSvc))...)
}

func filter(c *fiber.Ctx) (notificationrepo.Filter, error) {
	f := notificationrepo.Filter{
		UnreadOnly:      c.QueryBool("unread"),
		Type:            notification.Type(c.Query("type")),
		Priority:        notification.Priority(c.Query("priority")),
		IncludeArchived: c.QueryBool("archived"),
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return f, fiber.NewError(fiber.StatusBadRequest, "unknown priority")
	}
	userID, err := common.UUIDQuery(c, "user")
	if err != nil {
		return f, err
	}
	f.UserID = userID
	return f, nil
}

func page(c *fiber.Ctx, p *dto.Page[*notification.Notification]) error {
	return common.SuccessResponseJSON(c, fiber.StatusOK, "Notifications fetched", dto.MapPage(p, toNotificationDTO))
}

// List returns the caller's notifications, newest first.
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread"
// @Param type query string false "Notification type"
// @Param priority query string false "low, medium, high or urgent"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /notifications [get]
// @Security Bearer
func List(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		p, err := notificationSvc.List(c.Context(), actor, f, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list notifications", err)
		}
		return page(c, p)
	}
}

// UnreadCount returns the caller's unread badge count.
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Success 200 {object} common.Response
// @Router /notifications/unread-count [get]
// @Security Bearer
func UnreadCount(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		count, err := notificationSvc.UnreadCount(c.Context(), actor)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to count notifications", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Unread count fetched", fiber.Map{"unread_count": count})
	}
}

// MarkAllRead marks every unread notification of the caller read.
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} common.Response
// @Router /notifications/read-all [post]
// @Security Bearer
func MarkAllRead(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := middleware.Actor(c)
		if actor == nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		count, err := notificationSvc.MarkAllRead(c.Context(), actor.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to mark notifications read", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notifications marked read", fiber.Map{"updated": count})
	}
}

// MarkRead marks one notification read.
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications/{id}/read [post]
// @Security Bearer
func MarkRead(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		n, err := notificationSvc.MarkRead(c.Context(), id, middleware.Actor(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Notification not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notification marked read", toNotificationDTO(n))
	}
}

// Archive hides a notification from the inbox.
// @Summary Archive notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications/{id}/archive [post]
// @Security Bearer
func Archive(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		n, err := notificationSvc.Archive(c.Context(), id, middleware.Actor(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Notification not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notification archived", toNotificationDTO(n))
	}
}

// AdminList returns notifications across users.
// @Summary List all notifications
// @Tags admin
// @Produce json
// @Param user query string false "User ID"
// @Param unread query bool false "Only unread"
// @Param type query string false "Notification type"
// @Param priority query string false "Priority"
// @Param archived query bool false "Include archived"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} common.Response
// @Failure 403 {object} common.ProblemDetails
// @Router /admin/notifications [get]
// @Security Bearer
func AdminList(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		p, err := notificationSvc.AdminList(c.Context(), f, common.PageQuery(c, dto.DefaultPageSize))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list notifications", err)
		}
		return page(c, p)
	}
}

// AdminCreate sends a system alert.
// @Summary Create system alert
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AlertInput true "Alert"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /admin/notifications [post]
// @Security Bearer
func AdminCreate(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AlertInput](c)
		if input == nil {
			return err
		}
		n, err := notificationSvc.AdminCreate(c.Context(), notificationsvc.AlertInput{
			Title:    input.Title,
			Message:  input.Message,
			Priority: notification.Priority(input.Priority),
			UserID:   input.UserID,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create alert", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Alert created", toNotificationDTO(n))
	}
}

// AdminMarkAllRead marks matching notifications read across users.
// @Summary Mark notifications read
// @Tags admin
// @Produce json
// @Param user query string false "User ID"
// @Param type query string false "Notification type"
// @Param priority query string false "Priority"
// @Success 200 {object} common.Response
// @Router /admin/notifications/read-all [post]
// @Security Bearer
func AdminMarkAllRead(notificationSvc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid filter", err)
		}
		count, err := notificationSvc.AdminMarkAllRead(c.Context(), f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to mark notifications read", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notifications marked read", fiber.Map{"updated": count})
	}
}
