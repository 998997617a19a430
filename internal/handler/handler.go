package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/middleware"
	"gestione-turni/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Shift        *ShiftHandler
	Notification *NotificationHandler
	Worker       *WorkerHandler
	Machine      *MachineHandler
	Department   *DepartmentHandler
	Data         *DataHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Shift:        NewShiftHandler(services.Shift, services.Conflict, services.Swap),
		Notification: NewNotificationHandler(services.Notification, services.Swap),
		Worker:       NewWorkerHandler(services.Worker),
		Machine:      NewMachineHandler(services.Machine),
		Department:   NewDepartmentHandler(services.Department),
		Data:         NewDataHandler(services.Export),
	}
}

// RegisterRoutes wires the whole HTTP surface. Everything except health and
// the auth entry points sits behind the access-token middleware; roster
// mutations additionally require the planner role.
func RegisterRoutes(app *fiber.App, h *Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)

	protected := v1.Group("", middleware.AuthRequired(services.Auth))

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Post("/auth/logout-all", h.Auth.LogoutAll)
	protected.Get("/users/me", h.Auth.Me)

	protected.Get("/data", h.Data.GetDocument)

	planner := middleware.RequireRole("planner")
	admin := middleware.RequireRole("admin")

	protected.Put("/users/:id/role", admin, h.Auth.AssignRole)

	shifts := protected.Group("/shifts")
	shifts.Get("/", h.Shift.List)
	shifts.Post("/", planner, h.Shift.Create)
	shifts.Post("/conflict", h.Shift.CheckConflict)
	shifts.Get("/:id", h.Shift.Get)
	shifts.Put("/:id", planner, h.Shift.Update)
	shifts.Delete("/:id", planner, h.Shift.Delete)
	shifts.Post("/:id/swap", h.Shift.ProposeSwap)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Post("/read", h.Notification.MarkRead)
	notifications.Post("/read-all", h.Notification.MarkAllRead)
	notifications.Post("/:id/respond", h.Notification.Respond)
	notifications.Delete("/:id", h.Notification.Delete)

	workers := protected.Group("/workers")
	workers.Get("/", h.Worker.List)
	workers.Post("/", planner, h.Worker.Create)
	workers.Get("/:id", h.Worker.Get)
	workers.Put("/:id", planner, h.Worker.Update)
	workers.Delete("/:id", planner, h.Worker.Delete)
	workers.Post("/:id/avatar", planner, h.Worker.UploadAvatar)

	machines := protected.Group("/machines")
	machines.Get("/", h.Machine.List)
	machines.Post("/", planner, h.Machine.Create)
	machines.Get("/:id", h.Machine.Get)
	machines.Put("/:id", planner, h.Machine.Update)
	machines.Delete("/:id", planner, h.Machine.Delete)

	departments := protected.Group("/departments")
	departments.Get("/", h.Department.List)
	departments.Post("/", planner, h.Department.Create)
	departments.Get("/:id", h.Department.Get)
	departments.Put("/:id", planner, h.Department.Update)
	departments.Delete("/:id", planner, h.Department.Delete)
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
