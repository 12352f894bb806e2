// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/handler"
	"find-my-stuff/internal/handler/auth"
	"find-my-stuff/internal/handler/items"
	"find-my-stuff/internal/handler/notifications"
	"find-my-stuff/internal/middleware"
	"find-my-stuff/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, mailer service.Mailer) {
	requireAuth := middleware.RequireAuth(cch)
	requireAdmin := middleware.RequireAdmin(cch)

	// 公開路由
	e.GET("/", handler.HomeHandler(cch))
	e.GET("/ping", handler.PingHandler(db, cch))
	e.POST("/signup", auth.SignupHandler(db))
	e.POST("/signin", auth.LoginHandler(db, cch))
	e.GET("/logout", auth.LogoutHandler(cch))
	e.POST("/reset_password_request", auth.ResetPasswordHandler(db, mailer))

	// 需登入
	e.POST("/change_password", auth.ChangePasswordHandler(db), requireAuth)
	e.POST("/add_item", items.CreateItemHandler(db), requireAuth)
	e.GET("/dashboard", items.DashboardHandler(db), requireAuth)
	e.GET("/view_item/:id", items.ViewItemHandler(db), requireAuth)
	e.POST("/edit_item/:id", items.EditItemHandler(db), requireAuth)
	e.POST("/delete_item/:id", items.DeleteItemHandler(db), requireAuth)
	e.POST("/resolve_item/:id", items.ResolveItemHandler(db), requireAuth)
	e.GET("/my_pending", items.MyPendingHandler(db), requireAuth)
	e.GET("/notifications", notifications.ListNotificationsHandler(db), requireAuth)
	e.GET("/mark_read/:id", notifications.MarkReadHandler(db), requireAuth)
	e.POST("/mark_all_read", notifications.MarkAllReadHandler(db), requireAuth)

	// 管理員專屬
	e.POST("/moderate_item/:id/accept", items.AcceptItemHandler(db), requireAdmin)
	e.POST("/moderate_item/:id/reject", items.RejectItemHandler(db), requireAdmin)
	e.GET("/admin/pending_approval", items.PendingApprovalHandler(db), requireAdmin)
	e.POST("/admin/delete_all_pending", items.DeleteAllPendingHandler(db), requireAdmin)
}
