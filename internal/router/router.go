package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/account"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/cart"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/middleware"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/order"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/session"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/staff"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/voice"
)

type Handlers struct {
	Session  *session.Handler
	Menu     *menu.Handler
	Cart     *cart.Handler
	Order    *order.Handler
	Voice    *voice.Handler
	Staff    *staff.Handler
	Account  *account.Handler
	Shortage *shortage.Handler
}

// Register wires every storefront route onto the engine.
func Register(r *gin.Engine, sessions *session.Store, h Handlers) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Session.Signup)
		auth.POST("/login", h.Session.Login)
		auth.POST("/logout", middleware.SessionAuth(sessions), h.Session.Logout)
	}

	authed := r.Group("/")
	authed.Use(middleware.SessionAuth(sessions))
	{
		authed.GET("/menus/references", h.Menu.References)

		authed.GET("/shortages", h.Shortage.List)
		authed.DELETE("/shortages", h.Shortage.Clear)
		authed.DELETE("/shortages/:code", h.Shortage.Clear)

		authed.GET("/cart", h.Cart.List)
		authed.POST("/cart/items", h.Cart.AddItem)
		authed.PATCH("/cart/items/:id", h.Cart.UpdateQuantity)
		authed.DELETE("/cart/items/:id", h.Cart.RemoveItem)
		authed.DELETE("/cart", h.Cart.Clear)

		authed.GET("/orders/my", h.Order.History)
		authed.POST("/orders", h.Order.Checkout)
		authed.POST("/orders/:id/cancel", h.Order.Cancel)
		authed.POST("/orders/:id/reorder", h.Order.Reorder)

		authed.POST("/voice/order", h.Voice.Turn)
		authed.DELETE("/voice/session/:id", h.Voice.EndSession)

		users := authed.Group("/users")
		{
			users.GET("/me", h.Account.Profile)
			users.PUT("/me", h.Account.UpdateProfile)
			users.PUT("/me/password", h.Account.ChangePassword)
			users.GET("/addresses", h.Account.Addresses)
			users.POST("/addresses", h.Account.CreateAddress)
			users.PUT("/addresses/:id", h.Account.UpdateAddress)
			users.DELETE("/addresses/:id", h.Account.DeleteAddress)
		}
	}

	staffGroup := r.Group("/staff")
	staffGroup.Use(
		middleware.SessionAuth(sessions),
		middleware.RequireRole("STAFF"),
	)
	{
		staffGroup.GET("/orders/live", h.Staff.LiveOrders)
		staffGroup.PUT("/orders/:id/status", h.Staff.UpdateStatus)
		staffGroup.GET("/stocks", h.Staff.Stocks)
		staffGroup.PUT("/stocks", h.Staff.UpdateStock)
	}
}
