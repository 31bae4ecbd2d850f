package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/account"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/cart"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/order"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/router"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/session"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/staff"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/voice"
)

const menuCacheTTL = 30 * time.Second

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"UPSTREAM_BASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── UPSTREAM ─────────────────────────
	api := upstream.NewClient(os.Getenv("UPSTREAM_BASE_URL"))

	// ───────────────────────── STATE ─────────────────────────
	sessions := session.NewStore()
	shortages := shortage.NewRegistry()
	carts := cart.NewStore(api)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	menuService := menu.NewService(api, menuCacheTTL)
	orderService := order.NewService(api, carts, menuService, shortages)
	voiceService := voice.NewService(api)
	staffService := staff.NewService(api, menuService, shortages)

	// ───────────────────────── HANDLERS ─────────────────────────
	handlers := router.Handlers{
		Session:  session.NewHandler(api, sessions, carts),
		Menu:     menu.NewHandler(menuService),
		Cart:     cart.NewHandler(carts, menuService, shortages),
		Order:    order.NewHandler(orderService),
		Voice:    voice.NewHandler(voiceService, shortages),
		Staff:    staff.NewHandler(staffService),
		Account:  account.NewHandler(api),
		Shortage: shortage.NewHandler(shortages),
	}

	router.Register(r, sessions, handlers)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 Storefront gateway running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
