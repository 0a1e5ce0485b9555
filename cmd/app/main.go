package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"nutrikids/cmd/fx/account_fx"
	"nutrikids/cmd/fx/ai_fx"
	"nutrikids/cmd/fx/coach_fx"
	"nutrikids/cmd/fx/config_fx"
	"nutrikids/cmd/fx/controllers_fx"
	"nutrikids/cmd/fx/dashboard_fx"
	"nutrikids/cmd/fx/db_fx"
	"nutrikids/cmd/fx/diary_fx"
	"nutrikids/cmd/fx/entitlement_fx"
	"nutrikids/cmd/fx/feedback_fx"
	"nutrikids/cmd/fx/foods_fx"
	"nutrikids/cmd/fx/gamification_fx"
	"nutrikids/cmd/fx/mail_fx"
	"nutrikids/cmd/fx/mealplan_fx"
	"nutrikids/cmd/fx/memcache_fx"
	"nutrikids/cmd/fx/notification_fx"
	"nutrikids/cmd/fx/payment_fx"
	"nutrikids/cmd/fx/push_fx"
	"nutrikids/cmd/fx/referral_fx"
	"nutrikids/cmd/fx/scheduler_fx"
	"nutrikids/internal/api/controllers"
	"nutrikids/internal/config"
	"nutrikids/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		ai_fx.Module,
		push_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,

		account_fx.Module,
		entitlement_fx.Module,
		gamification_fx.Module,
		referral_fx.Module,
		diary_fx.Module,
		coach_fx.Module,
		payment_fx.Module,
		mealplan_fx.Module,
		foods_fx.Module,
		dashboard_fx.Module,
		feedback_fx.Module,
		notification_fx.Module,
		scheduler_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	childrenController *controllers.ChildrenController,
	diaryController *controllers.DiaryController,
	coachController *controllers.CoachController,
	referralController *controllers.ReferralController,
	subscriptionController *controllers.SubscriptionController,
	paymentController *controllers.PaymentController,
	adminController *controllers.AdminController,
	dashboardController *controllers.DashboardController,
	feedbackController *controllers.FeedbackController,
	mealPlanController *controllers.MealPlanController,
	foodsController *controllers.FoodsController,
	notificationController *controllers.NotificationController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	api := r.Group("/api")

	// Public routes.
	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	api.GET("/plans", paymentController.ListPlans)
	api.POST("/payments/webhook", paymentController.Webhook)

	// Authenticated routes.
	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware())

	auth.GET("/accounts/me", accountController.Me)
	auth.GET("/dashboard", dashboardController.Get)

	children := auth.Group("/children")
	children.POST("", childrenController.Create)
	children.GET("", childrenController.List)
	children.GET("/:id", childrenController.Get)
	children.PUT("/:id", childrenController.Update)
	children.DELETE("/:id", childrenController.Delete)
	children.POST("/:id/points", childrenController.AwardPoints)

	diary := auth.Group("/diary")
	diary.POST("", diaryController.Create)
	diary.GET("", diaryController.List)
	diary.DELETE("/:id", diaryController.Delete)
	diary.POST("/similar", diaryController.SimilarMeals)

	coach := auth.Group("/coach")
	coach.POST("/chat", coachController.Chat)
	coach.POST("/analyze-photo", coachController.AnalyzePhoto)

	auth.GET("/referrals/me", referralController.GetMyReferral)

	subscriptions := auth.Group("/subscriptions")
	subscriptions.GET("/status", subscriptionController.Status)
	subscriptions.POST("/trial", subscriptionController.StartTrial)

	auth.POST("/payments/checkout", paymentController.CreateCheckout)

	mealPlans := auth.Group("/meal-plans")
	mealPlans.POST("", mealPlanController.Create)
	mealPlans.GET("", mealPlanController.List)
	mealPlans.GET("/:id", mealPlanController.Get)
	mealPlans.DELETE("/:id", mealPlanController.Delete)

	auth.GET("/foods/search", foodsController.Search)
	auth.POST("/feedback", feedbackController.Submit)

	notifications := auth.Group("/notifications")
	notifications.POST("/token", notificationController.RegisterToken)
	notifications.GET("/preferences", notificationController.GetPreferences)
	notifications.PUT("/preferences", notificationController.UpdatePreferences)

	// Admin routes.
	admin := auth.Group("/admin")
	admin.Use(middleware.RoleMiddleware("admin"))
	admin.GET("/config", adminController.GetConfig)
	admin.PUT("/config", adminController.UpdateConfig)
	admin.GET("/config/:key", adminController.GetConfigValue)
	admin.GET("/feedback", feedbackController.List)
	admin.POST("/foods/seed", foodsController.Seed)

	return r
}
