package routes

import (
	adminapi "internship-app/internal/api/admin"
	authapi "internship-app/internal/api/auth"
	"internship-app/internal/api/autoapply"
	"internship-app/internal/api/billing"
	"internship-app/internal/api/insights"
	internshipsapi "internship-app/internal/api/internships"
	"internship-app/internal/api/plans"
	referralsapi "internship-app/internal/api/referrals"
	stripewebhooks "internship-app/internal/api/stripewebhook"
	"internship-app/internal/api/users"
	"internship-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/internships", internshipsapi.ListInternships)
	r.GET("/internships/:id", internshipsapi.GetInternship)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware(), middleware.RateLimit(rate.Limit(5), 10))

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/trial/activate", billing.ActivateTrial)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	auth.GET("/auto-apply/preview", autoapply.Preview)
	auth.POST("/auto-apply", autoapply.Apply)
	auth.GET("/applications", internshipsapi.ListMyApplications)
	auth.POST("/internships/:id/apply", internshipsapi.ApplyManually)

	auth.GET("/referral-code", referralsapi.GetMyCode)
	auth.POST("/referrals/redeem", referralsapi.Redeem)

	// Premium users
	premium := auth.Group("/")
	premium.Use(middleware.RequirePremium())
	premium.GET("/skill-gap", insights.SkillGapAnalysis)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
	admin.POST("/users/:id/grant-tokens", adminapi.GrantTokens)
	admin.POST("/users/:id/set-plan", adminapi.SetUserPlan)
	admin.POST("/internships", internshipsapi.CreateInternship)
	admin.POST("/internships/:id/deactivate", internshipsapi.DeactivateInternship)
}
