package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/Keyroamos/hunt/internal/app"
	"github.com/Keyroamos/hunt/internal/config"
	"github.com/Keyroamos/hunt/internal/constants"
	"github.com/Keyroamos/hunt/internal/controllers"
	"github.com/Keyroamos/hunt/internal/middleware"
	"github.com/Keyroamos/hunt/internal/routes"
	"github.com/Keyroamos/hunt/internal/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.AppName)

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize hunt:", err)
	}
	defer application.Close()

	if err := application.SeedAdmin(context.Background()); err != nil {
		utils.Logger.WithError(err).Fatal("Failed to seed staff account")
	}

	healthController := controllers.NewHealthController(application.DB)
	authController := controllers.NewAuthController(application.AuthService, application.JWTService)
	userController := controllers.NewUserController(application.UserRepo)
	listingController := controllers.NewListingController(application.ListingService)
	favoriteController := controllers.NewFavoriteController(application.FavoriteService)
	inquiryController := controllers.NewInquiryController(application.InquiryService)
	paymentController := controllers.NewPaymentController(application.PaymentService, application.ListingRepo, application.UserRepo)
	verificationController := controllers.NewVerificationController(application.VerificationService)
	adminController := controllers.NewAdminController(application.AdminService, application.VerificationService)
	frontendController := controllers.NewFrontendController(cfg.StaticDir, application.ListingService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.AuthRegister, authController.Register).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogin, authController.Login).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthRefresh, authController.Refresh).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogout, authController.Logout).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthPasswordReset, authController.RequestPasswordReset).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthPasswordResetCheck, authController.ValidateResetToken).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthPasswordResetConfirm, authController.ConfirmPasswordReset).Methods(http.MethodPost)

	router.HandleFunc(routes.ListingsMap, listingController.MapView).Methods(http.MethodGet)
	router.HandleFunc(routes.ListingRecordView, listingController.RecordView).Methods(http.MethodPost)
	router.HandleFunc(routes.ListingImages, listingController.Images).Methods(http.MethodGet)

	// Search is public but respects mine=true when a valid token is sent.
	optional := router.NewRoute().Subrouter()
	optional.Use(middleware.OptionalAuthMiddleware(cfg.RSAPublicKey))
	optional.HandleFunc(routes.Listings, listingController.Search).Methods(http.MethodGet)
	optional.HandleFunc(routes.ListingByIDOrSlug, listingController.Get).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	secured.HandleFunc(routes.AuthChangePassword, authController.ChangePassword).Methods(http.MethodPost)
	secured.HandleFunc(routes.UsersMe, userController.Me).Methods(http.MethodGet)
	secured.HandleFunc(routes.UsersMe, userController.UpdateMe).Methods(http.MethodPut)

	secured.HandleFunc(routes.Listings, listingController.Create).Methods(http.MethodPost)
	secured.HandleFunc(routes.ListingByID, listingController.Update).Methods(http.MethodPut)
	secured.HandleFunc(routes.ListingByID, listingController.Delete).Methods(http.MethodDelete)
	secured.HandleFunc(routes.ListingTogglePublish, listingController.TogglePublish).Methods(http.MethodPost)
	secured.HandleFunc(routes.ListingStats, listingController.Stats).Methods(http.MethodGet)
	secured.HandleFunc(routes.ListingImages, listingController.AddImage).Methods(http.MethodPost)
	secured.HandleFunc(routes.ListingImageByID, listingController.DeleteImage).Methods(http.MethodDelete)
	secured.HandleFunc(routes.ListingImagePrimary, listingController.SetPrimaryImage).Methods(http.MethodPost)

	secured.HandleFunc(routes.Favorites, favoriteController.ListMine).Methods(http.MethodGet)
	secured.HandleFunc(routes.FavoriteByID, favoriteController.Save).Methods(http.MethodPost)
	secured.HandleFunc(routes.FavoriteByID, favoriteController.Remove).Methods(http.MethodDelete)
	secured.HandleFunc(routes.FavoriteByID, favoriteController.IsSaved).Methods(http.MethodGet)

	secured.HandleFunc(routes.Inquiries, inquiryController.Create).Methods(http.MethodPost)
	secured.HandleFunc(routes.Inquiries, inquiryController.ListMine).Methods(http.MethodGet)
	secured.HandleFunc(routes.InquiryByID, inquiryController.Thread).Methods(http.MethodGet)
	secured.HandleFunc(routes.InquiryMessages, inquiryController.Reply).Methods(http.MethodPost)
	secured.HandleFunc(routes.InquiryMarkRead, inquiryController.MarkRead).Methods(http.MethodPost)

	secured.HandleFunc(routes.PaymentsPromote, paymentController.PromoteListing).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentsVerification, paymentController.PayVerificationFee).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentsContactAccess, paymentController.PayContactAccess).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentsContactAccess, paymentController.ContactDetails).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsVerify, paymentController.VerifyPayment).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentsMine, paymentController.MyPayments).Methods(http.MethodGet)

	secured.HandleFunc(routes.VerificationDocuments, verificationController.SubmitDocument).Methods(http.MethodPost)
	secured.HandleFunc(routes.VerificationStatus, verificationController.Status).Methods(http.MethodGet)

	staff := router.NewRoute().Subrouter()
	staff.Use(middleware.StaffAuthMiddleware(cfg.RSAPublicKey))

	staff.HandleFunc(routes.AdminStats, adminController.Stats).Methods(http.MethodGet)
	staff.HandleFunc(routes.AdminActivity, adminController.RecentActivity).Methods(http.MethodGet)
	staff.HandleFunc(routes.AdminUsers, adminController.Users).Methods(http.MethodGet)
	staff.HandleFunc(routes.AdminUsers, adminController.CreateStaffUser).Methods(http.MethodPost)
	staff.HandleFunc(routes.AdminUserByID, adminController.UserDetails).Methods(http.MethodGet)
	staff.HandleFunc(routes.AdminUserToggleActive, adminController.ToggleUserActive).Methods(http.MethodPost)
	staff.HandleFunc(routes.AdminUserVerify, adminController.VerifyUser).Methods(http.MethodPost)
	staff.HandleFunc(routes.AdminListings, adminController.Listings).Methods(http.MethodGet)
	staff.HandleFunc(routes.AdminListingByID, adminController.DeleteListing).Methods(http.MethodDelete)
	staff.HandleFunc(routes.AdminListingTogglePublished, adminController.ToggleListingPublished).Methods(http.MethodPost)
	staff.HandleFunc(routes.AdminVerifications, adminController.PendingVerifications).Methods(http.MethodGet)
	staff.HandleFunc(routes.AdminVerificationReview, adminController.ReviewVerification).Methods(http.MethodPost)
	staff.HandleFunc(routes.AdminRevenue, adminController.Revenue).Methods(http.MethodGet)

	// SPA catch-all, must be registered last.
	router.PathPrefix("/").HandlerFunc(frontendController.ServeSPA).Methods(http.MethodGet)

	c := cron.New()
	_, promoErr := c.AddFunc(constants.CronSpecExpirePromotions, func() {
		if e := application.CleanupService.ExpirePromotions(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled promotion expiry failed")
		}
	})
	if promoErr != nil {
		utils.Logger.WithError(promoErr).Fatal("Failed to schedule promotion expiry cron")
	}

	_, purgeErr := c.AddFunc(constants.CronSpecPurgeTokens, func() {
		if e := application.CleanupService.PurgeTokens(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled token purge failed")
		}
	})
	if purgeErr != nil {
		utils.Logger.WithError(purgeErr).Fatal("Failed to schedule token purge cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL, cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("hunt failed to start:", err)
	}
}
