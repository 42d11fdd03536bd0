package server

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/zaheerabbaspac-hue/PAC/internal/config"
	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/jobs"
	"github.com/zaheerabbaspac-hue/PAC/internal/middleware"
	adminHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/admin/delivery/http"
	adminSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/admin/service"
	attendanceHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/delivery/http"
	attendanceRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/repository"
	attendanceSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/attendance/service"
	directoryHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/delivery/http"
	directoryRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/repository"
	directorySvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/directory/service"
	feeHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/delivery/http"
	feeRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/repository"
	feeSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/fee/service"
	galleryHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/gallery/delivery/http"
	galleryRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/gallery/repository"
	gallerySvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/gallery/service"
	homeworkHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/homework/delivery/http"
	homeworkRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/homework/repository"
	homeworkSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/homework/service"
	leaveHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/leave/delivery/http"
	leaveRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/leave/repository"
	leaveSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/leave/service"
	navigationHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/navigation/delivery/http"
	navigationSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/navigation/service"
	noticeHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/delivery/http"
	noticeRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/repository"
	noticeSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/notice/service"
	profileHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/profile/delivery/http"
	profileSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/profile/service"
	realtimeHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/realtime/delivery/http"
	realtimeSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/realtime/service"
	searchSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/search/service"
	settingsHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/settings/delivery/http"
	settingsRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/settings/repository"
	settingsSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/settings/service"
	userHTTP "github.com/zaheerabbaspac-hue/PAC/internal/modules/user/delivery/http"
	userRepo "github.com/zaheerabbaspac-hue/PAC/internal/modules/user/repository"
	userSvc "github.com/zaheerabbaspac-hue/PAC/internal/modules/user/service"
	"github.com/zaheerabbaspac-hue/PAC/pkg/response"
	"github.com/zaheerabbaspac-hue/PAC/pkg/storage"
)

type Server struct {
	cfg       *config.Config
	engine    *gin.Engine
	scheduler *jobs.Scheduler
}

// New wires every module and returns a server ready to Run. Redis, search
// and image storage are all optional; with them absent the corresponding
// features degrade rather than fail.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, meili meilisearch.ServiceManager, imageStore storage.ImageStorage) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories.
	users := userRepo.NewUserRepository(db)
	classes := directoryRepo.NewClassRepository(db)
	attendance := attendanceRepo.NewAttendanceRepository(db)
	homework := homeworkRepo.NewHomeworkRepository(db)
	notices := noticeRepo.NewNoticeRepository(db)
	fees := feeRepo.NewFeeRepository(db)
	leaves := leaveRepo.NewLeaveRepository(db)
	gallery := galleryRepo.NewGalleryRepository(db)
	settings := settingsRepo.NewSettingsRepository(db)

	// Shared infrastructure.
	var search searchSvc.SearchService
	if meili != nil {
		search = searchSvc.NewSearchService(meili, cfg.MeiliMasterKey)
	}
	publisher := realtimeSvc.NewPublisher(rdb)
	blacklist := userSvc.NewRedisBlacklist(rdb)

	// Services.
	directory := directorySvc.NewDirectoryService(classes, publisher)
	resolver := profileSvc.NewProfileResolver(users)
	navigator := navigationSvc.NewNavigatorService(resolver, cfg.LogoutGrace, cfg.SplashDelay)
	auth := userSvc.NewUserService(users, search, blacklist, cfg.JWTSecret, cfg.JWTTTL)
	profiles := profileSvc.NewProfileService(users, search)
	admin := adminSvc.NewAdminService(users, classes, notices, search)
	attendanceService := attendanceSvc.NewAttendanceService(attendance, users, directory)
	homeworkService := homeworkSvc.NewHomeworkService(homework, directory)
	noticeService := noticeSvc.NewNoticeService(notices, search, publisher)
	feeService := feeSvc.NewFeeService(fees)
	leaveService := leaveSvc.NewLeaveService(leaves)
	galleryService := gallerySvc.NewGalleryService(gallery, imageStore, cfg.UploadFolder)
	settingsService := settingsSvc.NewSettingsService(settings, imageStore, publisher)

	// Handlers.
	userHandler := userHTTP.NewUserHandler(auth)
	profileHandler := profileHTTP.NewProfileHandler(profiles)
	adminHandler := adminHTTP.NewAdminHandler(admin)
	directoryHandler := directoryHTTP.NewDirectoryHandler(directory, users)
	navigationHandler := navigationHTTP.NewNavigationHandler(navigator)
	attendanceHandler := attendanceHTTP.NewAttendanceHandler(attendanceService)
	homeworkHandler := homeworkHTTP.NewHomeworkHandler(homeworkService)
	noticeHandler := noticeHTTP.NewNoticeHandler(noticeService)
	feeHandler := feeHTTP.NewFeeHandler(feeService)
	leaveHandler := leaveHTTP.NewLeaveHandler(leaveService)
	galleryHandler := galleryHTTP.NewGalleryHandler(galleryService)
	settingsHandler := settingsHTTP.NewSettingsHandler(settingsService)
	realtimeHandler := realtimeHTTP.NewRealtimeHandler(rdb)

	var tokenBlacklist middleware.TokenBlacklist
	if blacklist != nil {
		tokenBlacklist = blacklist
	}
	authMW := middleware.NewAuthMiddleware(users, tokenBlacklist, cfg.JWTSecret)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")

	// Public, rate limited per client IP.
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute)
	api.POST("/auth/register", loginLimiter, userHandler.Register)
	api.POST("/auth/login", loginLimiter, userHandler.Login)

	// Any authenticated user.
	protected := api.Group("", authMW.RequireAuth())
	protected.POST("/auth/logout", userHandler.Logout, func(c *gin.Context) {
		if userID, err := response.GetUserID(c); err == nil {
			navigator.EndSession(userID)
		}
	})
	protected.GET("/navigation", navigationHandler.State)
	protected.POST("/navigation/event", navigationHandler.Event)
	protected.GET("/profile/me", profileHandler.Me)
	protected.PUT("/profile/me", profileHandler.Update)
	protected.GET("/classes", directoryHandler.ListClasses)
	protected.GET("/classes/options", directoryHandler.ListOptions)
	protected.GET("/gallery", galleryHandler.List)
	protected.GET("/settings", settingsHandler.List)
	protected.GET("/settings/:key", settingsHandler.Get)
	protected.GET("/realtime/ws", realtimeHandler.HandleWebSocket)
	protected.GET("/notices", authMW.RequireRole(entity.AllRoles()...), noticeHandler.List)

	// Students (and parents for the read-only views).
	student := protected.Group("", authMW.RequireRole(entity.RoleStudent, entity.RoleParent))
	student.GET("/attendance/me", attendanceHandler.MyHistory)
	student.GET("/homework/me", homeworkHandler.ListMine)
	student.GET("/fees/me", feeHandler.ListMine)
	student.POST("/leave", leaveHandler.Apply)
	student.GET("/leave/me", leaveHandler.ListMine)

	// Teachers and above.
	teacher := protected.Group("/teacher", authMW.RequireRole(entity.RoleTeacher, entity.RoleAdmin, entity.RoleSuperAdmin))
	teacher.GET("/roster", directoryHandler.GetRoster)
	teacher.GET("/attendance", attendanceHandler.GetDaySheet)
	teacher.POST("/attendance", attendanceHandler.SaveDay)
	teacher.GET("/attendance/students/:student_id", attendanceHandler.StudentHistory)
	teacher.POST("/homework", homeworkHandler.Create)
	teacher.GET("/homework", homeworkHandler.ListBySelector)
	teacher.DELETE("/homework/:homework_id", homeworkHandler.Delete)

	// Admin tiers.
	adminGroup := protected.Group("/admin", authMW.RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin))
	adminGroup.GET("/analytics", adminHandler.Analytics)
	adminGroup.GET("/users", adminHandler.ListByRole)
	adminGroup.GET("/users/pending", adminHandler.ListPending)
	adminGroup.PATCH("/users/:user_id/status", adminHandler.SetStatus)
	adminGroup.DELETE("/users/:user_id", adminHandler.DeleteUser)
	adminGroup.POST("/notices", noticeHandler.Create)
	adminGroup.DELETE("/notices/:notice_id", noticeHandler.Delete)
	adminGroup.POST("/fees", feeHandler.Create)
	adminGroup.GET("/fees", feeHandler.ListAll)
	adminGroup.GET("/fees/students/:student_id", feeHandler.ListByStudent)
	adminGroup.PATCH("/fees/:fee_id/paid", feeHandler.MarkPaid)
	adminGroup.GET("/leaves/pending", leaveHandler.ListPending)
	adminGroup.PATCH("/leaves/:leave_id/approve", leaveHandler.Approve)
	adminGroup.PATCH("/leaves/:leave_id/reject", leaveHandler.Reject)
	adminGroup.POST("/gallery", galleryHandler.Upload)
	adminGroup.DELETE("/gallery/:image_id", galleryHandler.Remove)

	// Super admin only.
	super := protected.Group("/super", authMW.RequireRole(entity.RoleSuperAdmin))
	super.POST("/users", adminHandler.CreateSystemUser)
	super.POST("/classes", directoryHandler.CreateClass)
	super.POST("/classes/:class_id/sections", directoryHandler.CreateSection)
	super.DELETE("/classes/:class_id", directoryHandler.DeleteClass)
	super.DELETE("/classes/:class_id/sections/:section_id", directoryHandler.DeleteSection)
	super.PUT("/settings/:key", settingsHandler.Set)
	super.POST("/settings/logo", settingsHandler.UploadLogo)

	scheduler := jobs.NewScheduler()
	scheduler.Register(jobs.NewFeeOverdueJob(feeService, cfg.FeeOverdueCron))
	scheduler.Register(jobs.NewGalleryCleanupJob(galleryService, cfg.GalleryCleanupCron))

	return &Server{cfg: cfg, engine: engine, scheduler: scheduler}
}

// Run starts the background jobs and serves HTTP until the process exits.
func (s *Server) Run() error {
	if err := s.scheduler.Start(); err != nil {
		return err
	}
	defer s.scheduler.Stop()

	log.Printf("listening on :%s", s.cfg.Port)
	return s.engine.Run(":" + s.cfg.Port)
}
