package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/luxestate/luxestate-api/internal/config"
	"github.com/luxestate/luxestate-api/internal/logging"
	"github.com/luxestate/luxestate-api/internal/media"
	miniorepo "github.com/luxestate/luxestate-api/internal/repository/minio"
	"github.com/luxestate/luxestate-api/internal/repository/postgres"
	"github.com/luxestate/luxestate-api/internal/service"
	transporthttp "github.com/luxestate/luxestate-api/internal/transport/http"
	"github.com/luxestate/luxestate-api/internal/transport/mail"
	"github.com/luxestate/luxestate-api/internal/util"
)

func main() {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			defer writer.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	minioClient, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect minio: %v", err)
	}
	storage := miniorepo.NewStorage(minioClient, cfg.MinIOEndpoint, cfg.MinIOUseSSL, cfg.MinIOPublicURL)

	adminRepo := postgres.NewAdminRepo(db)
	otpRepo := postgres.NewOTPCodeRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	propertyRepo := postgres.NewPropertyRepo(db)
	enquiryRepo := postgres.NewEnquiryRepo(db)

	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	resetTokens := service.NewResetTokenStore(cfg.ResetTokenTTL)
	mailer := mail.NewOTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	processor := media.NewFFMPEGProcessor(cfg.FFMPEGPath, media.DefaultMaxDimension)

	authService := service.NewAuthService(
		adminRepo,
		otpRepo,
		sessionRepo,
		resetTokens,
		mailer,
		jwtManager,
		cfg.GoogleAudience,
		cfg.OTPTTL,
		cfg.OTPLength,
	)
	propertyService := service.NewPropertyService(propertyRepo)
	enquiryService := service.NewEnquiryService(enquiryRepo)
	statsService := service.NewStatsService(propertyRepo, enquiryRepo)
	uploadService := service.NewUploadService(storage, processor, service.UploadServiceConfig{
		Bucket:        cfg.MinIOBucketListings,
		MaxImageBytes: cfg.ListingImageMaxBytes,
	})

	e := transporthttp.NewRouter(cfg.AllowOrigins)
	e.Server.ReadTimeout = 30 * time.Second
	e.Server.WriteTimeout = 60 * time.Second

	transporthttp.RegisterAuth(e, authService)
	transporthttp.RegisterStaff(e, authService)
	transporthttp.RegisterProperties(e, propertyService, authService)
	transporthttp.RegisterEnquiries(e, enquiryService, authService)
	transporthttp.RegisterUploads(e, uploadService, authService)
	transporthttp.RegisterStats(e, statsService, authService)
	transporthttp.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
