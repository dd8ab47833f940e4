package main

import (
	"context"
	"net/http"
	"time"

	"pet-care-journal/internal/adapters/ai/gemini"
	"pet-care-journal/internal/adapters/storage/memory"
	"pet-care-journal/internal/adapters/storage/postgres"
	"pet-care-journal/internal/adapters/storage/s3"
	"pet-care-journal/internal/config"
	"pet-care-journal/internal/platform/logger"
	"pet-care-journal/internal/ports/images"
	"pet-care-journal/internal/router"

	"go.uber.org/zap"
)

// @title Pet Care Journal API
// @version 1.0
// @description Backend del diario de cuidado de mascotas.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "pet-care-journal")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	opts := router.Options{Log: log}

	if cfg.DBDSN != "" {
		db, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal("open postgres", zap.Error(err))
		}
		defer func() { _ = db.Close() }()
		opts.DB = db
		log.Info("using postgres storage")
	} else {
		log.Info("no DB_DSN set, using in-memory storage")
	}

	var store images.Store
	if cfg.Images.Endpoint != "" {
		store, err = s3.NewImageStore(s3.Config{
			Endpoint:  cfg.Images.Endpoint,
			Region:    cfg.Images.Region,
			AccessKey: cfg.Images.AccessKey,
			SecretKey: cfg.Images.SecretKey,
			Bucket:    cfg.Images.Bucket,
			UseSSL:    cfg.Images.UseSSL,
		})
		if err != nil {
			log.Fatal("init image store", zap.Error(err))
		}
		opts.ImageStore = store
		log.Info("using s3 image store", zap.String("bucket", cfg.Images.Bucket))
	} else {
		log.Info("no IMAGES_S3_ENDPOINT set, using in-memory image store")
	}

	if cfg.Gemini.APIKey != "" {
		// Los clientes de generación leen imágenes del mismo store que
		// usa el resto del backend.
		if opts.ImageStore == nil {
			opts.ImageStore = memory.NewImageStore()
		}
		client, err := gemini.NewClient(context.Background(), gemini.Config{
			APIKey:     cfg.Gemini.APIKey,
			TextModel:  cfg.Gemini.TextModel,
			ImageModel: cfg.Gemini.ImageModel,
		}, opts.ImageStore, log)
		if err != nil {
			log.Fatal("init gemini client", zap.Error(err))
		}
		opts.AI = router.AIClients{
			PictureDescriber: gemini.NewPictureDescriber(client),
			AvatarGenerator:  gemini.NewAvatarGenerator(client),
			CareNotes:        gemini.NewCareNotesGenerator(client),
			CareTasks:        gemini.NewCareTasksGenerator(client),
			CareAdvice:       gemini.NewCareAdviceGenerator(client),
			ChatAssistant:    gemini.NewChatAssistant(client),
		}
		log.Info("using gemini clients",
			zap.String("text_model", cfg.Gemini.TextModel),
			zap.String("image_model", cfg.Gemini.ImageModel),
		)
	} else {
		log.Info("no GEMINI_API_KEY set, using local AI stubs")
	}

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second, // los pipelines de generación tardan
	}

	log.Info("starting server", zap.String("addr", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}
