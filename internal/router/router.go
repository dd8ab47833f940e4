package router

import (
	"database/sql"
	"net/http"
	"os"

	"pet-care-journal/internal/adapters/ai/local"
	mem "pet-care-journal/internal/adapters/storage/memory"
	pg "pet-care-journal/internal/adapters/storage/postgres"
	"pet-care-journal/internal/domain/chat"
	"pet-care-journal/internal/domain/diaries"
	domimages "pet-care-journal/internal/domain/images"
	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/ports/images"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "pet-care-journal/docs" // registro del spec de swagger
)

// AIClients agrupa los seis clientes de generación. Cualquier campo
// en nil cae al stub local (modo dev).
type AIClients struct {
	PictureDescriber pets.PictureDescriptionClient
	AvatarGenerator  pets.AvatarImageClient
	CareNotes        pets.CareNotesClient
	CareTasks        diaries.CareTasksClient
	CareAdvice       diaries.CareAdviceClient
	ChatAssistant    chat.Assistant
}

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, usa ese object store. Si no, in-memory.
	ImageStore images.Store

	AI AIClients

	Log *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var (
		petRepo   pets.Repository
		diaryRepo diaries.Repository
		userRepo  users.Repository
		chatRepo  chat.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		diaryRepo = pg.NewDiariesRepo(db)
		userRepo = pg.NewUsersRepo(db)
		chatRepo = pg.NewChatRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
		diaryRepo = mem.NewDiaryRepo()
		userRepo = mem.NewUserRepo()
		chatRepo = mem.NewChatRepo()
	}

	store := opts.ImageStore
	if store == nil {
		store = mem.NewImageStore()
	}

	ai := opts.AI
	if ai.PictureDescriber == nil {
		ai.PictureDescriber = local.PictureDescriber{}
	}
	if ai.AvatarGenerator == nil {
		ai.AvatarGenerator = local.AvatarGenerator{}
	}
	if ai.CareNotes == nil {
		ai.CareNotes = local.CareNotesGenerator{}
	}
	if ai.CareTasks == nil {
		ai.CareTasks = local.CareTasksGenerator{}
	}
	if ai.CareAdvice == nil {
		ai.CareAdvice = local.CareAdviceGenerator{}
	}
	if ai.ChatAssistant == nil {
		ai.ChatAssistant = local.ChatAssistant{}
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo, store, ai.PictureDescriber, ai.AvatarGenerator, ai.CareNotes, log)
	diariesSvc := diaries.NewService(diaryRepo, ai.CareTasks, ai.CareAdvice, log)
	chatSvc := chat.NewService(chatRepo, ai.ChatAssistant, log)
	usersSvc := users.NewService(userRepo, log)
	imagesSvc := domimages.NewService(store, log)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	diaries.RegisterRoutes(r, diariesSvc)
	chat.RegisterRoutes(r, chatSvc, petsSvc)
	users.RegisterRoutes(r, usersSvc)
	domimages.RegisterRoutes(r, imagesSvc)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
