package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "vaccine-reminder/docs"
	mem "vaccine-reminder/internal/adapters/storage/memory"
	pg "vaccine-reminder/internal/adapters/storage/postgres"
	"vaccine-reminder/internal/domain/children"
	"vaccine-reminder/internal/domain/vaccines"
	"vaccine-reminder/internal/middleware"
	"vaccine-reminder/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: tabla de vacunas alternativa (tests). Default: vaccines.Default().
	Table []vaccines.Definition
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	table := opts.Table
	if table == nil {
		table = vaccines.Default()
	}

	var childrenRepo children.Repository

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
		childrenRepo = pg.NewChildrenRepo(db)
	} else {
		childrenRepo = mem.NewChildrenRepo()
	}

	childrenSvc := children.NewService(childrenRepo, table)

	// Rutas por módulo
	children.RegisterRoutes(r, childrenSvc)
	vaccines.RegisterRoutes(r, table)

	return r
}
