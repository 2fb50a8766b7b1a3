package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	mem "healthcare-api/internal/adapters/storage/memory"
	pg "healthcare-api/internal/adapters/storage/postgres"
	"healthcare-api/internal/domain/appointments"
	"healthcare-api/internal/domain/patients"
	"healthcare-api/internal/domain/prescriptions"
	"healthcare-api/internal/middleware"
	"healthcare-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	serviceName    = "healthcare-api"
	serviceVersion = "1.0.0"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory (dev y tests).
	DB *sql.DB

	Logger logger.Logger
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "healthy",
			Service: serviceName,
			Version: serviceVersion,
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			if opened, err := pg.Open(dsn); err == nil {
				db = opened
			}
		}
	}

	var (
		patientsRepo      patients.Repository
		appointmentsRepo  appointments.Repository
		prescriptionsRepo prescriptions.Repository
	)

	if db != nil {
		patientsRepo = pg.NewPatientsRepo(db)
		appointmentsRepo = pg.NewAppointmentsRepo(db)
		prescriptionsRepo = pg.NewPrescriptionsRepo(db)
	} else {
		store := mem.NewStore()
		patientsRepo = store.Patients()
		appointmentsRepo = store.Appointments()
		prescriptionsRepo = store.Prescriptions()
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientsRepo)
	appointmentsSvc := appointments.NewService(appointmentsRepo)
	prescriptionsSvc := prescriptions.NewService(prescriptionsRepo)

	// Rutas por módulo, todas bajo /api
	r.Route("/api", func(ar chi.Router) {
		patients.RegisterRoutes(ar, patientsSvc)
		appointments.RegisterRoutes(ar, appointmentsSvc)
		prescriptions.RegisterRoutes(ar, prescriptionsSvc)
	})

	return r
}
