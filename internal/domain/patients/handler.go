package patients

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"healthcare-api/internal/api"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
)

// El formato de teléfono no entra en un tag de govalidator por los
// paréntesis del patrón, así que se valida aparte.
var phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Post("/", createPatientHandler(svc))
		pr.Get("/", listPatientsHandler(svc))

		pr.Get("/{patientID}", getPatientHandler(svc))
		pr.Put("/{patientID}", updatePatientHandler(svc))
		pr.Delete("/{patientID}", deletePatientHandler(svc))
	})
}

// createPatientRequest es el cuerpo para registrar un paciente nuevo.
type createPatientRequest struct {
	FirstName   string `json:"first_name" valid:"required~first_name is required"`
	LastName    string `json:"last_name" valid:"required~last_name is required"`
	Email       string `json:"email" valid:"required~email is required,email~Invalid email format"`
	Phone       string `json:"phone" valid:"required~phone is required"`
	DateOfBirth string `json:"date_of_birth" valid:"required~date_of_birth is required"` // YYYY-MM-DD

	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
	BloodType      *string `json:"blood_type"`
}

// updatePatientRequest: punteros para PATCH real, nil = no tocar.
// date_of_birth no se puede modificar una vez creado el paciente.
type updatePatientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`

	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
	BloodType      *string `json:"blood_type"`
}

type patientResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`

	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
	BloodType      *string `json:"blood_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createPatientHandler godoc
// @Summary Registrar paciente
// @Description Crea la ficha de un paciente. El email debe ser único; si ya está registrado responde 400 con el detalle del store.
// @Tags patients
// @Accept json
// @Produce json
// @Param payload body createPatientRequest true "Datos del paciente; date_of_birth en formato YYYY-MM-DD"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response "invalid json / validación / email duplicado"
// @Router /api/patients [post]
func createPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		if _, err := govalidator.ValidateStruct(req); err != nil {
			api.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		if !phoneRe.MatchString(req.Phone) {
			api.Fail(w, http.StatusBadRequest, "Invalid phone number format")
			return
		}

		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			DateOfBirth:    dob,
			Address:        req.Address,
			MedicalHistory: req.MedicalHistory,
			BloodType:      req.BloodType,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				api.Fail(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrConflict):
				api.Fail(w, http.StatusBadRequest, "Error creating patient: "+err.Error())
			default:
				api.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		api.OK(w, http.StatusCreated, toPatientResponse(p), "Patient created successfully")
	}
}

// listPatientsHandler godoc
// @Summary Listar pacientes
// @Description Devuelve todos los pacientes, más recientes primero. Sin paginación.
// @Tags patients
// @Produce json
// @Success 200 {object} api.Response
// @Router /api/patients [get]
func listPatientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}

		api.OK(w, http.StatusOK, out, "")
	}
}

func getPatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := patientID(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				api.Fail(w, http.StatusNotFound, "Patient not found")
				return
			}
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		api.OK(w, http.StatusOK, toPatientResponse(p), "")
	}
}

// updatePatientHandler godoc
// @Summary Actualizar paciente
// @Description Actualización parcial: los campos ausentes conservan su valor previo; un valor presente (incluida la cadena vacía) sobreescribe.
// @Tags patients
// @Accept json
// @Produce json
// @Param patientID path int true "ID del paciente"
// @Param payload body updatePatientRequest true "Campos a modificar"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response "Patient not found"
// @Router /api/patients/{patientID} [put]
func updatePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := patientID(w, r)
		if !ok {
			return
		}

		var req updatePatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			Address:        req.Address,
			MedicalHistory: req.MedicalHistory,
			BloodType:      req.BloodType,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				api.Fail(w, http.StatusNotFound, "Patient not found")
			case errors.Is(err, ErrConflict):
				api.Fail(w, http.StatusBadRequest, "Error updating patient: "+err.Error())
			default:
				api.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		api.OK(w, http.StatusOK, toPatientResponse(p), "Patient updated successfully")
	}
}

// deletePatientHandler borra al paciente; el store cascadea sus turnos y recetas.
func deletePatientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := patientID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				api.Fail(w, http.StatusNotFound, "Patient not found")
				return
			}
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		api.NoContent(w)
	}
}

func patientID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "patientID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		DateOfBirth:    p.DateOfBirth.Format("2006-01-02"),
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		BloodType:      p.BloodType,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
