package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"healthcare-api/internal/api"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(svc))

		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Put("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	PatientID       int64  `json:"patient_id" valid:"required~patient_id is required"`
	DoctorName      string `json:"doctor_name" valid:"required~doctor_name is required"`
	AppointmentDate string `json:"appointment_date" valid:"required~appointment_date is required"` // RFC3339
	DurationMinutes *int   `json:"duration_minutes"`                                               // opcional, default 30
	Reason          string `json:"reason" valid:"required~reason is required"`

	Notes *string `json:"notes"`
}

// updateAppointmentRequest: nil = no tocar. status sí es editable acá
// (es el único recurso cuyo update admite un campo de workflow).
type updateAppointmentRequest struct {
	DoctorName      *string `json:"doctor_name"`
	AppointmentDate *string `json:"appointment_date"` // RFC3339
	DurationMinutes *int    `json:"duration_minutes"`
	Status          *string `json:"status"`
	Reason          *string `json:"reason"`
	Notes           *string `json:"notes"`
}

type appointmentResponse struct {
	ID              int64     `json:"id"`
	PatientID       int64     `json:"patient_id"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// createAppointmentHandler godoc
// @Summary Agendar turno
// @Description Crea un turno para un paciente existente. El status siempre nace en "scheduled". Si patient_id no existe responde 400.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos del turno; appointment_date en formato RFC3339"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		if _, err := govalidator.ValidateStruct(req); err != nil {
			api.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		date, err := time.Parse(time.RFC3339, req.AppointmentDate)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "appointment_date must be RFC3339")
			return
		}

		duration := 0
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PatientID:       req.PatientID,
			DoctorName:      req.DoctorName,
			AppointmentDate: date,
			DurationMinutes: duration,
			Reason:          req.Reason,
			Notes:           req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				api.Fail(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrConflict):
				api.Fail(w, http.StatusBadRequest, "Error creating appointment: "+err.Error())
			default:
				api.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		api.OK(w, http.StatusCreated, toAppointmentResponse(a), "Appointment created successfully")
	}
}

func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}

		api.OK(w, http.StatusOK, out, "")
	}
}

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := appointmentID(w, r)
		if !ok {
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				api.Fail(w, http.StatusNotFound, "Appointment not found")
				return
			}
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		api.OK(w, http.StatusOK, toAppointmentResponse(a), "")
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := appointmentID(w, r)
		if !ok {
			return
		}

		var req updateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		var date *time.Time
		if req.AppointmentDate != nil {
			t, err := time.Parse(time.RFC3339, *req.AppointmentDate)
			if err != nil {
				api.Fail(w, http.StatusBadRequest, "appointment_date must be RFC3339")
				return
			}
			date = &t
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			DoctorName:      req.DoctorName,
			AppointmentDate: date,
			DurationMinutes: req.DurationMinutes,
			Status:          req.Status,
			Reason:          req.Reason,
			Notes:           req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				api.Fail(w, http.StatusNotFound, "Appointment not found")
			case errors.Is(err, ErrConflict):
				api.Fail(w, http.StatusBadRequest, "Error updating appointment: "+err.Error())
			default:
				api.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		api.OK(w, http.StatusOK, toAppointmentResponse(a), "Appointment updated successfully")
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := appointmentID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				api.Fail(w, http.StatusNotFound, "Appointment not found")
				return
			}
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		api.NoContent(w)
	}
}

func appointmentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorName:      a.DoctorName,
		AppointmentDate: a.AppointmentDate,
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status,
		Reason:          a.Reason,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
