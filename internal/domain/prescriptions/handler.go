package prescriptions

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

// RegisterRoutes monta las rutas de recetas. No hay PUT: la receta es
// inmutable una vez emitida.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/prescriptions", func(pr chi.Router) {
		pr.Post("/", createPrescriptionHandler(svc))
		pr.Get("/", listPrescriptionsHandler(svc))

		pr.Get("/{prescriptionID}", getPrescriptionHandler(svc))
		pr.Delete("/{prescriptionID}", deletePrescriptionHandler(svc))
	})
}

type createPrescriptionRequest struct {
	PatientID         int64  `json:"patient_id" valid:"required~patient_id is required"`
	MedicationName    string `json:"medication_name" valid:"required~medication_name is required"`
	Dosage            string `json:"dosage" valid:"required~dosage is required"`
	Frequency         string `json:"frequency" valid:"required~frequency is required"`
	DurationDays      int    `json:"duration_days" valid:"required~duration_days is required"`
	PrescribingDoctor string `json:"prescribing_doctor" valid:"required~prescribing_doctor is required"`

	Instructions     *string `json:"instructions"`
	RefillsRemaining int     `json:"refills_remaining"`
}

type prescriptionResponse struct {
	ID                int64     `json:"id"`
	PatientID         int64     `json:"patient_id"`
	MedicationName    string    `json:"medication_name"`
	Dosage            string    `json:"dosage"`
	Frequency         string    `json:"frequency"`
	DurationDays      int       `json:"duration_days"`
	PrescribingDoctor string    `json:"prescribing_doctor"`
	Instructions      *string   `json:"instructions"`
	IssuedDate        time.Time `json:"issued_date"`
	ExpiryDate        time.Time `json:"expiry_date"`
	RefillsRemaining  int       `json:"refills_remaining"`
	CreatedAt         time.Time `json:"created_at"`
}

// createPrescriptionHandler godoc
// @Summary Emitir receta
// @Description Emite una receta para un paciente existente. issued_date es el momento de la emisión y expiry_date sale de duration_days más la ventana de gracia de 90 días.
// @Tags prescriptions
// @Accept json
// @Produce json
// @Param payload body createPrescriptionRequest true "Datos de la receta"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Router /api/prescriptions [post]
func createPrescriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPrescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid json")
			return
		}

		if _, err := govalidator.ValidateStruct(req); err != nil {
			api.Fail(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			PatientID:         req.PatientID,
			MedicationName:    req.MedicationName,
			Dosage:            req.Dosage,
			Frequency:         req.Frequency,
			DurationDays:      req.DurationDays,
			PrescribingDoctor: req.PrescribingDoctor,
			Instructions:      req.Instructions,
			RefillsRemaining:  req.RefillsRemaining,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				api.Fail(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrConflict):
				api.Fail(w, http.StatusBadRequest, "Error creating prescription: "+err.Error())
			default:
				api.Fail(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		api.OK(w, http.StatusCreated, toPrescriptionResponse(p), "Prescription created successfully")
	}
}

func listPrescriptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]prescriptionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPrescriptionResponse(p))
		}

		api.OK(w, http.StatusOK, out, "")
	}
}

func getPrescriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := prescriptionID(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				api.Fail(w, http.StatusNotFound, "Prescription not found")
				return
			}
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		api.OK(w, http.StatusOK, toPrescriptionResponse(p), "")
	}
}

func deletePrescriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := prescriptionID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				api.Fail(w, http.StatusNotFound, "Prescription not found")
				return
			}
			api.Fail(w, http.StatusInternalServerError, "internal error")
			return
		}

		api.NoContent(w)
	}
}

func prescriptionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "prescriptionID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func toPrescriptionResponse(p Prescription) prescriptionResponse {
	return prescriptionResponse{
		ID:                p.ID,
		PatientID:         p.PatientID,
		MedicationName:    p.MedicationName,
		Dosage:            p.Dosage,
		Frequency:         p.Frequency,
		DurationDays:      p.DurationDays,
		PrescribingDoctor: p.PrescribingDoctor,
		Instructions:      p.Instructions,
		IssuedDate:        p.IssuedDate,
		ExpiryDate:        p.ExpiryDate,
		RefillsRemaining:  p.RefillsRemaining,
		CreatedAt:         p.CreatedAt,
	}
}
