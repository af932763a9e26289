package handler

import (
	"context"
	"errors"
	"log"

	"medequip-backend/internal/model"
	"medequip-backend/internal/prediction"
	"medequip-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// Predictor is what the handler needs from the remote-model client. It is an
// interface so tests can swap in a fake without an HTTP server.
type Predictor interface {
	Predict(ctx context.Context, batch []model.ModelInput) ([]prediction.Raw, map[string]interface{}, error)
}

type PredictionHandler struct {
	records   repository.ServiceRecordRepository
	predictor Predictor
}

func NewPredictionHandler(records repository.ServiceRecordRepository, predictor Predictor) *PredictionHandler {
	return &PredictionHandler{records: records, predictor: predictor}
}

// Predict runs the whole pipeline for one batch: validate, fetch service
// records, normalize, call the model, reconcile. Any failure fails the whole
// batch; partial predictions are never returned.
func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	var req struct {
		Devices []model.DeviceDescriptor `json:"devices"`
	}

	// 1. Validate before touching the store or the model.
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "devices must be an array of device descriptors"})
	}
	if req.Devices == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "devices is required"})
	}

	// Caller disconnect cancels the store read and the in-flight model call.
	ctx := c.UserContext()

	// 2. Full service-record read; matching happens in the normalizer.
	records, err := h.records.GetAll(ctx)
	if err != nil {
		return h.fail(c, err)
	}

	// 3. One model input per device, in request order.
	inputs := prediction.Normalize(req.Devices, records)

	// 4. One remote call for the whole batch.
	raw, metadata, err := h.predictor.Predict(ctx, inputs)
	if err != nil {
		return h.fail(c, err)
	}

	// 5. Reattach device identity positionally.
	results, err := prediction.Reconcile(raw, req.Devices)
	if err != nil {
		return h.fail(c, err)
	}

	resp := fiber.Map{}
	for k, v := range metadata {
		resp[k] = v
	}
	resp["data"] = results
	return c.JSON(resp)
}

// fail logs the full error and maps it to a response category. Nothing is
// swallowed; everything downstream of validation becomes a 500 with details.
func (h *PredictionHandler) fail(c *fiber.Ctx, err error) error {
	log.Printf("prediction pipeline failed: %v", err)

	category := "InternalError"
	switch {
	case errors.Is(err, repository.ErrStoreUnavailable):
		category = "StoreUnavailable"
	case errors.Is(err, prediction.ErrModelUnavailable):
		category = "ModelUnavailable"
	case errors.Is(err, prediction.ErrModelResponseMalformed):
		category = "ModelResponseMalformed"
	case errors.Is(err, prediction.ErrPredictionCountMismatch):
		category = "PredictionCountMismatch"
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   category,
		"details": err.Error(),
	})
}
