package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"yt-describe/errors"
	"yt-describe/services/job"
)

type JobHandler struct {
	service job.Service
	logger  *logrus.Logger
}

func NewJobHandler(service job.Service) *JobHandler {
	return &JobHandler{
		service: service,
		logger:  logrus.StandardLogger(),
	}
}

type processRequest struct {
	URL     string `json:"url"`
	Channel string `json:"channel"`
}

// Process handles POST /process
func (h *JobHandler) Process(c *fiber.Ctx) error {
	const op = "JobHandler.Process"

	var req processRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidInput(op, err, "Invalid JSON body")
	}

	record, err := h.service.Process(c.UserContext(), req.URL, req.Channel)
	if err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"session_id": record.ID,
		"channel":    record.Channel,
	}).Info("Processing started")

	return c.JSON(fiber.Map{"session_id": record.ID})
}

// Progress handles GET /progress/:session_id
func (h *JobHandler) Progress(c *fiber.Ctx) error {
	record, err := h.service.Get(c.UserContext(), c.Params("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// Download handles GET /download/:session_id/:file_type
func (h *JobHandler) Download(c *fiber.Ctx) error {
	path, err := h.service.FilePath(c.UserContext(), c.Params("session_id"), c.Params("file_type"))
	if err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"session_id": c.Params("session_id"),
		"file_type":  c.Params("file_type"),
	}).Info("Serving artifact")

	return c.Download(path)
}

// HealthCheck handles GET /health
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
