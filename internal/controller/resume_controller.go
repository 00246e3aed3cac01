package controller

import (
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/pkg/resume"

	"github.com/gofiber/fiber/v2"
)

// resume text ceiling, generous enough for multi-page resumes
const maxResumeChars = 50000

type IResumeController interface {
	RegisterRoutes(r fiber.Router)
	ParseResume(ctx *fiber.Ctx) error
}

type resumeController struct {
	parser *resume.Parser
}

func NewResumeController(parser *resume.Parser) IResumeController {
	return &resumeController{parser: parser}
}

func (c *resumeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/resume", serverutils.JwtMiddleware)
	h.Post("/parse", c.ParseResume)
}

func (c *resumeController) ParseResume(ctx *fiber.Ctx) error {
	var req dto.ParseResumeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	if len(req.Text) > maxResumeChars {
		return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(serverutils.ErrorResponse(413, "Resume text too large"))
	}

	parsed, err := c.parser.Parse(ctx.Context(), req.Text)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Resume parsed", parsed))
}
