package routes

import (
	"Backend-Questionnaire/src/controllers"
	"Backend-Questionnaire/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func submissionRoutes(router fiber.Router, ctrl *controllers.SubmissionController, c *Container) {
	submissions := router.Group("/submissions", middleware.BearerCredential)

	submissions.Post("/", middleware.Idempotency(c.Redis, "submission", c.IdempotencyTTL), ctrl.CreateSubmission)
	submissions.Post("/:questionId", ctrl.GetQuestionAnswers) // answers to one question
	submissions.Get("/:id", ctrl.GetSubmission)               // operator lookup
}
