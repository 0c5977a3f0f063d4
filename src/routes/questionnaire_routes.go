package routes

import (
	"Backend-Questionnaire/src/controllers"
	"Backend-Questionnaire/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func questionnaireRoutes(router fiber.Router, q *controllers.QuestionnaireController, s *controllers.SubmissionController) {
	questionnaires := router.Group("/questionnaires", middleware.BearerCredential)

	questionnaires.Get("/", q.ListQuestionnaires)
	questionnaires.Post("/", q.CreateQuestionnaire)
	questionnaires.Get("/:id", q.GetQuestionnaire)
	questionnaires.Put("/:id", q.UpdateQuestionnaire)
	questionnaires.Delete("/:id", q.DeleteQuestionnaire)
	questionnaires.Post("/:id/verify", q.VerifyPassword)

	questionnaires.Get("/:id/submissions", s.GetSubmissions)
	questionnaires.Get("/:id/submissions/export", s.ExportSubmissions)
	questionnaires.Post("/:id/questions/:questionId/answers", s.GetQuestionAnswersInQuestionnaire)
}
