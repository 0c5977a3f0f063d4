package controllers

import (
	"fmt"

	"Backend-Questionnaire/src/middleware"
	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/services/submissions"
	"Backend-Questionnaire/src/utils"

	"github.com/gofiber/fiber/v2"
)

type SubmissionController struct {
	service *submissions.Service
}

func NewSubmissionController(service *submissions.Service) *SubmissionController {
	return &SubmissionController{service: service}
}

// CreateSubmission godoc
// @Summary      Submit answers
// @Description  Stores one respondent's answers. Send Idempotency-Key to have a retry rejected with 409.
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header  string                          false  "Client generated key"
// @Param        body             body    models.CreateSubmissionRequest  true   "Answers"
// @Success      201  {object}  models.CreateSubmissionResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /submissions [post]
func (ctl *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	var request models.CreateSubmissionRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	sub, err := ctl.service.Create(c.UserContext(), &request)
	if err != nil {
		return utils.HandleAppError(c, "create submission", err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.CreateSubmissionResponse{
		Success: true,
		ID:      sub.ID.Hex(),
		Message: "Submission saved successfully",
	})
}

// GetSubmissions godoc
// @Summary      List a questionnaire's submissions
// @Description  Requires the admin password or a token from /verify as bearer
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Questionnaire ID"
// @Success      200  {array}   models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/submissions [get]
func (ctl *SubmissionController) GetSubmissions(c *fiber.Ctx) error {
	subs, err := ctl.service.ListForQuestionnaire(c.UserContext(), c.Params("id"), middleware.Credential(c))
	if err != nil {
		return utils.HandleAppError(c, "list submissions", err)
	}
	return c.JSON(subs)
}

// ExportSubmissions godoc
// @Summary      Export submissions as CSV
// @Description  One row per submission, one column per question. Same credentials as the listing.
// @Tags         submissions
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id   path  string  true  "Questionnaire ID"
// @Success      200  {file}    file
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/submissions/export [get]
func (ctl *SubmissionController) ExportSubmissions(c *fiber.Ctx) error {
	filename, data, err := ctl.service.Export(c.UserContext(), c.Params("id"), middleware.Credential(c))
	if err != nil {
		return utils.HandleAppError(c, "export submissions", err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// GetQuestionAnswers godoc
// @Summary      Answers to one question
// @Description  Requires the question's own view password in the body
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        questionId  path  string                        true  "Question ID"
// @Param        body        body  models.VerifyPasswordRequest  true  "View password"
// @Success      200  {object}  models.QuestionAnswers
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{questionId} [post]
func (ctl *SubmissionController) GetQuestionAnswers(c *fiber.Ctx) error {
	var request models.VerifyPasswordRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	res, err := ctl.service.ListForQuestion(c.UserContext(), c.Params("questionId"), request.Password)
	if err != nil {
		return utils.HandleAppError(c, "list question answers", err)
	}
	return c.JSON(res)
}

// GetQuestionAnswersInQuestionnaire godoc
// @Summary      Answers to one question of a known questionnaire
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id          path  string                        true  "Questionnaire ID"
// @Param        questionId  path  string                        true  "Question ID"
// @Param        body        body  models.VerifyPasswordRequest  true  "View password"
// @Success      200  {object}  models.QuestionAnswers
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/questions/{questionId}/answers [post]
func (ctl *SubmissionController) GetQuestionAnswersInQuestionnaire(c *fiber.Ctx) error {
	var request models.VerifyPasswordRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	res, err := ctl.service.ListForQuestionInQuestionnaire(c.UserContext(), c.Params("id"), c.Params("questionId"), request.Password)
	if err != nil {
		return utils.HandleAppError(c, "list question answers", err)
	}
	return c.JSON(res)
}

// GetSubmission godoc
// @Summary      Get one submission
// @Description  Operator lookup by id. Works after the questionnaire is deleted.
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func (ctl *SubmissionController) GetSubmission(c *fiber.Ctx) error {
	sub, err := ctl.service.Get(c.UserContext(), c.Params("id"), middleware.Credential(c))
	if err != nil {
		return utils.HandleAppError(c, "get submission", err)
	}
	return c.JSON(sub)
}
