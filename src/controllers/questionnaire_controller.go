package controllers

import (
	"strconv"

	"Backend-Questionnaire/src/middleware"
	"Backend-Questionnaire/src/models"
	"Backend-Questionnaire/src/services/questionnaires"
	"Backend-Questionnaire/src/utils"

	"github.com/gofiber/fiber/v2"
)

type QuestionnaireController struct {
	service *questionnaires.Service
}

func NewQuestionnaireController(service *questionnaires.Service) *QuestionnaireController {
	return &QuestionnaireController{service: service}
}

// ListQuestionnaires godoc
// @Summary      List questionnaires
// @Description  Summaries of every questionnaire, newest first. Requires the operator secret.
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size, 0 for all"
// @Success      200  {array}   models.QuestionnaireSummary
// @Header       200  {integer} X-Total-Count "Total questionnaires"
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires [get]
func (ctl *QuestionnaireController) ListQuestionnaires(c *fiber.Ctx) error {
	var page models.PaginationParams
	if err := c.QueryParser(&page); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	items, total, err := ctl.service.List(c.UserContext(), middleware.Credential(c), page)
	if err != nil {
		return utils.HandleAppError(c, "list questionnaires", err)
	}
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	return c.JSON(items)
}

// CreateQuestionnaire godoc
// @Summary      Create a questionnaire
// @Description  Stores the questionnaire and returns its admin password once
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        body body models.QuestionnaireInput true "Questionnaire"
// @Success      201  {object}  models.CreateQuestionnaireResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /questionnaires [post]
func (ctl *QuestionnaireController) CreateQuestionnaire(c *fiber.Ctx) error {
	var request models.QuestionnaireInput
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	created, err := ctl.service.Create(c.UserContext(), &request)
	if err != nil {
		return utils.HandleAppError(c, "create questionnaire", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetQuestionnaire godoc
// @Summary      Get a questionnaire
// @Description  Public view of a questionnaire, without password material
// @Tags         questionnaires
// @Produce      json
// @Param        id   path  string  true  "Questionnaire ID"
// @Success      200  {object}  models.Questionnaire
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [get]
func (ctl *QuestionnaireController) GetQuestionnaire(c *fiber.Ctx) error {
	q, err := ctl.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleAppError(c, "get questionnaire", err)
	}
	return c.JSON(q)
}

// UpdateQuestionnaire godoc
// @Summary      Replace a questionnaire
// @Description  Full replace. Requires the admin password as bearer.
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "Questionnaire ID"
// @Param        body  body  models.QuestionnaireInput  true  "Questionnaire"
// @Success      200  {object}  models.Questionnaire
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [put]
func (ctl *QuestionnaireController) UpdateQuestionnaire(c *fiber.Ctx) error {
	var request models.QuestionnaireInput
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	updated, err := ctl.service.Update(c.UserContext(), c.Params("id"), middleware.Credential(c), &request)
	if err != nil {
		return utils.HandleAppError(c, "update questionnaire", err)
	}
	return c.JSON(updated)
}

// DeleteQuestionnaire godoc
// @Summary      Delete a questionnaire
// @Description  Removes the questionnaire. Its submissions are kept. Requires the admin password as bearer.
// @Tags         questionnaires
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Questionnaire ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id} [delete]
func (ctl *QuestionnaireController) DeleteQuestionnaire(c *fiber.Ctx) error {
	if err := ctl.service.Delete(c.UserContext(), c.Params("id"), middleware.Credential(c)); err != nil {
		return utils.HandleAppError(c, "delete questionnaire", err)
	}
	return c.JSON(models.MessageResponse{Success: true, Message: "Questionnaire deleted successfully"})
}

// VerifyPassword godoc
// @Summary      Verify the admin password
// @Description  Checks the admin password and returns a token scoped to this questionnaire's submissions
// @Tags         questionnaires
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Questionnaire ID"
// @Param        body  body  models.VerifyPasswordRequest  true  "Password"
// @Success      200  {object}  models.VerifyPasswordResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /questionnaires/{id}/verify [post]
func (ctl *QuestionnaireController) VerifyPassword(c *fiber.Ctx) error {
	var request models.VerifyPasswordRequest
	if err := c.BodyParser(&request); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	res, err := ctl.service.Verify(c.UserContext(), c.Params("id"), request.Password)
	if err != nil {
		return utils.HandleAppError(c, "verify password", err)
	}
	return c.JSON(res)
}
