package routes

import (
	"errors"
	"log"
	"time"

	"Backend-Questionnaire/src/controllers"
	"Backend-Questionnaire/src/services/questionnaires"
	"Backend-Questionnaire/src/services/submissions"
	"Backend-Questionnaire/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Container holds what the route groups need. Redis may be nil.
type Container struct {
	Questionnaires *questionnaires.Service
	Submissions    *submissions.Service
	Redis          *redis.Client
	IdempotencyTTL time.Duration
}

// NewApp builds the fiber app with the shared middleware stack and every route.
func NewApp(c *Container, allowedOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
		ExposeHeaders: "X-Total-Count, X-Request-ID, Content-Disposition",
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	InitRoutes(app, c)
	return app
}

func InitRoutes(app *fiber.App, c *Container) {
	questionnaireRoutes(app,
		controllers.NewQuestionnaireController(c.Questionnaires),
		controllers.NewSubmissionController(c.Submissions),
	)
	submissionRoutes(app, controllers.NewSubmissionController(c.Submissions), c)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

// errorHandler keeps fiber's own errors (bad routes, body limits, panics) in
// the same envelope as the controllers.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.HandleError(c, fe.Code, fe.Message)
	}
	log.Printf("❌ [http] request=%v %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), err)
	return utils.HandleError(c, fiber.StatusInternalServerError, "internal server error")
}
