package main

import (
	_ "Backend-Questionnaire/docs"
	"Backend-Questionnaire/src/config"
	"Backend-Questionnaire/src/database"
	"Backend-Questionnaire/src/jobs"
	"Backend-Questionnaire/src/repository"
	"Backend-Questionnaire/src/routes"
	"Backend-Questionnaire/src/seeder"
	"Backend-Questionnaire/src/services/access"
	"Backend-Questionnaire/src/services/questionnaires"
	"Backend-Questionnaire/src/services/submissions"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title           Questionnaire API
// @version         1.0
// @description     Questionnaires, password-gated results and anonymous submissions.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	mongo, err := database.NewMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Error configuring the database: %v", err)
	}

	ctx := context.Background()
	if err := repository.EnsureIndexes(ctx, mongo); err != nil {
		// the handle reconnects on the next request
		log.Println("⚠️ Could not ensure indexes:", err)
	}

	questionnaireRepo := repository.NewQuestionnaireRepo(mongo)
	submissionRepo := repository.NewSubmissionRepo(mongo)

	rdb := database.NewRedis(ctx, cfg.RedisURI)
	asynqClient := database.NewAsynqClient(rdb != nil, cfg.RedisURI)

	var auditor questionnaires.OrphanAuditor
	if asynqClient != nil {
		defer asynqClient.Close()
		auditor = jobs.NewEnqueuer(asynqClient)

		worker, err := jobs.StartWorker(cfg.RedisURI, jobs.NewServeMux(questionnaireRepo, submissionRepo))
		if err != nil {
			log.Println("⚠️ Asynq worker not started:", err)
		} else {
			defer worker.Shutdown()
		}
	}

	gate := access.NewGate(cfg.OperatorSecret, []byte(cfg.JWTSecret), cfg.AccessTokenTTL)
	questionnaireService := questionnaires.NewService(questionnaireRepo, gate, auditor)
	submissionService := submissions.NewService(questionnaireRepo, submissionRepo, gate)

	if cfg.SeedOnStart {
		if _, err := seeder.SeedSampleQuestionnaire(ctx, questionnaireRepo, questionnaireService); err != nil {
			log.Println("⚠️ Seeding failed:", err)
		}
	}

	app := routes.NewApp(&routes.Container{
		Questionnaires: questionnaireService,
		Submissions:    submissionService,
		Redis:          rdb,
		IdempotencyTTL: cfg.IdempotencyTTL,
	}, cfg.AllowedOrigins)

	go func() {
		log.Println("Server is running on port " + cfg.AppPort)
		if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppPort))); err != nil {
			log.Println("❌ Server stopped:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Println("⚠️ Shutdown:", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
