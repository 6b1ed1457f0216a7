// Command sagemaker-train submits an Amazon SageMaker training job from a
// CI step and supervises it to completion.
//
// Exit codes: 0 on success, 1 on validation, submission, or remote failure,
// 2 when the wait budget ran out before the job reached a terminal state.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mlops-actions/sagemaker-training-action/internal/adapters/ghactions"
	"github.com/mlops-actions/sagemaker-training-action/internal/adapters/sagemakerapi"
	"github.com/mlops-actions/sagemaker-training-action/internal/bootstrap"
	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
	"github.com/mlops-actions/sagemaker-training-action/internal/service"
	"github.com/mlops-actions/sagemaker-training-action/internal/validate"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return model.ExitFailure
	}
	logger := bootstrap.InitLogger(cfg.GitHub.Debug)

	sink := ghactions.New(cfg.GitHub)
	sink.Mask(cfg.AWS.SecretAccessKey)
	sink.Mask(cfg.AWS.SessionToken)

	evaluator := service.NewQueryEvaluator()
	spec, warnings, err := validate.Inputs(cfg.Inputs, cfg.Poller, evaluator)
	for _, w := range warnings {
		sink.Warning("%s", w)
	}
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			for _, v := range ve.Violations {
				sink.Error("%s", v)
			}
		}
		logger.Error("input validation failed", "error", err)
		return model.ExitCodeForError(err)
	}

	client, err := bootstrap.NewTrainingClient(ctx, cfg.AWS)
	if err != nil {
		logger.Error("AWS client setup failed", "error", err)
		sink.Error("AWS client setup failed: %v", err)
		return model.ExitFailure
	}

	orchestrator, err := service.New(service.Options{
		API:         sagemakerapi.New(client),
		Sink:        sink,
		Queries:     evaluator,
		Logger:      logger,
		RetryBudget: cfg.Poller.RetryBudget,
		RetryDelay:  cfg.Poller.RetryDelay,
	})
	if err != nil {
		logger.Error("orchestrator setup failed", "error", err)
		return model.ExitFailure
	}

	outcome, runErr := orchestrator.Run(ctx, spec)
	if outcome == nil {
		// The run ended before a job existed; nothing annotated it yet.
		sink.Error("%v", runErr)
		return model.ExitCodeForError(runErr)
	}
	return outcome.ExitCode()
}
