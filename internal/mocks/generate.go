// Package mocks provides mock implementations for testing the training
// action.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the core boundary interfaces. To regenerate mocks after interface
// changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	api := mocks.NewMockTrainingJobAPI(ctrl)
//	api.EXPECT().DescribeTrainingJob(gomock.Any(), "job").Return(status, nil)
package mocks

// Generate mock for TrainingJobAPI interface from internal/core package.
// This creates MockTrainingJobAPI with methods for all TrainingJobAPI
// interface methods: CreateTrainingJob, DescribeTrainingJob
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=training_job_api_mock.go github.com/mlops-actions/sagemaker-training-action/internal/core TrainingJobAPI
