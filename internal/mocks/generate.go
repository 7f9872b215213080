// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the port interfaces. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mocks for the auth ports (OAuthClient, SessionStore).
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=ports_mock.go github.com/lumenlab/auth-gateway/internal/ports OAuthClient,SessionStore
