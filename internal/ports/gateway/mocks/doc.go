// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_persistence.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence BankRepository,AccountRepository,TransferRepository,UnitOfWork
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform Clock,IDGenerator
//go:generate mockgen -destination=mock_locking.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/locking AccountLocker
