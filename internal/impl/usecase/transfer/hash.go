package impl_transfer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
	"github.com/shopspring/decimal"
)

// HashCreateTransferInput fingerprints a request so resubmissions can be
// spotted in logs. Transfers are never deduplicated on it.
func HashCreateTransferInput(in port_transfer.CreateTransferInput) string {
	amount := strings.TrimSpace(in.Amount)
	if d, err := decimal.NewFromString(amount); err == nil {
		amount = d.StringFixed(domain_transfer.AmountScale)
	}

	payload := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s",
		strings.TrimSpace(string(in.Kind)),
		amount,
		strings.TrimSpace(in.Info),
		normalizeID(in.SourceAccountID),
		normalizeID(in.DestinationAccountID),
		normalizeID(in.SourceBankID),
		normalizeID(in.DestinationBankID),
	)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func normalizeID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
