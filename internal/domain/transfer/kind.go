package domain_transfer

type Kind string

const (
	KindDeposit          Kind = "deposit"
	KindWithdrawal       Kind = "withdrawal"
	KindInternalTransfer Kind = "internal_transfer"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindInternalTransfer:
		return true
	}

	return false
}

func (k Kind) String() string { return string(k) }
