package sqlconfig

type TransactionType int16

const (
	TransactionTypeDeposit TransactionType = iota + 1
	TransactionTypeWithdraw
)
