package domain

// CoinRecord is an immutable snapshot of an on-chain coin as reported by the
// wallet backend. Transaction ids are present only while the matching height
// is still unconfirmed, the empty string means absent.
type CoinRecord struct {
	CoinId              string
	Amount              uint64
	CreatedHeight       *uint32
	CreateTransactionId string
	SpentHeight         *uint32
	SpendTransactionId  string
	OfferId             string
}

// CoinLifecycleState is the derived lifecycle state of a coin, it is never
// stored.
type CoinLifecycleState int

const (
	CoinStatePendingCreate CoinLifecycleState = iota
	CoinStateConfirmed
	CoinStatePendingSpend
	CoinStateSpent
	CoinStateOffered
)

func (s CoinLifecycleState) String() string {
	switch s {
	case CoinStatePendingCreate:
		return "pending_create"
	case CoinStateConfirmed:
		return "confirmed"
	case CoinStatePendingSpend:
		return "pending_spend"
	case CoinStateSpent:
		return "spent"
	case CoinStateOffered:
		return "offered"
	default:
		return "unknown"
	}
}

// SortAxis selects which of the two independent coin orderings to use.
type SortAxis int

const (
	SortAxisConfirmation SortAxis = iota
	SortAxisSpend
)

// The weight offsets encode a deliberate total order: coins that are still
// in flight must outrank every confirmed height regardless of magnitude,
// with offered coins ranked above merely pending spends on the spend axis.
// Changing these constants changes the user-visible ordering.
const (
	pendingCreateBonus = int64(2_000_000_000)
	pendingSpendBonus  = int64(1_000_000_000)
	spendPendingOffset = int64(10_000_000)
	offeredOffset      = int64(20_000_000)
)

// IsSpendPending returns whether a spend has been broadcast for the coin but
// not confirmed yet.
func (c CoinRecord) IsSpendPending() bool {
	return c.SpendTransactionId != "" && c.SpentHeight == nil
}

// IsUnspent returns whether the coin is free to be selected: it has no spend
// transaction, no confirmed spend and is not locked up in an offer.
func (c CoinRecord) IsUnspent() bool {
	return c.SpendTransactionId == "" && c.SpentHeight == nil && c.OfferId == ""
}

// State derives the lifecycle state of the coin. A confirmed spend wins over
// everything, then the enclosing offer, then a pending spend, then a pending
// creation.
func (c CoinRecord) State() CoinLifecycleState {
	switch {
	case c.SpentHeight != nil:
		return CoinStateSpent
	case c.OfferId != "":
		return CoinStateOffered
	case c.IsSpendPending():
		return CoinStatePendingSpend
	case c.CreatedHeight == nil && c.CreateTransactionId != "":
		return CoinStatePendingCreate
	default:
		return CoinStateConfirmed
	}
}

// ConfirmationWeight returns the coin's ordering weight on the confirmation
// axis. A coin with a pending spend ranks between pending creations and
// ordinary confirmed heights.
func (c CoinRecord) ConfirmationWeight() int64 {
	weight := int64(0)
	if c.CreatedHeight != nil {
		weight = int64(*c.CreatedHeight)
	}

	if c.IsSpendPending() {
		return weight + pendingSpendBonus
	}
	if c.CreateTransactionId != "" {
		return weight + pendingCreateBonus
	}
	return weight
}

// SpendWeight returns the coin's ordering weight on the spend axis. An
// offered coin always outranks a merely pending-spend coin.
func (c CoinRecord) SpendWeight() int64 {
	weight := int64(0)
	if c.SpentHeight != nil {
		weight = int64(*c.SpentHeight)
	}
	if c.SpendTransactionId != "" {
		weight += spendPendingOffset
	}
	if c.OfferId != "" {
		weight += offeredOffset
	}
	return weight
}

// CompareCoins is a total-order comparator over coin records for the given
// axis. Ties are left to the caller's stable sort, the comparator defines no
// further tiebreak.
func CompareCoins(a, b CoinRecord, axis SortAxis) int {
	var wa, wb int64
	if axis == SortAxisSpend {
		wa, wb = a.SpendWeight(), b.SpendWeight()
	} else {
		wa, wb = a.ConfirmationWeight(), b.ConfirmationWeight()
	}

	if wa < wb {
		return -1
	}
	if wa > wb {
		return 1
	}
	return 0
}
