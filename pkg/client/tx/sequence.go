package tx

import (
	"context"
	"sync"

	"cosmossdk.io/depinject"

	"github.com/althea-net/deep-space/pkg/client"
)

var _ client.AccountSequenceClient = (*accSequenceClient)(nil)

// accSequenceClient tracks the next unused sequence number of each signing
// account this client instance submits for. Sequence numbers are allocated
// locally between on-chain queries so that concurrent submitters on the same
// account receive consecutive values without racing each other to the node.
type accSequenceClient struct {
	// accountQuerier is used to seed and resynchronize sequence state from
	// on-chain account records.
	accountQuerier client.AccountQueryClient

	// entriesMu guards the entries map only. Allocation within an entry is
	// serialized by the entry's own mutex so that distinct accounts never
	// contend with each other.
	entriesMu sync.Mutex
	entries   map[sequenceKey]*sequenceEntry
}

// sequenceKey identifies the sequence state of one account on one chain.
type sequenceKey struct {
	address string
	chainID string
}

// sequenceEntry holds the tracked sequence state of a single account.
type sequenceEntry struct {
	mu            sync.Mutex
	seeded        bool
	accountNumber uint64
	nextSequence  uint64
}

// NewAccountSequenceClient constructs a new accSequenceClient with the given
// dependencies and returns it as a client.AccountSequenceClient interface type.
// Its state is local to the constructed instance: two clients tracking the
// same account do not observe each other's allocations.
//
// Required dependencies:
//   - client.AccountQueryClient
func NewAccountSequenceClient(deps depinject.Config) (client.AccountSequenceClient, error) {
	asc := &accSequenceClient{
		entries: make(map[sequenceKey]*sequenceEntry),
	}

	if err := depinject.Inject(
		deps,
		&asc.accountQuerier,
	); err != nil {
		return nil, err
	}

	return asc, nil
}

// NextSequence returns the account number and the next unused sequence number
// of the given account, advancing the tracked state so that no two callers
// ever receive the same value. The first call per account seeds the state from
// the chain; subsequent calls allocate locally without touching the network.
func (asc *accSequenceClient) NextSequence(
	ctx context.Context,
	address string,
	chainID string,
) (client.AccountSequence, error) {
	entry := asc.entry(address, chainID)

	entry.mu.Lock()
	if entry.seeded {
		defer entry.mu.Unlock()
		return entry.allocate(), nil
	}
	entry.mu.Unlock()

	// Seed from on-chain state with no locks held over the network round trip.
	account, err := asc.accountQuerier.GetAccountFresh(ctx, address)
	if err != nil {
		return client.AccountSequence{}, ErrSequenceUnknownAccount.Wrapf("address: %s [%s]", address, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Another caller may have seeded the entry while the query was in flight.
	// Their state already reflects allocations, so it takes precedence.
	if !entry.seeded {
		entry.seeded = true
		entry.accountNumber = account.GetAccountNumber()
		entry.nextSequence = account.GetSequence()
	}

	return entry.allocate(), nil
}

// Resync discards the tracked sequence state of the given account and replaces
// it with fresh on-chain values. It returns the refreshed state without
// consuming a sequence number; callers allocate via NextSequence afterwards.
func (asc *accSequenceClient) Resync(
	ctx context.Context,
	address string,
	chainID string,
) (client.AccountSequence, error) {
	entry := asc.entry(address, chainID)

	account, err := asc.accountQuerier.GetAccountFresh(ctx, address)
	if err != nil {
		return client.AccountSequence{}, ErrSequenceUnknownAccount.Wrapf("address: %s [%s]", address, err)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.seeded = true
	entry.accountNumber = account.GetAccountNumber()
	entry.nextSequence = account.GetSequence()

	return client.AccountSequence{
		AccountNumber: entry.accountNumber,
		Sequence:      entry.nextSequence,
	}, nil
}

// entry returns the sequence entry of the given account, creating it if the
// account has not been seen before.
func (asc *accSequenceClient) entry(address, chainID string) *sequenceEntry {
	asc.entriesMu.Lock()
	defer asc.entriesMu.Unlock()

	key := sequenceKey{address: address, chainID: chainID}
	entry, ok := asc.entries[key]
	if !ok {
		entry = &sequenceEntry{}
		asc.entries[key] = entry
	}

	return entry
}

// allocate hands out the next unused sequence number and advances the counter.
// The caller must hold the entry's mutex.
func (e *sequenceEntry) allocate() client.AccountSequence {
	allocated := client.AccountSequence{
		AccountNumber: e.accountNumber,
		Sequence:      e.nextSequence,
	}
	e.nextSequence++

	return allocated
}
