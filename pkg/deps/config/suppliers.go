package config

import (
	"context"
	"strings"

	"cosmossdk.io/depinject"
	gogogrpc "github.com/cosmos/gogoproto/grpc"

	"github.com/althea-net/deep-space/pkg/client/query"
	"github.com/althea-net/deep-space/pkg/client/tx"
)

// SupplierFn is a function that is used to supply a depinject config.
type SupplierFn func(
	context.Context,
	depinject.Config,
) (depinject.Config, error)

// SupplyConfig supplies a depinject config by calling each of the supplied
// supplier functions in order and passing the result of each supplier to the
// next supplier, chaining them together.
func SupplyConfig(
	ctx context.Context,
	suppliers []SupplierFn,
) (deps depinject.Config, err error) {
	// Initialize deps with an empty depinject config.
	deps = depinject.Configs()
	for _, supplyFn := range suppliers {
		deps, err = supplyFn(ctx, deps)
		if err != nil {
			return nil, err
		}
	}
	return deps, nil
}

// NewSupplyGRPCConnFn returns a function which dials the given gRPC endpoint
// and returns a new depinject.Config which is supplied with the given deps
// and the new connection. Endpoints on port 443 are dialed with transport
// security; any other endpoint is dialed insecurely.
func NewSupplyGRPCConnFn(grpcEndpoint string) SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
	) (depinject.Config, error) {
		insecureConn := !strings.Contains(grpcEndpoint, ":443")
		conn, err := query.NewGRPCConn(grpcEndpoint, insecureConn)
		if err != nil {
			return nil, err
		}

		// Supply the connection as the gogoproto ClientConn interface type
		// which the query clients and tx context inject.
		return depinject.Configs(deps, depinject.Supply(gogogrpc.ClientConn(conn))), nil
	}
}

// NewSupplyAccountQuerierFn returns a function which constructs an
// AccountQueryClient instance and returns a new depinject.Config which is
// supplied with the given deps and the new AccountQueryClient.
func NewSupplyAccountQuerierFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
	) (depinject.Config, error) {
		// Requires a gRPC connection to be supplied to the deps.
		accountQuerier, err := query.NewAccountQuerier(deps)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(accountQuerier)), nil
	}
}

// NewSupplyBankQuerierFn returns a function which constructs a
// BankQueryClient instance and returns a new depinject.Config which is
// supplied with the given deps and the new BankQueryClient.
func NewSupplyBankQuerierFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
	) (depinject.Config, error) {
		// Requires a gRPC connection to be supplied to the deps.
		bankQuerier, err := query.NewBankQuerier(deps)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(bankQuerier)), nil
	}
}

// NewSupplyNodeStatusQuerierFn returns a function which constructs a
// NodeStatusClient instance and returns a new depinject.Config which is
// supplied with the given deps and the new NodeStatusClient.
func NewSupplyNodeStatusQuerierFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
	) (depinject.Config, error) {
		// Requires a gRPC connection to be supplied to the deps.
		statusQuerier, err := query.NewNodeStatusQuerier(deps)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(statusQuerier)), nil
	}
}

// NewSupplyTxContextFn returns a function which constructs a TxContext
// instance and returns a new depinject.Config which is supplied with the
// given deps and the new TxContext.
func NewSupplyTxContextFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
	) (depinject.Config, error) {
		// Requires a gRPC connection to be supplied to the deps.
		txContext, err := tx.NewTxContext(deps)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(txContext)), nil
	}
}

// NewSupplyAccountSequenceClientFn returns a function which constructs an
// AccountSequenceClient instance and returns a new depinject.Config which is
// supplied with the given deps and the new AccountSequenceClient.
func NewSupplyAccountSequenceClientFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
	) (depinject.Config, error) {
		// Requires an AccountQueryClient to be supplied to the deps.
		sequenceClient, err := tx.NewAccountSequenceClient(deps)
		if err != nil {
			return nil, err
		}

		return depinject.Configs(deps, depinject.Supply(sequenceClient)), nil
	}
}
