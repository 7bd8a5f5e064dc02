// Package ethtransport implements abimarshal.Transport on top of go-ethereum's
// ABI packer and bound contracts.
//
// The transport never dials a node: callers pass an already-connected backend
// such as *ethclient.Client.
package ethtransport

import (
	"context"

	abimarshal "github.com/branched-services/go-abimarshal"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// Option configures a Transport.
type Option func(*Transport)

// WithTransactor enables Send using the given transactor and signing options.
// From and Context are overridden per call.
func WithTransactor(transactor bind.ContractTransactor, opts *bind.TransactOpts) Option {
	return func(t *Transport) {
		t.transactor = transactor
		t.transactOpts = opts
	}
}

// WithLogger sets the logger. Default is log.Root().
func WithLogger(logger log.Logger) Option {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Transport performs calls against a single deployed contract.
type Transport struct {
	address      common.Address
	abi          abi.ABI
	transactor   bind.ContractTransactor
	transactOpts *bind.TransactOpts
	logger       log.Logger
	bound        *bind.BoundContract
}

var _ abimarshal.Transport = (*Transport)(nil)

// New creates a Transport for the contract at address.
func New(address common.Address, contractABI abi.ABI, caller bind.ContractCaller, opts ...Option) *Transport {
	t := &Transport{
		address: address,
		abi:     contractABI,
		logger:  log.Root(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.bound = bind.NewBoundContract(address, contractABI, caller, t.transactor, nil)
	return t
}

// Address returns the contract address.
func (t *Transport) Address() common.Address {
	return t.address
}

// ABI returns the contract ABI.
func (t *Transport) ABI() abi.ABI {
	return t.abi
}

// Query packs args, performs an eth_call as from and converts the unpacked
// outputs to tokens.
func (t *Transport) Query(ctx context.Context, method string, from common.Address, args []abimarshal.Token) ([]abimarshal.Token, error) {
	m, params, err := t.prepare(method, args)
	if err != nil {
		return nil, err
	}

	var out []any
	opts := &bind.CallOpts{Context: ctx, From: from}
	if err := t.bound.Call(opts, &out, method, params...); err != nil {
		t.logger.Debug("Contract query failed", "contract", t.address, "method", method, "err", err)
		return nil, err
	}
	return FromABIResults(method, m.Outputs, out)
}

// Send packs args and submits a transaction signed by the configured
// transact options. A zero from keeps the options' From.
func (t *Transport) Send(ctx context.Context, method string, from common.Address, args []abimarshal.Token) (common.Hash, error) {
	if t.transactor == nil || t.transactOpts == nil {
		return common.Hash{}, ErrNoTransactor
	}
	_, params, err := t.prepare(method, args)
	if err != nil {
		return common.Hash{}, err
	}

	opts := *t.transactOpts
	opts.Context = ctx
	if from != (common.Address{}) {
		opts.From = from
	}

	tx, err := t.bound.Transact(&opts, method, params...)
	if err != nil {
		return common.Hash{}, err
	}
	t.logger.Debug("Submitted contract transaction", "contract", t.address, "method", method, "tx", tx.Hash())
	return tx.Hash(), nil
}

func (t *Transport) prepare(method string, args []abimarshal.Token) (abi.Method, []any, error) {
	m, ok := t.abi.Methods[method]
	if !ok {
		return abi.Method{}, nil, &MethodNotFoundError{Contract: t.address, Method: method}
	}
	params, err := ToABIArgs(method, m.Inputs, args)
	if err != nil {
		return abi.Method{}, nil, err
	}
	return m, params, nil
}
