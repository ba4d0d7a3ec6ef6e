package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"token-vault/internal/core/domain"
	"token-vault/internal/core/ports"
	"token-vault/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// VaultServiceImpl implements ports.VaultService.
//
// All public operations take the shared vault lock, so no two operations
// against the same vault interleave: every operation is observed as
// fully-applied-or-not-applied-at-all. Local state (window reservations,
// request rows) is committed before external ledger transfers, which keeps
// a re-entering callee from observing a half-finished operation.
type VaultServiceImpl struct {
	mu *sync.Mutex

	requestRepo ports.RequestRepository
	assetRepo   ports.AssetConfigRepository
	vaultRepo   ports.VaultConfigRepository
	oracle      ports.PriceOracle
	compliance  ports.ComplianceRegistry
	ledger      ports.TokenLedger
	assetBook   ports.AssetBook
	window      ports.VolumeWindow
	fees        ports.FeePolicy
	roles       ports.RoleChecker
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl. The mutex must be shared
// with the settlement service of the same vault.
func NewVaultService(
	mu *sync.Mutex,
	requestRepo ports.RequestRepository,
	assetRepo ports.AssetConfigRepository,
	vaultRepo ports.VaultConfigRepository,
	oracle ports.PriceOracle,
	compliance ports.ComplianceRegistry,
	ledger ports.TokenLedger,
	assetBook ports.AssetBook,
	window ports.VolumeWindow,
	fees ports.FeePolicy,
	roles ports.RoleChecker,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *VaultServiceImpl {
	return &VaultServiceImpl{
		mu:          mu,
		requestRepo: requestRepo,
		assetRepo:   assetRepo,
		vaultRepo:   vaultRepo,
		oracle:      oracle,
		compliance:  compliance,
		ledger:      ledger,
		assetBook:   assetBook,
		window:      window,
		fees:        fees,
		roles:       roles,
		events:      events,
		transactor:  transactor,
		log:         log,
	}
}

// loadConfigs fetches the vault config and the (enabled) asset config.
func (s *VaultServiceImpl) loadConfigs(ctx context.Context, asset string) (*domain.VaultConfig, *domain.PaymentAssetConfig, error) {
	vcfg, err := s.vaultRepo.Get(ctx)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("load vault config: %w", err))
	}
	if vcfg == nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("vault config not seeded"))
	}
	acfg, err := s.assetRepo.Get(ctx, asset)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("load asset config: %w", err))
	}
	if acfg == nil || !acfg.Enabled {
		return nil, nil, apperror.ErrAssetDisabled(asset)
	}
	return vcfg, acfg, nil
}

// checkNotPaused fails with VaultPaused when the token ledger is paused.
func (s *VaultServiceImpl) checkNotPaused(ctx context.Context) error {
	paused, err := s.ledger.Paused(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("ledger paused check: %w", err))
	}
	if paused {
		return apperror.ErrVaultPaused()
	}
	return nil
}

// checkParties runs the compliance gate against each account. Checks are
// always fresh; a listing change between calls is honored immediately.
func (s *VaultServiceImpl) checkParties(ctx context.Context, accounts ...string) error {
	for _, account := range accounts {
		blocked, err := s.compliance.IsBlocked(ctx, account)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("compliance check %s: %w", account, err))
		}
		if blocked {
			return apperror.ErrPartyBlocked(account)
		}
	}
	return nil
}

// rateFor reads a fresh settlement rate. Stable assets settle at 1.
func (s *VaultServiceImpl) rateFor(ctx context.Context, acfg *domain.PaymentAssetConfig) (domain.RateSnapshot, error) {
	if acfg.Stable {
		return domain.UnitRate(time.Now().UTC()), nil
	}
	return s.oracle.LatestPrice(ctx, acfg.OracleRef)
}

// reserveWindow commits gross against the direction's instant ceiling.
// A zero ceiling disables the check entirely.
func (s *VaultServiceImpl) reserveWindow(ctx context.Context, vcfg *domain.VaultConfig, direction domain.Direction, gross decimal.Decimal) (func(), error) {
	ceiling := vcfg.CeilingFor(direction)
	if !ceiling.IsPositive() {
		return func() {}, nil
	}
	ok, err := s.window.Reserve(ctx, direction, gross, ceiling, vcfg.WindowLength)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("volume window reserve: %w", err))
	}
	if !ok {
		return nil, apperror.ErrDailyLimitExceeded()
	}
	release := func() {
		if rerr := s.window.Release(ctx, direction, gross, vcfg.WindowLength); rerr != nil {
			s.log.Warn().Err(rerr).Str("direction", string(direction)).Msg("failed to release window reservation")
		}
	}
	return release, nil
}

// DepositInstant settles a synchronous deposit: payment asset in, tokens
// minted to the recipient at the fresh oracle rate.
func (s *VaultServiceImpl) DepositInstant(ctx context.Context, req ports.FlowRequest) (*ports.InstantResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vcfg, acfg, err := s.loadConfigs(ctx, req.Asset)
	if err != nil {
		return nil, err
	}
	if err := s.checkNotPaused(ctx); err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, req.Caller, req.Recipient); err != nil {
		return nil, err
	}

	quote, err := s.fees.Quote(req.Gross, acfg, vcfg, domain.DirectionDeposit)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateFor(ctx, acfg)
	if err != nil {
		return nil, err
	}
	minted := quote.Net.Mul(rate.Price).RoundDown(vcfg.TokenDecimals)
	if !minted.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	release, err := s.reserveWindow(ctx, vcfg, domain.DirectionDeposit, req.Gross)
	if err != nil {
		return nil, err
	}

	// The caller must cover gross (net + fee), not just net: checking up
	// front keeps a short balance from failing halfway through settlement.
	balance, err := s.assetBook.BalanceOf(ctx, req.Asset, req.Caller)
	if err != nil {
		release()
		return nil, apperror.InternalError(fmt.Errorf("asset balance: %w", err))
	}
	if balance.LessThan(req.Gross) {
		release()
		return nil, apperror.ErrInsufficientBalance()
	}

	if err := s.settleInstantDeposit(ctx, vcfg, req, quote, minted); err != nil {
		release()
		return nil, apperror.InternalError(fmt.Errorf("settle instant deposit: %w", err))
	}

	s.publishInstant(ctx, domain.EventInstantDeposit, req, rate, quote.Fee)
	s.log.Info().
		Str("caller", req.Caller).
		Str("asset", req.Asset).
		Str("gross", req.Gross.String()).
		Str("fee", quote.Fee.String()).
		Str("minted", minted.String()).
		Str("rate", rate.Price.String()).
		Msg("instant deposit settled")

	return &ports.InstantResult{
		Direction: domain.DirectionDeposit,
		Gross:     req.Gross,
		Fee:       quote.Fee,
		Settled:   minted,
		Rate:      rate,
	}, nil
}

// settleInstantDeposit runs the deposit movements as reversible steps: a
// failure partway through reverses whatever was already applied, so the
// caller never loses funds to a half-finished settlement.
func (s *VaultServiceImpl) settleInstantDeposit(ctx context.Context, vcfg *domain.VaultConfig, req ports.FlowRequest, quote ports.FeeQuote, minted decimal.Decimal) error {
	steps := []settlementStep{s.assetStep(req.Asset, req.Caller, vcfg.ProceedsReceiver, quote.Net)}
	if quote.Fee.IsPositive() {
		feeReceiver := vcfg.FeeReceiver
		if feeReceiver == "" {
			feeReceiver = vcfg.ProceedsReceiver
		}
		steps = append(steps, s.assetStep(req.Asset, req.Caller, feeReceiver, quote.Fee))
	}
	recipient := req.Recipient
	steps = append(steps, settlementStep{
		apply: func(ctx context.Context) error { return s.ledger.Mint(ctx, recipient, minted) },
		undo:  func(ctx context.Context) error { return s.ledger.Burn(ctx, recipient, minted) },
	})
	return s.applySteps(ctx, steps)
}

func (s *VaultServiceImpl) assetStep(asset, from, to string, amount decimal.Decimal) settlementStep {
	return settlementStep{
		apply: func(ctx context.Context) error { return s.assetBook.Transfer(ctx, asset, from, to, amount) },
		undo:  func(ctx context.Context) error { return s.assetBook.Transfer(ctx, asset, to, from, amount) },
	}
}

// applySteps applies steps in order, reversing the applied prefix on the
// first failure.
func (s *VaultServiceImpl) applySteps(ctx context.Context, steps []settlementStep) error {
	var applied []settlementStep
	for _, step := range steps {
		if err := step.apply(ctx); err != nil {
			unwindSteps(ctx, s.log, applied)
			return err
		}
		applied = append(applied, step)
	}
	return nil
}

// RedeemInstant settles a synchronous redemption: tokens burned from the
// caller, payment asset paid to the recipient from the vault reserve.
func (s *VaultServiceImpl) RedeemInstant(ctx context.Context, req ports.FlowRequest) (*ports.InstantResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vcfg, acfg, err := s.loadConfigs(ctx, req.Asset)
	if err != nil {
		return nil, err
	}
	if err := s.checkNotPaused(ctx); err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, req.Caller, req.Recipient); err != nil {
		return nil, err
	}

	quote, err := s.fees.Quote(req.Gross, acfg, vcfg, domain.DirectionRedeem)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateFor(ctx, acfg)
	if err != nil {
		return nil, err
	}
	payout := quote.Net.Div(rate.Price).RoundDown(acfg.Decimals)
	if !payout.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	reserve, err := s.assetBook.BalanceOf(ctx, req.Asset, vcfg.VaultAccount)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve balance: %w", err))
	}
	if reserve.LessThan(payout) {
		return nil, apperror.ErrInsufficientReserve()
	}

	balance, err := s.ledger.BalanceOf(ctx, req.Caller)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("token balance: %w", err))
	}
	if balance.LessThan(req.Gross) {
		return nil, apperror.ErrInsufficientBalance()
	}

	release, err := s.reserveWindow(ctx, vcfg, domain.DirectionRedeem, req.Gross)
	if err != nil {
		return nil, err
	}

	if err := s.settleInstantRedeem(ctx, vcfg, req, quote, payout); err != nil {
		release()
		return nil, apperror.InternalError(fmt.Errorf("settle instant redeem: %w", err))
	}

	s.publishInstant(ctx, domain.EventInstantRedeem, req, rate, quote.Fee)
	s.log.Info().
		Str("caller", req.Caller).
		Str("asset", req.Asset).
		Str("gross", req.Gross.String()).
		Str("fee", quote.Fee.String()).
		Str("payout", payout.String()).
		Str("rate", rate.Price.String()).
		Msg("instant redemption settled")

	return &ports.InstantResult{
		Direction: domain.DirectionRedeem,
		Gross:     req.Gross,
		Fee:       quote.Fee,
		Settled:   payout,
		Rate:      rate,
	}, nil
}

func (s *VaultServiceImpl) settleInstantRedeem(ctx context.Context, vcfg *domain.VaultConfig, req ports.FlowRequest, quote ports.FeeQuote, payout decimal.Decimal) error {
	var steps []settlementStep
	caller := req.Caller

	burn := quote.Net
	if quote.Fee.IsPositive() {
		if vcfg.FeeReceiver != "" {
			fee := quote.Fee
			receiver := vcfg.FeeReceiver
			steps = append(steps, settlementStep{
				apply: func(ctx context.Context) error { return s.ledger.Transfer(ctx, caller, receiver, fee) },
				undo:  func(ctx context.Context) error { return s.ledger.Transfer(ctx, receiver, caller, fee) },
			})
		} else {
			// No fee receiver configured: the fee portion is burned too.
			burn = req.Gross
		}
	}
	burnAmount := burn
	steps = append(steps, settlementStep{
		apply: func(ctx context.Context) error { return s.ledger.Burn(ctx, caller, burnAmount) },
		undo:  func(ctx context.Context) error { return s.ledger.Mint(ctx, caller, burnAmount) },
	})
	steps = append(steps, s.assetStep(req.Asset, vcfg.VaultAccount, req.Recipient, payout))
	return s.applySteps(ctx, steps)
}

// DepositRequest escrows a payment-asset amount and creates a pending
// request. No oracle read and no daily-ceiling accounting happen here:
// requests are priced at approval and are exempt from the instant ceiling.
func (s *VaultServiceImpl) DepositRequest(ctx context.Context, req ports.FlowRequest) (*domain.Request, error) {
	return s.createRequest(ctx, domain.DirectionDeposit, req)
}

// RedeemRequest escrows tokens and creates a pending request.
func (s *VaultServiceImpl) RedeemRequest(ctx context.Context, req ports.FlowRequest) (*domain.Request, error) {
	return s.createRequest(ctx, domain.DirectionRedeem, req)
}

func (s *VaultServiceImpl) createRequest(ctx context.Context, direction domain.Direction, req ports.FlowRequest) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vcfg, _, err := s.loadConfigs(ctx, req.Asset)
	if err != nil {
		return nil, err
	}
	if err := s.checkNotPaused(ctx); err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, req.Caller, req.Recipient); err != nil {
		return nil, err
	}
	if !req.Gross.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Gross.LessThan(vcfg.MinAmount) {
		return nil, apperror.ErrBelowMinimum()
	}

	record := &domain.Request{
		Direction:      direction,
		Requester:      req.Caller,
		Recipient:      req.Recipient,
		Asset:          req.Asset,
		GrossAmount:    req.Gross,
		EscrowedAmount: req.Gross,
		Status:         domain.RequestStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	id, err := s.requestRepo.Create(ctx, record)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create request: %w", err))
	}
	record.ID = id

	// Escrow after the row exists: a failed escrow leaves a request that
	// was never funded, which the settlement side rejects, while the
	// reverse order could take funds without a record.
	if err := s.escrow(ctx, vcfg, record); err != nil {
		if _, cerr := s.settleCancel(ctx, record.ID, req.Caller, false); cerr != nil {
			s.log.Error().Err(cerr).Int64("request_id", record.ID).Msg("failed to void unfunded request")
		}
		return nil, err
	}

	ev := domain.NewEvent(domain.EventRequestCreated, req.Caller)
	ev.Asset = req.Asset
	ev.RequestID = &record.ID
	ev.Amount = &record.GrossAmount
	ev.Detail = string(direction)
	s.events.Publish(ctx, ev)

	s.log.Info().
		Int64("request_id", record.ID).
		Str("direction", string(direction)).
		Str("requester", req.Caller).
		Str("asset", req.Asset).
		Str("gross", req.Gross.String()).
		Msg("request created")

	return record, nil
}

func (s *VaultServiceImpl) escrow(ctx context.Context, vcfg *domain.VaultConfig, r *domain.Request) error {
	if r.Direction == domain.DirectionDeposit {
		return s.assetBook.Transfer(ctx, r.Asset, r.Requester, vcfg.VaultAccount, r.EscrowedAmount)
	}
	return s.ledger.Transfer(ctx, r.Requester, vcfg.VaultAccount, r.EscrowedAmount)
}

// CancelRequest refunds a pending request's escrow and marks it Rejected.
// Only the original requester or an account holding the operator role may
// cancel.
func (s *VaultServiceImpl) CancelRequest(ctx context.Context, caller string, id int64) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load request: %w", err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("Request")
	}
	if !r.IsPending() {
		return nil, apperror.ErrAlreadySettled(id)
	}
	if caller != r.Requester {
		if err := s.roles.Require(ctx, caller, domain.RoleOperator); err != nil {
			return nil, apperror.ErrNotRequester()
		}
	}

	return s.settleCancel(ctx, id, caller, true)
}

// settleCancel transitions a pending request to Rejected, refunding the
// escrow when refund is true (a request voided before its escrow landed
// has nothing to give back).
func (s *VaultServiceImpl) settleCancel(ctx context.Context, id int64, caller string, refund bool) (*domain.Request, error) {
	vcfg, err := s.vaultRepo.Get(ctx)
	if err != nil || vcfg == nil {
		return nil, apperror.InternalError(fmt.Errorf("load vault config: %w", err))
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	r, err := s.requestRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock request: %w", err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("Request")
	}
	if !r.IsPending() {
		return nil, apperror.ErrAlreadySettled(id)
	}

	now := time.Now().UTC()
	if err := s.requestRepo.MarkSettled(ctx, tx, id, domain.RequestStatusRejected, decimal.Zero, decimal.Zero, caller, now); err != nil {
		if err == ports.ErrRequestNotPending {
			return nil, apperror.ErrAlreadySettled(id)
		}
		return nil, apperror.InternalError(fmt.Errorf("mark rejected: %w", err))
	}

	var applied []settlementStep
	if refund {
		step := s.refundStep(vcfg, r)
		if err := step.apply(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("refund escrow: %w", err))
		}
		applied = append(applied, step)
	}

	// The row stays PENDING when the commit fails, so the refund must be
	// taken back or a retry would pay it out twice.
	if err := tx.Commit(ctx); err != nil {
		unwindSteps(ctx, s.log, applied)
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	r.Status = domain.RequestStatusRejected
	r.SettledBy = &caller
	r.SettledAt = &now

	ev := domain.NewEvent(domain.EventRequestCancelled, caller)
	ev.Asset = r.Asset
	ev.RequestID = &id
	ev.Amount = &r.EscrowedAmount
	s.events.Publish(ctx, ev)

	s.log.Info().
		Int64("request_id", id).
		Str("cancelled_by", caller).
		Msg("request cancelled")

	return r, nil
}

// refundStep returns the escrow back to the requester as a reversible step.
func (s *VaultServiceImpl) refundStep(vcfg *domain.VaultConfig, r *domain.Request) settlementStep {
	if r.Direction == domain.DirectionDeposit {
		return s.assetStep(r.Asset, vcfg.VaultAccount, r.Requester, r.EscrowedAmount)
	}
	vault, requester, amount := vcfg.VaultAccount, r.Requester, r.EscrowedAmount
	return settlementStep{
		apply: func(ctx context.Context) error { return s.ledger.Transfer(ctx, vault, requester, amount) },
		undo:  func(ctx context.Context) error { return s.ledger.Transfer(ctx, requester, vault, amount) },
	}
}

// GetRequest fetches one request by id.
func (s *VaultServiceImpl) GetRequest(ctx context.Context, id int64) (*domain.Request, error) {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load request: %w", err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("Request")
	}
	return r, nil
}

// ListRequests fetches requests with filtering and pagination.
func (s *VaultServiceImpl) ListRequests(ctx context.Context, params ports.RequestListParams) ([]domain.Request, int64, error) {
	list, total, err := s.requestRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list requests: %w", err))
	}
	return list, total, nil
}

func (s *VaultServiceImpl) publishInstant(ctx context.Context, kind domain.EventKind, req ports.FlowRequest, rate domain.RateSnapshot, fee decimal.Decimal) {
	ev := domain.NewEvent(kind, req.Caller)
	ev.Asset = req.Asset
	ev.Amount = &req.Gross
	ev.Rate = &rate.Price
	ev.Fee = &fee
	s.events.Publish(ctx, ev)
}
