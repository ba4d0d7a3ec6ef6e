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

// SettlementServiceImpl implements ports.SettlementService.
//
// Approval is two-phase: every entry of a batch is fully validated (status,
// fresh oracle rate, tolerance, fee, reserve and pause checks) before any
// state is touched, then all request rows are settled under one database
// transaction and the ledger movements are applied. The first failing entry
// aborts the whole batch with no surviving state change.
type SettlementServiceImpl struct {
	mu *sync.Mutex

	requestRepo ports.RequestRepository
	assetRepo   ports.AssetConfigRepository
	vaultRepo   ports.VaultConfigRepository
	oracle      ports.PriceOracle
	compliance  ports.ComplianceRegistry
	ledger      ports.TokenLedger
	assetBook   ports.AssetBook
	fees        ports.FeePolicy
	roles       ports.RoleChecker
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl. The mutex must
// be shared with the vault service of the same vault.
func NewSettlementService(
	mu *sync.Mutex,
	requestRepo ports.RequestRepository,
	assetRepo ports.AssetConfigRepository,
	vaultRepo ports.VaultConfigRepository,
	oracle ports.PriceOracle,
	compliance ports.ComplianceRegistry,
	ledger ports.TokenLedger,
	assetBook ports.AssetBook,
	fees ports.FeePolicy,
	roles ports.RoleChecker,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		mu:          mu,
		requestRepo: requestRepo,
		assetRepo:   assetRepo,
		vaultRepo:   vaultRepo,
		oracle:      oracle,
		compliance:  compliance,
		ledger:      ledger,
		assetBook:   assetBook,
		fees:        fees,
		roles:       roles,
		events:      events,
		transactor:  transactor,
		log:         log,
	}
}

// settlementStep is one reversible ledger movement of an approval plan.
type settlementStep struct {
	apply func(ctx context.Context) error
	undo  func(ctx context.Context) error
}

// approvalPlan is a fully validated, not-yet-applied settlement.
type approvalPlan struct {
	request *domain.Request
	rate    domain.RateSnapshot
	fee     decimal.Decimal
	settled decimal.Decimal // minted tokens or paid-out asset amount
	steps   []settlementStep
}

// ApproveRequest settles a single pending request at a freshly read rate.
func (s *SettlementServiceImpl) ApproveRequest(ctx context.Context, caller string, entry ports.ApprovalEntry) (*domain.Request, error) {
	settled, err := s.BulkApprove(ctx, caller, []ports.ApprovalEntry{entry})
	if err != nil {
		return nil, err
	}
	return &settled[0], nil
}

// BulkApprove settles all entries or none.
func (s *SettlementServiceImpl) BulkApprove(ctx context.Context, caller string, entries []ports.ApprovalEntry) ([]domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(entries) == 0 {
		return nil, apperror.Validation("empty approval batch")
	}
	if err := s.roles.Require(ctx, caller, domain.RoleApprover); err != nil {
		return nil, err
	}

	vcfg, err := s.vaultRepo.Get(ctx)
	if err != nil || vcfg == nil {
		return nil, apperror.InternalError(fmt.Errorf("load vault config: %w", err))
	}
	if err := s.checkNotPaused(ctx); err != nil {
		return nil, err
	}

	// Phase 1: validate every entry and build its plan. Nothing is
	// mutated yet, so any failure aborts the batch for free.
	plans := make([]*approvalPlan, 0, len(entries))
	reserveNeeded := map[string]decimal.Decimal{} // per-asset payout across the batch
	seen := map[int64]bool{}
	for _, entry := range entries {
		if seen[entry.ID] {
			return nil, apperror.ErrAlreadySettled(entry.ID)
		}
		seen[entry.ID] = true

		plan, err := s.buildPlan(ctx, vcfg, entry, reserveNeeded)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	// Phase 2: settle all rows under one transaction, then apply the
	// ledger movements. A movement failure reverses the movements already
	// applied and rolls the transaction back.
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	for _, plan := range plans {
		locked, err := s.requestRepo.GetByIDForUpdate(ctx, tx, plan.request.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("lock request %d: %w", plan.request.ID, err))
		}
		if locked == nil || !locked.IsPending() {
			return nil, apperror.ErrAlreadySettled(plan.request.ID)
		}
		err = s.requestRepo.MarkSettled(ctx, tx, plan.request.ID, domain.RequestStatusApproved, plan.rate.Price, plan.fee, caller, now)
		if err != nil {
			if err == ports.ErrRequestNotPending {
				return nil, apperror.ErrAlreadySettled(plan.request.ID)
			}
			return nil, apperror.InternalError(fmt.Errorf("mark approved %d: %w", plan.request.ID, err))
		}
	}

	var applied []settlementStep
	for _, plan := range plans {
		for _, step := range plan.steps {
			if err := step.apply(ctx); err != nil {
				unwindSteps(ctx, s.log, applied)
				return nil, apperror.InternalError(fmt.Errorf("settle request %d: %w", plan.request.ID, err))
			}
			applied = append(applied, step)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		unwindSteps(ctx, s.log, applied)
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	results := make([]domain.Request, 0, len(plans))
	for _, plan := range plans {
		r := *plan.request
		r.Status = domain.RequestStatusApproved
		rate := plan.rate.Price
		fee := plan.fee
		r.AppliedRate = &rate
		r.Fee = &fee
		r.SettledBy = &caller
		r.SettledAt = &now
		results = append(results, r)

		ev := domain.NewEvent(domain.EventRequestApproved, caller)
		ev.Asset = r.Asset
		ev.RequestID = &r.ID
		ev.Amount = &r.GrossAmount
		ev.Rate = &rate
		ev.Fee = &fee
		s.events.Publish(ctx, ev)

		s.log.Info().
			Int64("request_id", r.ID).
			Str("direction", string(r.Direction)).
			Str("rate", rate.String()).
			Str("fee", fee.String()).
			Str("settled", plan.settled.String()).
			Str("approved_by", caller).
			Msg("request approved")
	}
	return results, nil
}

// buildPlan validates one entry and returns its ready-to-apply plan.
// reserveNeeded accumulates payment-asset payouts so the reserve check
// holds across the whole batch, not just entry by entry.
func (s *SettlementServiceImpl) buildPlan(ctx context.Context, vcfg *domain.VaultConfig, entry ports.ApprovalEntry, reserveNeeded map[string]decimal.Decimal) (*approvalPlan, error) {
	r, err := s.requestRepo.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load request %d: %w", entry.ID, err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("Request")
	}
	if !r.IsPending() {
		return nil, apperror.ErrAlreadySettled(entry.ID)
	}

	acfg, err := s.assetRepo.Get(ctx, r.Asset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load asset config: %w", err))
	}
	if acfg == nil || !acfg.Enabled {
		return nil, apperror.ErrAssetDisabled(r.Asset)
	}

	if err := s.checkParties(ctx, r.Requester, r.Recipient); err != nil {
		return nil, err
	}

	// Rate is read fresh at settlement, never reused from creation time.
	var rate domain.RateSnapshot
	if acfg.Stable {
		rate = domain.UnitRate(time.Now().UTC())
	} else {
		rate, err = s.oracle.LatestPrice(ctx, acfg.OracleRef)
		if err != nil {
			return nil, err
		}
	}
	if !rate.WithinTolerance(entry.ExpectedRate, vcfg.RateToleranceBps) {
		return nil, apperror.ErrRateMismatch()
	}

	quote, err := s.fees.Quote(r.EscrowedAmount, acfg, vcfg, r.Direction)
	if err != nil {
		return nil, err
	}

	plan := &approvalPlan{request: r, rate: rate, fee: quote.Fee}
	if r.Direction == domain.DirectionDeposit {
		minted := quote.Net.Mul(rate.Price).RoundDown(vcfg.TokenDecimals)
		if !minted.IsPositive() {
			return nil, apperror.ErrInvalidAmount()
		}
		plan.settled = minted
		plan.steps = s.depositSteps(vcfg, r, quote, minted)
	} else {
		payout := quote.Net.Div(rate.Price).RoundDown(acfg.Decimals)
		if !payout.IsPositive() {
			return nil, apperror.ErrInvalidAmount()
		}
		needed := reserveNeeded[r.Asset].Add(payout)
		reserve, err := s.assetBook.BalanceOf(ctx, r.Asset, vcfg.VaultAccount)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("reserve balance: %w", err))
		}
		if reserve.LessThan(needed) {
			return nil, apperror.ErrInsufficientReserve()
		}
		reserveNeeded[r.Asset] = needed
		plan.settled = payout
		plan.steps = s.redeemSteps(vcfg, r, quote, payout)
	}
	return plan, nil
}

// depositSteps releases escrowed payment asset to the receivers and mints
// to the recipient.
func (s *SettlementServiceImpl) depositSteps(vcfg *domain.VaultConfig, r *domain.Request, quote ports.FeeQuote, minted decimal.Decimal) []settlementStep {
	var steps []settlementStep
	asset, vault := r.Asset, vcfg.VaultAccount

	if vcfg.ProceedsReceiver != "" && vcfg.ProceedsReceiver != vault {
		steps = append(steps, s.assetMove(asset, vault, vcfg.ProceedsReceiver, quote.Net))
	}
	if quote.Fee.IsPositive() && vcfg.FeeReceiver != "" && vcfg.FeeReceiver != vault {
		steps = append(steps, s.assetMove(asset, vault, vcfg.FeeReceiver, quote.Fee))
	}

	recipient := r.Recipient
	steps = append(steps, settlementStep{
		apply: func(ctx context.Context) error { return s.ledger.Mint(ctx, recipient, minted) },
		undo:  func(ctx context.Context) error { return s.ledger.Burn(ctx, recipient, minted) },
	})
	return steps
}

// redeemSteps burns the escrowed tokens and pays the recipient from the
// vault reserve.
func (s *SettlementServiceImpl) redeemSteps(vcfg *domain.VaultConfig, r *domain.Request, quote ports.FeeQuote, payout decimal.Decimal) []settlementStep {
	var steps []settlementStep
	vault := vcfg.VaultAccount

	burn := quote.Net
	if quote.Fee.IsPositive() {
		if vcfg.FeeReceiver != "" {
			fee := quote.Fee
			receiver := vcfg.FeeReceiver
			steps = append(steps, settlementStep{
				apply: func(ctx context.Context) error { return s.ledger.Transfer(ctx, vault, receiver, fee) },
				undo:  func(ctx context.Context) error { return s.ledger.Transfer(ctx, receiver, vault, fee) },
			})
		} else {
			burn = r.EscrowedAmount
		}
	}
	burnAmount := burn
	steps = append(steps, settlementStep{
		apply: func(ctx context.Context) error { return s.ledger.Burn(ctx, vault, burnAmount) },
		undo:  func(ctx context.Context) error { return s.ledger.Mint(ctx, vault, burnAmount) },
	})
	steps = append(steps, s.assetMove(r.Asset, vault, r.Recipient, payout))
	return steps
}

// refundStep returns the escrow back to the requester as a reversible step.
func (s *SettlementServiceImpl) refundStep(vcfg *domain.VaultConfig, r *domain.Request) settlementStep {
	if r.Direction == domain.DirectionDeposit {
		return s.assetMove(r.Asset, vcfg.VaultAccount, r.Requester, r.EscrowedAmount)
	}
	vault, requester, amount := vcfg.VaultAccount, r.Requester, r.EscrowedAmount
	return settlementStep{
		apply: func(ctx context.Context) error { return s.ledger.Transfer(ctx, vault, requester, amount) },
		undo:  func(ctx context.Context) error { return s.ledger.Transfer(ctx, requester, vault, amount) },
	}
}

func (s *SettlementServiceImpl) assetMove(asset, from, to string, amount decimal.Decimal) settlementStep {
	return settlementStep{
		apply: func(ctx context.Context) error { return s.assetBook.Transfer(ctx, asset, from, to, amount) },
		undo:  func(ctx context.Context) error { return s.assetBook.Transfer(ctx, asset, to, from, amount) },
	}
}

// unwindSteps reverses applied steps in LIFO order after a mid-settlement
// failure.
func unwindSteps(ctx context.Context, log zerolog.Logger, applied []settlementStep) {
	for i := len(applied) - 1; i >= 0; i-- {
		if err := applied[i].undo(ctx); err != nil {
			log.Error().Err(err).Int("step", i).Msg("failed to unwind settlement step")
		}
	}
}

// RejectRequest refunds a pending request's escrow and marks it Rejected.
func (s *SettlementServiceImpl) RejectRequest(ctx context.Context, caller string, id int64, reason string) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roles.Require(ctx, caller, domain.RoleApprover); err != nil {
		return nil, err
	}

	vcfg, err := s.vaultRepo.Get(ctx)
	if err != nil || vcfg == nil {
		return nil, apperror.InternalError(fmt.Errorf("load vault config: %w", err))
	}

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

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	locked, err := s.requestRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock request: %w", err))
	}
	if locked == nil || !locked.IsPending() {
		return nil, apperror.ErrAlreadySettled(id)
	}

	now := time.Now().UTC()
	if err := s.requestRepo.MarkSettled(ctx, tx, id, domain.RequestStatusRejected, decimal.Zero, decimal.Zero, caller, now); err != nil {
		if err == ports.ErrRequestNotPending {
			return nil, apperror.ErrAlreadySettled(id)
		}
		return nil, apperror.InternalError(fmt.Errorf("mark rejected: %w", err))
	}

	// Full refund of the escrow to the requester.
	refund := s.refundStep(vcfg, r)
	if err := refund.apply(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("refund escrow: %w", err))
	}

	// A failed commit leaves the row PENDING, so the refund is reversed to
	// keep a retry from paying it twice.
	if err := tx.Commit(ctx); err != nil {
		unwindSteps(ctx, s.log, []settlementStep{refund})
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	r.Status = domain.RequestStatusRejected
	r.SettledBy = &caller
	r.SettledAt = &now

	ev := domain.NewEvent(domain.EventRequestRejected, caller)
	ev.Asset = r.Asset
	ev.RequestID = &id
	ev.Amount = &r.EscrowedAmount
	ev.Detail = reason
	s.events.Publish(ctx, ev)

	s.log.Info().
		Int64("request_id", id).
		Str("rejected_by", caller).
		Str("reason", reason).
		Msg("request rejected")

	return r, nil
}

func (s *SettlementServiceImpl) checkNotPaused(ctx context.Context) error {
	paused, err := s.ledger.Paused(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("ledger paused check: %w", err))
	}
	if paused {
		return apperror.ErrVaultPaused()
	}
	return nil
}

func (s *SettlementServiceImpl) checkParties(ctx context.Context, accounts ...string) error {
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
