package ledger

import (
	"context"
	"fmt"

	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
	"meme-market/utils"
)

// Funds is the spending authority behind a bid
type Funds interface {
	Balance() int
	Debit(amount int) error
	Credit(amount int)
}

// BidResult is the outcome of an accepted bid
type BidResult struct {
	Meme        model.Meme `json:"meme"`
	Bid         model.Bid  `json:"bid"`
	Transferred bool       `json:"transferred"`
}

// PlaceBid validates a bid, debits the bidder, updates the meme and records the bid.
// A bid of at least twice the price buys the meme outright. The meme update is
// conditioned on the cached version, so a bid against an out-of-date price fails
// with ErrStaleMeme, is refunded and leaves nothing in the bid log.
func (l *Ledger) PlaceBid(ctx context.Context, memeID, bidderID, bidderName string, amount int, funds Funds) (BidResult, error) {
	res, err := l.placeBid(ctx, memeID, bidderID, bidderName, amount, funds)
	switch {
	case err != nil:
		l.observer.BidRecorded(OutcomeRejected)
	case res.Transferred:
		l.observer.BidRecorded(OutcomeInstantBuy)
	default:
		l.observer.BidRecorded(OutcomePlaced)
	}
	return res, err
}

func (l *Ledger) placeBid(ctx context.Context, memeID, bidderID, bidderName string, amount int, funds Funds) (BidResult, error) {
	if amount <= 0 {
		return BidResult{}, fmt.Errorf("ledger: %w - non-positive amount %d", marketerrors.ErrInvalidBid, amount)
	}
	if funds == nil || bidderID == "" {
		return BidResult{}, fmt.Errorf("ledger: %w - bidding requires a session", marketerrors.ErrNotAuthenticated)
	}

	meme, err := l.MemeByID(memeID)
	if err != nil {
		return BidResult{}, err
	}
	if amount <= meme.Price {
		return BidResult{}, fmt.Errorf("ledger: %w - minimum bid is %d", marketerrors.ErrBidTooLow, meme.Price+1)
	}
	if amount > funds.Balance() {
		return BidResult{}, fmt.Errorf("ledger: %w - bid %d exceeds balance", marketerrors.ErrInsufficientCredits, amount)
	}

	if err := funds.Debit(amount); err != nil {
		return BidResult{}, fmt.Errorf("ledger: failed to debit bid: %w", err)
	}

	transferred := amount >= meme.Price*2
	ownerID, ownerName := meme.OwnerID, meme.OwnerName
	if transferred {
		ownerID, ownerName = bidderID, bidderName
	}
	updated, err := l.repo.UpdateOwnership(ctx, memeID, meme.Version, ownerID, ownerName, amount)
	if err != nil {
		funds.Credit(amount)
		utils.Warn("meme update failed, bid refunded", map[string]any{
			"meme_id": memeID,
			"version": meme.Version,
			"error":   err.Error(),
		})
		l.reload(ctx, memeID)
		return BidResult{}, fmt.Errorf("ledger: failed to update meme %s for bid: %w", memeID, err)
	}
	l.replace(updated)

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		MemeID:    memeID,
		UserID:    bidderID,
		UserName:  bidderName,
		Amount:    amount,
		CreatedAt: l.now(),
	}
	if err := l.repo.InsertBid(ctx, bid); err != nil {
		funds.Credit(amount)
		l.revert(ctx, updated, meme)
		return BidResult{}, fmt.Errorf("ledger: failed to record bid on meme %s: %w", memeID, err)
	}

	if transferred {
		utils.Info("meme bought outright", map[string]any{
			"meme_id":   memeID,
			"new_owner": bidderID,
			"price":     amount,
		})
	}
	return BidResult{Meme: updated, Bid: bid, Transferred: transferred}, nil
}

// revert puts owner and price back after the bid behind updated could not be recorded.
// A newer write wins over the revert.
func (l *Ledger) revert(ctx context.Context, updated, previous model.Meme) {
	restored, err := l.repo.UpdateOwnership(ctx, updated.MemeID, updated.Version,
		previous.OwnerID, previous.OwnerName, previous.Price)
	if err != nil {
		utils.Error("failed to revert meme after unrecorded bid", map[string]any{
			"meme_id": updated.MemeID,
			"version": updated.Version,
			"error":   err.Error(),
		})
		l.reload(ctx, updated.MemeID)
		return
	}
	l.replace(restored)
}

// reload replaces the cached copy of one meme with the stored row
func (l *Ledger) reload(ctx context.Context, memeID string) {
	meme, err := l.repo.GetMeme(ctx, memeID)
	if err != nil {
		utils.Warn("failed to reload meme", map[string]any{"meme_id": memeID, "error": err.Error()})
		return
	}
	l.replace(meme)
}
