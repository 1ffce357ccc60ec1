package ledger

import (
	"context"
	"fmt"
	"strings"

	"meme-market/internal/caption"
	"meme-market/internal/marketerrors"
	model "meme-market/internal/models"
	"meme-market/utils"
)

// DefaultPrice is the listing price of a meme submitted without one.
const DefaultPrice = 100

// MemeDraft is the user input for a new meme
type MemeDraft struct {
	Title     string
	ImageURL  string
	Tags      []string
	OwnerID   string
	OwnerName string
	Price     int
}

// SubmitMeme captions, stores and caches a new meme
func (l *Ledger) SubmitMeme(ctx context.Context, draft MemeDraft) (model.Meme, error) {
	title := strings.TrimSpace(draft.Title)
	imageURL := strings.TrimSpace(draft.ImageURL)
	if title == "" {
		return model.Meme{}, fmt.Errorf("ledger: %w - empty title", marketerrors.ErrInvalidMeme)
	}
	if imageURL == "" {
		return model.Meme{}, fmt.Errorf("ledger: %w - empty image url", marketerrors.ErrInvalidMeme)
	}

	price := draft.Price
	if price <= 0 {
		price = DefaultPrice
	}
	tags := NormalizeTags(draft.Tags)

	res := l.caption(ctx, tags)

	meme := model.Meme{
		MemeID:       utils.GenerateSortableID(),
		Title:        title,
		ImageURL:     imageURL,
		Tags:         tags,
		OwnerID:      draft.OwnerID,
		OwnerName:    draft.OwnerName,
		Price:        price,
		CreatedAt:    l.now(),
		AICaption:    res.Caption,
		VibeAnalysis: res.Vibe,
		Version:      1,
	}

	if err := l.repo.InsertMeme(ctx, meme); err != nil {
		return model.Meme{}, fmt.Errorf("ledger: failed to store meme %q: %w", title, err)
	}

	l.prepend(meme)
	l.observer.MemeSubmitted()
	utils.Info("meme submitted", map[string]any{
		"meme_id": meme.MemeID,
		"owner":   meme.OwnerID,
		"tags":    tags,
	})
	return meme, nil
}

// caption never fails; a captioner error falls back to the tag table
func (l *Ledger) caption(ctx context.Context, tags []string) caption.Result {
	if l.captioner == nil {
		return caption.Lookup(tags)
	}
	res, err := l.captioner.Caption(ctx, tags)
	if err != nil {
		utils.Warn("captioning failed, using tag table", map[string]any{"error": err.Error()})
		return caption.Lookup(tags)
	}
	return res
}

// NormalizeTags trims and lower-cases tags, dropping empties and later duplicates.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
