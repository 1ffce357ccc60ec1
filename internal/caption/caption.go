// Package caption derives an AI-style caption and a "vibe" label for a meme from its tags.
package caption

//go:generate mockgen -source=caption.go -destination=mock_caption.go -package=caption

import (
	"context"
	"time"
)

// DefaultDelay mimics the latency of an external inference call.
const DefaultDelay = 1500 * time.Millisecond

// Result is a generated caption and vibe label
type Result struct {
	Caption string `json:"caption"`
	Vibe    string `json:"vibe"`
}

// Captioner turns a meme's tags into a caption and vibe
type Captioner interface {
	Caption(ctx context.Context, tags []string) (Result, error)
}

type entry struct {
	caption string
	vibe    string
}

var table = map[string]entry{
	"doge":      {"Such cyber, very neon, wow matrix", "Ironic Nostalgia"},
	"cat":       {"I haz hacked the mainframe", "Digital Feline Chaos"},
	"stonks":    {"When your crypto goes up 0.001% but the transaction fee is 99%", "Dystopian Market Energy"},
	"crypto":    {"HODL the neural network", "Blockchain Fever Dream"},
	"matrix":    {"There is no spoon, only memes", "Reality Glitch Aesthetic"},
	"glitch":    {"Have you tried turning the universe off and on again?", "Error Core Vibe"},
	"neon":      {"Glowing in the digital wasteland", "Electric Dreams"},
	"cyberpunk": {"Living on the edge of the net, one pixel at a time", "Night City Rebel"},
}

// Fallback is the result used when no tag is in the table.
func Fallback() Result {
	return Result{
		Caption: "When you exist in cyberspace but nobody upvotes",
		Vibe:    "Digital Void Energy",
	}
}

// Lookup returns the table entry of the first tag that has one, in tag order.
func Lookup(tags []string) Result {
	for _, tag := range tags {
		if e, ok := table[tag]; ok {
			return Result{Caption: e.caption, Vibe: e.vibe}
		}
	}
	return Fallback()
}

// TableCaptioner answers from the fixed tag table after a simulated delay.
type TableCaptioner struct {
	Delay time.Duration
}

// NewTableCaptioner creates a TableCaptioner. A negative delay is treated as zero.
func NewTableCaptioner(delay time.Duration) *TableCaptioner {
	if delay < 0 {
		delay = 0
	}
	return &TableCaptioner{Delay: delay}
}

// Caption waits for the configured delay, then looks up the tags.
func (c *TableCaptioner) Caption(ctx context.Context, tags []string) (Result, error) {
	if c.Delay > 0 {
		timer := time.NewTimer(c.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}
	return Lookup(tags), nil
}
