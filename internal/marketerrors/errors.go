package marketerrors

import "errors"

// Lookup errors
var (
	ErrMemeNotFound = errors.New("meme not found")
)

// Validation errors. None of these are returned after state has been mutated.
var (
	ErrInvalidMeme         = errors.New("invalid meme")
	ErrInvalidBid          = errors.New("invalid bid")
	ErrBidTooLow           = errors.New("bid too low")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidIdentity     = errors.New("invalid identity")
	ErrNotEnoughMemes      = errors.New("not enough memes")
)

// Session errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Store errors
var (
	ErrRemoteFailure = errors.New("remote store failure")
	ErrStaleMeme     = errors.New("meme was modified concurrently")
)
