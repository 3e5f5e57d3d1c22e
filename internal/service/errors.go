package service

import "errors"

var (
	// ErrConversationNotFound is returned when the conversation id does not
	// match a live session (never created, expired, or restarted server).
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrInvalidSelection rejects an option id that is not offered by the
	// current node. Conversation state is left untouched.
	ErrInvalidSelection = errors.New("selected option is not available at this point")

	// ErrReplyPending rejects a selection made while the bot's delayed reply
	// for the previous selection has not landed yet.
	ErrReplyPending = errors.New("a bot reply is still pending")

	// ErrEmptyCart gates checkout entry and submission.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidStep is returned when a checkout operation is attempted from
	// the wrong step or with no checkout in progress.
	ErrInvalidStep = errors.New("checkout is not at the required step")

	// ErrRemoteUnavailable surfaces an upstream failure that the caller chose
	// not to mask.
	ErrRemoteUnavailable = errors.New("upstream service unavailable")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrProductNotFound    = errors.New("product not found")

	// ErrInvalidProduct rejects cart additions whose product record has no
	// usable id or a negative price.
	ErrInvalidProduct = errors.New("product has no usable id or price")
)
