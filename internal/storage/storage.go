package storage

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEventNotOnSale   = errors.New("event is not on sale")
	ErrNoAvailableSeats = errors.New("no available seats")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotPending  = errors.New("order is not pending")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrArtistNotFound   = errors.New("artist not found")
	ErrContentNotFound  = errors.New("content not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrSessionNotFound  = errors.New("checkout session not found")
	ErrSessionLocked    = errors.New("checkout session is busy")
	ErrRefundRequired   = errors.New("payment arrived after the seats were released, order needs a refund")
)
