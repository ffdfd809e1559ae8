package domain

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict")
	ErrRoomNotFound  = errors.New("room not found")
	ErrUserNotInRoom = errors.New("user not in room")
	ErrStorage       = errors.New("storage failure")
)
