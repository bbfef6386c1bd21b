package adapter

import "errors"

var (
	ErrSendingMail    = errors.New("error sending mail")
	ErrEmptyRecipient = errors.New("mail recipient is empty")
)
