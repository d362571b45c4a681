package service

import "errors"

// Sentinel errors surfaced to controllers, which map them to HTTP statuses.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive or blocked")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrInvalidOtp         = errors.New("invalid OTP")
	ErrOtpExpired         = errors.New("OTP has expired")
	ErrInvalidToken       = errors.New("invalid token")

	ErrProjectNotFound  = errors.New("project not found")
	ErrTitleNotFound    = errors.New("title not found")
	ErrGroupNotFound    = errors.New("question group not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionNotFound   = errors.New("option not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrForbidden = errors.New("access denied")

	ErrInvalidAnswerPayload = errors.New("invalid answer payload")
	ErrInvalidOptionIDs     = errors.New("invalid option ids provided")
	ErrInvalidQuestionIDs   = errors.New("invalid question ids provided")
	ErrNoExistingAnswers    = errors.New("no existing answers to regenerate")
	ErrOptionsNotAllowed    = errors.New("options can only be added to radio, select, or checkbox questions")
	ErrLastOption           = errors.New("cannot delete the last option of a radio/select/checkbox question")
)
