package util

import "errors"

var (
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다")
	ErrEmailRegistered    = errors.New("이미 가입된 이메일입니다")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrWorkbookNotFound   = errors.New("workbook not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrSolveNotFound      = errors.New("solve not found")
	ErrNotGroupMember     = errors.New("not a member of this group")
	ErrInviteCodeInvalid  = errors.New("초대 코드가 올바르지 않습니다")
	ErrAlreadyGroupMember = errors.New("이미 가입된 반입니다")
	ErrUnknownKind        = errors.New("unknown problem kind")
	ErrEmptySheet         = errors.New("빈 시트입니다")
)
