package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid    = errors.New("参数错误")
	ErrMovieNotFound   = errors.New("电影不存在")
	ErrReviewNotFound  = errors.New("影评不存在")
	ErrCommentNotFound = errors.New("评论不存在")
	ErrActionDuplicate = errors.New("重复操作")
	ErrNotOwner        = errors.New("无权操作")
	UnExpectedError    = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:    BadRequest,
	ErrMovieNotFound:   NotFound,
	ErrReviewNotFound:  NotFound,
	ErrCommentNotFound: NotFound,
	ErrActionDuplicate: BadRequest,
	ErrNotOwner:        Unauthorized,
	UnExpectedError:    InternalServerError,
}

// isDuplicateError MySQL 1062 唯一键冲突
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
