package response

import (
	"context"
	"net/http"

	"SellerAgent/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

type Response struct {
	StatusCode int    `json:"status_code"`
	StatusMsg  string `json:"status_msg"`
}

func NewResponse(statusCode int, statusMsg string) Response {
	return Response{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
	}
}

// ErrorHandler maps coded errors to a 400 envelope and everything else to a 500.
func ErrorHandler(_ context.Context, err error) (int, any) {
	if codeErr, ok := err.(*errors.CodeMsg); ok {
		return http.StatusBadRequest, NewResponse(codeErr.Code, codeErr.Msg)
	}
	return http.StatusInternalServerError, NewResponse(errno.InternalError, "internal error")
}
