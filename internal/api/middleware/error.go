package middleware

import (
	"github.com/emicklei/go-restful/v3"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
