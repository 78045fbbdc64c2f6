// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The coffee-shop Authors

package http

import (
	"errors"
	"net/http"

	"github.com/quyetcv1/coffee-shop/internal/auth"
	"github.com/quyetcv1/coffee-shop/internal/utils"
)

// errorResponse is the JSON body of every rejected request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps err to a status code and writes it as [errorResponse].
// Errors other than [*auth.Error] become 500 without exposing details.
func writeError(w http.ResponseWriter, err error) error {
	resp := errorResponse{
		Error:   http.StatusInternalServerError,
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}

	var authErr *auth.Error
	if errors.As(err, &authErr) {
		resp.Error = authErr.StatusCode
		resp.Code = authErr.Code
		resp.Message = authErr.Description
	}

	return utils.WriteJSON(w, resp.Error, resp)
}
