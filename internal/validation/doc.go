// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package validation validates API request structs.

ValidateStruct returns a *RequestValidationError listing every failed rule;
the API reports Detail() as the message and Fields as the details. Custom
tags:

  - nocontrol: the string holds no Unicode control characters

Messages use the json name of the field ("movie is required"), not the Go
field name.

	type RecommendationRequest struct {
	    Movie *string `json:"movie" validate:"required,max=512,nocontrol"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    respondErrorDetails(w, r, http.StatusBadRequest, ErrCodeValidation, verr.Detail(), verr.Fields, nil)
	    return
	}
*/
package validation
