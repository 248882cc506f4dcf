// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared. It caches struct
// metadata, so request structs are cheap to validate after first use.
//
// # Custom Tags
//
// Domain enums are checked with the same parsers the wardrobe package uses,
// so validation and decoding never disagree:
//
//	occasion   casual, formal, business_casual, ...
//	weather    hot, warm, mild, cool, cold, rainy, sunny
//	undertone  warm, cool, neutral
//	style      casual, formal, business_casual, smart_casual, ...
//	colorhex   #RRGGBB, RRGGBB or #RGB
//
// # Usage
//
//	type recommendationQuery struct {
//	    Occasion string `json:"occasion" validate:"omitempty,occasion"`
//	    Max      int    `json:"max_recommendations" validate:"min=0,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// Field names in messages come from the json tag.
package validation
