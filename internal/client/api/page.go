package api

import (
	"bytes"
	"fmt"
)

// Page is the normalized result of a list operation. The backend evolved
// from returning flat arrays to returning Spring-style page envelopes, and
// different endpoints are at different stages of that migration, so the
// client accepts both shapes and normalizes them here. Downstream code only
// ever sees a Page.
type Page[T any] struct {
	Content       []T
	TotalPages    int
	TotalElements int64

	// Paged is true when the server sent a real envelope. A flat array
	// counts as a single page holding everything.
	Paged bool
}

type pageEnvelope[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// decodePage sniffs the body shape: a leading '[' means a flat array,
// anything else is treated as an envelope. Content is never nil.
func decodePage[T any](data []byte) (Page[T], error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := jsonCodec.Unmarshal(data, &items); err != nil {
			return Page[T]{}, fmt.Errorf("decoding list: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		return Page[T]{Content: items, TotalPages: 1, TotalElements: int64(len(items))}, nil
	}

	var env pageEnvelope[T]
	if err := jsonCodec.Unmarshal(data, &env); err != nil {
		return Page[T]{}, fmt.Errorf("decoding page envelope: %w", err)
	}
	if env.Content == nil {
		env.Content = []T{}
	}
	return Page[T]{
		Content:       env.Content,
		TotalPages:    env.TotalPages,
		TotalElements: env.TotalElements,
		Paged:         true,
	}, nil
}
