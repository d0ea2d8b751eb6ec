// Package models defines the wire types exchanged with the library backend.
// Field names mirror the backend's JSON contract exactly (Portuguese names
// included) and must not be renamed.
package models

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a payload rejected by local validation, before any
// network call. Match with errors.Is.
var ErrInvalid = errors.New("invalid input")

// Book is a title in the catalog. QuantidadeDisponivel is maintained by the
// server (decremented on borrow, incremented on return); the client never
// computes it.
type Book struct {
	ID                   int64  `json:"id,omitempty"`
	Titulo               string `json:"titulo"`
	Autor                string `json:"autor"`
	AnoPublicacao        int    `json:"anoPublicacao"`
	ISBN                 string `json:"isbn,omitempty"`
	QuantidadeTotal      int    `json:"quantidadeTotal"`
	QuantidadeDisponivel int    `json:"quantidadeDisponivel"`
}

// Available reports whether at least one copy can be borrowed.
func (b Book) Available() bool {
	return b.QuantidadeDisponivel > 0
}

// Validate checks the fields the client can judge locally. Anything beyond
// this (ISBN uniqueness, availability accounting) is the server's call.
func (b Book) Validate() error {
	if b.Titulo == "" {
		return fmt.Errorf("%w: titulo is required", ErrInvalid)
	}
	if b.Autor == "" {
		return fmt.Errorf("%w: autor is required", ErrInvalid)
	}
	if b.AnoPublicacao <= 0 {
		return fmt.Errorf("%w: anoPublicacao must be positive", ErrInvalid)
	}
	if b.QuantidadeTotal <= 0 {
		return fmt.Errorf("%w: quantidadeTotal must be positive", ErrInvalid)
	}
	return nil
}
