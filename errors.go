// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/adc

package adc

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
// Clean end of stream is io.EOF, never a sentinel from this list.
var (
	ErrTruncatedInput = errors.New("input ended inside a chunk header or literal payload")
	ErrInvalidOffset  = errors.New("back-reference offset beyond produced history")
	ErrBufferTooSmall = errors.New("output length and stream length disagree")
	ErrNilReader      = errors.New("reader is nil")
	ErrNegativeOutLen = errors.New("output length must be non-negative")
)
