// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/cardex/internal/platform/ctxutil"
)

/*
TestRequestIDRoundTrip verifies that a request ID stored via WithRequestID
is retrievable with GetRequestID.
*/
func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestGetRequestIDMissing verifies that a bare context yields an empty ID
instead of panicking.
*/
func TestGetRequestIDMissing(t *testing.T) {
	assert.Equal(t, "", ctxutil.GetRequestID(context.Background()))
}

/*
TestLoggerRoundTrip verifies that a logger stored via WithLogger is the
exact instance returned by GetLogger.
*/
func TestLoggerRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxutil.WithLogger(context.Background(), logger)

	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestGetLoggerFallback verifies that GetLogger returns the process default
logger when no per-request logger was attached.
*/
func TestGetLoggerFallback(t *testing.T) {
	assert.Same(t, slog.Default(), ctxutil.GetLogger(context.Background()))
}
