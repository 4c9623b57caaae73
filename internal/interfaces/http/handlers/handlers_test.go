package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	assert.Equal(t, "unknown", RequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "abcd1234")
	assert.Equal(t, "abcd1234", RequestID(ctx))
}
