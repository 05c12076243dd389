package embedding

import (
	"context"
	"question-lab/similarity"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashEmbedder_Embed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	e := NewHashEmbedder(0)
	req.Equal(defaultHashDimension, e.Dimension())

	first, err := e.Embed(ctx, "what is the deadline")
	req.NoError(err)
	second, err := e.Embed(ctx, "what is the deadline")
	req.NoError(err)
	req.Equal(first, second)
	req.InDelta(1.0, similarity.L2Norm(first), 1e-9)

	close1, err := e.Embed(ctx, "what is the deadline for homework")
	req.NoError(err)
	far, err := e.Embed(ctx, "can you share the slides")
	req.NoError(err)

	simClose, err := similarity.Dot(first, close1)
	req.NoError(err)
	simFar, err := similarity.Dot(first, far)
	req.NoError(err)
	req.Greater(simClose, simFar)
}

func TestHashEmbedder_EmptyText(t *testing.T) {
	req := require.New(t)
	vec, err := NewHashEmbedder(16).Embed(context.Background(), "")
	req.NoError(err)
	req.Len(vec, 16)
	req.Equal(0.0, similarity.L2Norm(vec))
}

func TestHashEmbedder_CancelledContext(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHashEmbedder(16).Embed(ctx, "hello")
	req.ErrorIs(err, context.Canceled)
}
