package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Core Functionality Tests
// ==========================

func TestMemoryStore_Insert(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	t.Run("assigns a fresh identifier per document", func(t *testing.T) {
		id1, err := s.Insert(ctx, "service", Document{"title": "one"})
		require.NoError(t, err)
		id2, err := s.Insert(ctx, "service", Document{"title": "two"})
		require.NoError(t, err)

		assert.NotEmpty(t, id1)
		assert.NotEmpty(t, id2)
		assert.NotEqual(t, id1, id2)
	})

	t.Run("stored document carries the identifier", func(t *testing.T) {
		id, err := s.Insert(ctx, "project", Document{"title": "p"})
		require.NoError(t, err)

		docs, err := s.FindAll(ctx, "project")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, id, docs[0][IdentifierKey])
	})

	t.Run("does not alias the caller's map", func(t *testing.T) {
		doc := Document{"title": "original"}
		_, err := s.Insert(ctx, "inquiry", doc)
		require.NoError(t, err)

		doc["title"] = "mutated after insert"

		docs, err := s.FindAll(ctx, "inquiry")
		require.NoError(t, err)
		assert.Equal(t, "original", docs[0]["title"])
	})
}

func TestMemoryStore_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown collection yields an empty slice", func(t *testing.T) {
		s := NewMemoryStore()
		docs, err := s.FindAll(ctx, "service")
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s := NewMemoryStore()
		for _, title := range []string{"first", "second", "third"} {
			_, err := s.Insert(ctx, "service", Document{"title": title})
			require.NoError(t, err)
		}

		docs, err := s.FindAll(ctx, "service")
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "first", docs[0]["title"])
		assert.Equal(t, "second", docs[1]["title"])
		assert.Equal(t, "third", docs[2]["title"])
	})

	t.Run("returns copies, not live documents", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.Insert(ctx, "service", Document{"title": "stable"})
		require.NoError(t, err)

		docs, err := s.FindAll(ctx, "service")
		require.NoError(t, err)
		docs[0]["title"] = "tampered"

		again, err := s.FindAll(ctx, "service")
		require.NoError(t, err)
		assert.Equal(t, "stable", again[0]["title"])
	})
}

func TestMemoryStore_ListCollectionNames(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	names, err := s.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, collection := range []string{"teammember", "inquiry", "service"} {
		_, err := s.Insert(ctx, collection, Document{"x": "y"})
		require.NoError(t, err)
	}

	names, err = s.ListCollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"inquiry", "service", "teammember"}, names)
}
