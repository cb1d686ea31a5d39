package files

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/notedex/core"
	"github.com/poiesic/notedex/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNote(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const volcanoNote = `---
title: Volcanoes
labels: [mountain, lava]
created: 2024-03-01T10:00:00Z
modified: 2024-03-05T12:30:00Z
records:
  - id: rec-1
    kind: wiki
    title: Mount Etna
    description: An active volcano in Sicily
    fields:
      url: https://example.org/etna
---
Lava flows down the slope.

Ash clouds rise above the crater.
`

func TestNewSource(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := NewSource(filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})

	t.Run("root is a file", func(t *testing.T) {
		root := t.TempDir()
		writeNote(t, root, "a.md", "hello")
		_, err := NewSource(filepath.Join(root, "a.md"))
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := NewSource(t.TempDir(), WithIncludes("[a-"))
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})
}

func TestSourceDocuments(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "nature/volcano.md", volcanoNote)
	writeNote(t, root, "birds.txt", "Bird migration\nGeese fly south in autumn.\n")
	writeNote(t, root, "image.png", "not a note")
	writeNote(t, root, ".trash/old.md", "Deleted note")

	src, err := NewSource(root)
	require.NoError(t, err)

	docs, err := src.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "birds.txt", docs[0].ID)
	assert.Equal(t, "Bird migration", docs[0].Title)
	assert.Equal(t, "Geese fly south in autumn.", docs[0].Body)
	assert.False(t, docs[0].ModifiedAt.IsZero(), "modification time falls back to the file")

	doc := docs[1]
	assert.Equal(t, "nature/volcano.md", doc.ID)
	assert.Equal(t, "Volcanoes", doc.Title)
	assert.Equal(t, "Lava flows down the slope.\n\nAsh clouds rise above the crater.", doc.Body)
	assert.Equal(t, []string{"mountain", "lava"}, doc.Labels)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), doc.CreatedAt)
	assert.Equal(t, time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC), doc.ModifiedAt)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, core.Record{
		ID:          "rec-1",
		Kind:        core.RecordKindWiki,
		Title:       "Mount Etna",
		Description: "An active volcano in Sicily",
		Fields:      map[string]string{"url": "https://example.org/etna"},
	}, doc.Records[0])
}

func TestSourcePatterns(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "journal/2024.md", "Journal\ntext")
	writeNote(t, root, "drafts/idea.md", "Idea\ntext")
	writeNote(t, root, "top.md", "Top\ntext")

	src, err := NewSource(root,
		WithIncludes("**/*.md"),
		WithExcludes("drafts/**"),
	)
	require.NoError(t, err)

	docs, err := src.Documents(context.Background())
	require.NoError(t, err)

	var ids []string
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	assert.Equal(t, []string{"journal/2024.md", "top.md"}, ids)
}

func TestSourceDocument(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "nature/volcano.md", volcanoNote)

	src, err := NewSource(root)
	require.NoError(t, err)
	ctx := context.Background()

	doc, err := src.Document(ctx, "nature/volcano.md")
	require.NoError(t, err)
	assert.Equal(t, "Volcanoes", doc.Title)

	_, err = src.Document(ctx, "nature/missing.md")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = src.Document(ctx, "../outside.md")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSourceSkipsInvalidFrontMatter(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "bad.md", "---\ntitle: [unclosed\n---\nbody")
	writeNote(t, root, "good.md", "Good note\nbody")

	var logs bytes.Buffer
	src, err := NewSource(root, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)
	ctx := context.Background()

	docs, err := src.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "good.md", docs[0].ID)
	assert.Contains(t, logs.String(), "bad.md")

	_, err = src.Document(ctx, "bad.md")
	assert.ErrorIs(t, err, ErrInvalidFrontMatter)

	_, err = NewSource(root, WithLogger(nil))
	assert.ErrorIs(t, err, ErrNilLogger)
}

func TestSourceCancelled(t *testing.T) {
	root := t.TempDir()
	writeNote(t, root, "a.md", "A\ntext")

	src, err := NewSource(root)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Documents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseNote(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantBody  string
		wantErr   error
	}{
		{"plain text", "First line\nsecond line", "First line", "second line", nil},
		{"markdown heading", "# Heading\n\nParagraph", "Heading", "Paragraph", nil},
		{"title only", "Lonely", "Lonely", "", nil},
		{"front matter title", "---\ntitle: Given\n---\nBody text", "Given", "Body text", nil},
		{"byte order mark", "\ufeff---\ntitle: Marked\n---\nBody", "Marked", "Body", nil},
		{"unterminated front matter", "---\ntitle: x\nbody", "", "", ErrInvalidFrontMatter},
		{"unknown record kind", "---\nrecords:\n  - kind: video\n---\nx", "", "", ErrInvalidFrontMatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parseNote("n.md", []byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, doc.Title)
			assert.Equal(t, tt.wantBody, doc.Body)
		})
	}
}

func TestParseNoteRecordIDs(t *testing.T) {
	doc, err := parseNote("n.md", []byte("---\nrecords:\n  - kind: Link\n    title: Home\n---\nNote\n"))
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "n.md#0", doc.Records[0].ID)
	assert.Equal(t, core.RecordKindLink, doc.Records[0].Kind)
}
