package view

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) models.Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return models.Timestamp{Time: t}
}

var (
	c1 = models.Comment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Author: "alice", Content: "yum", CreatedDate: ts("2024-01-01T00:00:00Z")}
	c2 = models.Comment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Author: "dave", Content: "too salty", CreatedDate: ts("2024-02-01T12:30:00Z")}
	c3 = models.Comment{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Author: "carol", Content: "again!", CreatedDate: ts("2024-03-01T08:00:00Z")}
)

func TestCommentList_Empty(t *testing.T) {
	for _, in := range [][]models.Comment{nil, {}} {
		n := CommentList(in, "alice", "bob", time.UTC)

		assert.Len(t, n.ByClass("comment-card"), 0)
		placeholders := n.ByClass("no-comments")
		require.Len(t, placeholders, 1)
		assert.Equal(t, NoCommentsYet, placeholders[0].Text)
		assert.Len(t, n.ByClass("delete-comment"), 0)
	}
}

func TestCommentList_OrderAndFields(t *testing.T) {
	in := []models.Comment{c2, c1, c3}
	n := CommentList(in, "nobody", "bob", time.UTC)

	cards := n.ByClass("comment-card")
	require.Len(t, cards, 3)
	assert.Len(t, n.ByClass("no-comments"), 0)

	for i, card := range cards {
		assert.Equal(t, in[i].ID.String(), card.Attr("data-id"))
		assert.Equal(t, in[i].Author, card.ByClass("comment-author")[0].Text)
		assert.Equal(t, in[i].Content, card.ByClass("comment-text")[0].Text)
		assert.Equal(t, in[i].CreatedDate.Local(time.UTC), card.ByClass("comment-time")[0].Text)
	}
	assert.Equal(t, "01 Feb 2024, 12:30:00", cards[0].ByClass("comment-time")[0].Text)
}

func TestCommentList_DeleteButton(t *testing.T) {
	in := []models.Comment{c1}

	// Author match.
	n := CommentList(in, "alice", "bob", time.UTC)
	require.Len(t, n.ByClass("comment-card"), 1)
	buttons := n.ByClass("delete-comment")
	require.Len(t, buttons, 1)
	assert.Equal(t, c1.ID.String(), buttons[0].Attr("data-id"))

	// Neither author nor owner.
	n = CommentList(in, "carol", "bob", time.UTC)
	require.Len(t, n.ByClass("comment-card"), 1)
	assert.Len(t, n.ByClass("delete-comment"), 0)

	// Recipe owner may delete every comment.
	n = CommentList([]models.Comment{c1, c2, c3}, "bob", "bob", time.UTC)
	assert.Len(t, n.ByClass("delete-comment"), 3)

	// Mixed: carol sees a button on her own comment only.
	n = CommentList([]models.Comment{c1, c2, c3}, "carol", "bob", time.UTC)
	buttons = n.ByClass("delete-comment")
	require.Len(t, buttons, 1)
	assert.Equal(t, c3.ID.String(), buttons[0].Attr("data-id"))
}
