package view

import (
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// NoCommentsYet is the placeholder of an empty recipe comment widget.
const NoCommentsYet = "No comments yet. Be the first to comment!"

// CommentList renders the recipe comment widget: one card per comment in the
// given order, or a single placeholder when there are none. A card carries a
// delete button only when viewer may delete that comment.
func CommentList(comments []models.Comment, viewer, owner string, loc *time.Location) *Node {
	section := El("section", A("class", "comments-section"))

	if len(comments) == 0 {
		section.Children = append(section.Children, Txt("p", A("class", "no-comments"), NoCommentsYet))
		return section
	}

	for _, c := range comments {
		section.Children = append(section.Children, commentCard(c, viewer, owner, loc))
	}
	return section
}

func commentCard(c models.Comment, viewer, owner string, loc *time.Location) *Node {
	body := El("div", A("class", "card-body"),
		Txt("p", A("class", "comment-author"), c.Author),
		Txt("p", A("class", "comment-text"), c.Content),
		Txt("p", A("class", "comment-time"), c.CreatedDate.Local(loc)),
	)

	if models.CanDeleteComment(viewer, c.Author, owner) {
		body.Children = append(body.Children,
			Txt("button", A("class", "delete-comment", "data-id", c.ID.String()), "Delete"))
	}

	return El("div", A("class", "comment-card", "data-id", c.ID.String()), body)
}
