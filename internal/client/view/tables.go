package view

import (
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// Placeholders of the empty admin tables.
const (
	NoCommentsFound = "No comments found."
	NoRecipesFound  = "No recipes found."
	NoUsersFound    = "No users found."
)

// table renders a table with the given rows, or hides it and shows the
// placeholder paragraph when there are no rows.
func table(id string, headers []string, rows []*Node, placeholderID, placeholder string) *Node {
	head := El("tr", nil)
	for _, h := range headers {
		head.Children = append(head.Children, Txt("th", nil, h))
	}

	tableAttrs := A("id", id, "class", "table")
	msgAttrs := A("id", placeholderID, "class", "placeholder")
	if len(rows) == 0 {
		tableAttrs = append(tableAttrs, Attr{Key: "hidden", Val: "hidden"})
	} else {
		msgAttrs = append(msgAttrs, Attr{Key: "hidden", Val: "hidden"})
	}

	return El("section", A("class", "admin-table"),
		El("table", tableAttrs,
			El("thead", nil, head),
			El("tbody", nil, rows...),
		),
		Txt("p", msgAttrs, placeholder),
	)
}

func row(cells ...*Node) *Node {
	return El("tr", nil, cells...)
}

func td(text string) *Node {
	return Txt("td", nil, text)
}

// AdminComments renders the site-wide comment table.
func AdminComments(comments []models.Comment, loc *time.Location) *Node {
	rows := make([]*Node, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, row(
			td(c.Author),
			td(c.Content),
			td(c.CreatedDate.LocalDate(loc)),
			El("td", nil, Txt("button", A("class", "delete-comment", "data-id", c.ID.String()), "Delete")),
		))
	}
	return table("commentsTable", []string{"Author", "Content", "Date", "Actions"}, rows, "noCommentsMessage", NoCommentsFound)
}

// AdminRecipes renders the recipe table; each row links to the recipe page.
func AdminRecipes(recipes []models.Recipe, loc *time.Location) *Node {
	rows := make([]*Node, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, row(
			td(r.Title),
			td(r.Author),
			td(r.CreatedDate.LocalDate(loc)),
			El("td", nil,
				Txt("a", A("class", "view-recipe", "href", r.DetailPath()), "View"),
				Txt("button", A("class", "delete-recipe", "data-id", r.ID.String()), "Delete"),
			),
		))
	}
	return table("recipesTable", []string{"Title", "Author", "Date", "Actions"}, rows, "noRecipesMessage", NoRecipesFound)
}

// AdminUsers renders the user table with role and status controls.
func AdminUsers(users []models.User) *Node {
	rows := make([]*Node, 0, len(users))
	for _, u := range users {
		statusClass := "status inactive-profile"
		if u.Active {
			statusClass = "status active-profile"
		}
		rows = append(rows, row(
			td(u.Username),
			td(u.Email),
			td(u.Role),
			Txt("td", A("class", statusClass), u.StatusLabel()),
			El("td", nil,
				Txt("button", A("class", "update-role", "data-id", u.ID.String()), "Change Role"),
				Txt("button", A("class", "change-status", "data-id", u.ID.String()), "Change Status"),
			),
		))
	}
	return table("usersTable", []string{"Username", "Email", "Role", "Status", "Actions"}, rows, "noUsersMessage", NoUsersFound)
}
