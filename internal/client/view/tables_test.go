package view

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(n *Node) []*Node {
	return n.FindAll(func(x *Node) bool { return x.Tag == "tr" && len(x.Children) > 0 && x.Children[0].Tag == "td" })
}

func TestAdminComments(t *testing.T) {
	empty := AdminComments(nil, time.UTC)
	assert.True(t, empty.ByID("commentsTable").Hidden())
	assert.False(t, empty.ByID("noCommentsMessage").Hidden())
	assert.Empty(t, rows(empty))

	n := AdminComments([]models.Comment{c3, c1}, time.UTC)
	assert.False(t, n.ByID("commentsTable").Hidden())
	assert.True(t, n.ByID("noCommentsMessage").Hidden())

	rs := rows(n)
	require.Len(t, rs, 2)
	assert.Equal(t, "carol", rs[0].Children[0].Text)
	assert.Equal(t, "01 Mar 2024", rs[0].Children[2].Text)
	assert.Equal(t, c1.ID.String(), rs[1].ByClass("delete-comment")[0].Attr("data-id"))
}

func TestAdminRecipes(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	n := AdminRecipes([]models.Recipe{{ID: id, Title: "Borscht", Author: "olga", CreatedDate: ts("2024-05-05T10:00:00Z")}}, time.UTC)

	rs := rows(n)
	require.Len(t, rs, 1)
	assert.Equal(t, "Borscht", rs[0].Children[0].Text)
	assert.Equal(t, "/recipes/"+id.String(), rs[0].ByClass("view-recipe")[0].Attr("href"))
	assert.Equal(t, id.String(), rs[0].ByClass("delete-recipe")[0].Attr("data-id"))

	empty := AdminRecipes([]models.Recipe{}, time.UTC)
	assert.True(t, empty.ByID("recipesTable").Hidden())
	assert.Equal(t, NoRecipesFound, empty.ByID("noRecipesMessage").Text)
}

func TestAdminUsers(t *testing.T) {
	users := []models.User{
		{ID: uuid.New(), Username: "admin", Email: "admin@x.io", Role: "ADMIN", Active: true},
		{ID: uuid.New(), Username: "spam", Email: "spam@x.io", Role: "USER", Active: false},
	}
	n := AdminUsers(users)

	rs := rows(n)
	require.Len(t, rs, 2)

	st := rs[0].ByClass("status")[0]
	assert.True(t, st.HasClass("active-profile"))
	assert.Equal(t, "Active", st.Text)

	st = rs[1].ByClass("status")[0]
	assert.True(t, st.HasClass("inactive-profile"))
	assert.Equal(t, "Inactive", st.Text)

	assert.Equal(t, users[1].ID.String(), rs[1].ByClass("change-status")[0].Attr("data-id"))
	assert.Equal(t, users[1].ID.String(), rs[1].ByClass("update-role")[0].Attr("data-id"))

	assert.True(t, AdminUsers(nil).ByID("usersTable").Hidden())
}

func TestDashboard(t *testing.T) {
	n := Dashboard(models.Stats{Users: 10, Recipes: 20, Comments: 5, Likes: 0})

	assert.Equal(t, "10", n.ByID("totalUsers").Text)
	assert.Equal(t, "20", n.ByID("totalRecipes").Text)
	assert.Equal(t, "5", n.ByID("totalComments").Text)
	assert.Equal(t, "0", n.ByID("totalLikes").Text)

	bars := n.ByClass("bar")
	require.Len(t, bars, 4)
	assert.Equal(t, "Users", bars[0].Attr("data-label"))
	assert.Equal(t, "#28a745", bars[1].Attr("data-color"))
	assert.Equal(t, "0", bars[3].Attr("data-value"))
}
