package view

import (
	"strconv"

	"github.com/dmitrijs2005/recipeadmin/internal/client/models"
)

// ChartTitle labels the dashboard bar chart.
const ChartTitle = "Admin Statistics"

// Dashboard renders the four counters and a bar chart keyed to them.
func Dashboard(s models.Stats) *Node {
	fields := El("div", A("class", "totals"))
	chart := El("div", A("id", "adminChart", "class", "chart", "data-title", ChartTitle))

	for _, c := range models.Counters {
		v := strconv.FormatInt(s.Get(c), 10)
		fields.Children = append(fields.Children, El("p", A("class", "total"),
			Txt("span", A("class", "total-label"), c.Label()),
			Txt("span", A("id", "total"+c.Label(), "class", "total-value"), v),
		))
		chart.Children = append(chart.Children, Txt("div",
			A("class", "bar", "data-label", c.Label(), "data-value", v, "data-color", c.Color()), c.Label()))
	}

	return El("section", A("class", "dashboard"), fields, chart)
}
