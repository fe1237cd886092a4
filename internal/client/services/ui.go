package services

import (
	"time"

	"github.com/dmitrijs2005/recipeadmin/internal/client/client"
	"github.com/dmitrijs2005/recipeadmin/internal/client/view"
	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}

// Prompter asks the operator for a line of free text.
type Prompter interface {
	Prompt(message string) (string, error)
}

// Display shows a rendered view, replacing whatever was shown before.
type Display interface {
	Show(n *view.Node)
}

// Deps bundles what every controller needs.
type Deps struct {
	Client   client.Client
	Display  Display
	Confirm  Confirmer
	Prompt   Prompter
	Logger   logging.Logger
	Location *time.Location
}

func (d Deps) logger() logging.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}
