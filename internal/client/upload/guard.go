// Package upload guards file selections against the server's upload limit
// before anything is submitted.
package upload

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeadmin/internal/filex"
)

// MaxUploadSize is the largest accepted upload, 3 MiB.
const MaxUploadSize int64 = 3 << 20

// TooLargeMessage is shown when a selection exceeds the limit.
const TooLargeMessage = "File size must not exceed 3MB."

var ErrTooLarge = errors.New("file too large")

// Alerter shows a blocking message to the operator.
type Alerter interface {
	Alert(message string)
}

// Guard holds the current selection of one file input.
type Guard struct {
	Name     string
	Limit    int64
	alert    Alerter
	selected string
}

func New(name string, alert Alerter) *Guard {
	return &Guard{Name: name, Limit: MaxUploadSize, alert: alert}
}

// ProfilePicture guards the profile picture input.
func ProfilePicture(alert Alerter) *Guard { return New("profile picture", alert) }

// RecipeImage guards the recipe image input.
func RecipeImage(alert Alerter) *Guard { return New("recipe image", alert) }

// Check validates a size. Sizes above the limit raise the alert, clear the
// selection and return ErrTooLarge. A size equal to the limit passes.
func (g *Guard) Check(size int64) error {
	if size <= g.Limit {
		return nil
	}
	if g.alert != nil {
		g.alert.Alert(TooLargeMessage)
	}
	g.selected = ""
	return fmt.Errorf("%s: %d bytes: %w", g.Name, size, ErrTooLarge)
}

// CheckFile selects the file at path if its size is within the limit.
func (g *Guard) CheckFile(path string) error {
	size, err := filex.Size(path)
	if err != nil {
		return err
	}
	if err := g.Check(size); err != nil {
		return err
	}
	g.selected = path
	return nil
}

// Selected is the path of the accepted file, empty when nothing is selected.
func (g *Guard) Selected() string {
	return g.selected
}
