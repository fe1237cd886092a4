package models

// Meta tag names the host pages use to publish the anti-forgery token.
const (
	CSRFTokenMeta  = "_csrf"
	CSRFHeaderMeta = "_csrf_header"
)

// Hidden input ids the recipe detail page carries.
const (
	FieldRecipeID    = "recipeId"
	FieldViewer      = "loggedInUser"
	FieldRecipeOwner = "recipeOwner"
)

// CSRFToken is the header name/value pair mutating requests must carry.
type CSRFToken struct {
	Header string
	Value  string
}

// Valid reports whether both parts are present.
func (t CSRFToken) Valid() bool {
	return t.Header != "" && t.Value != ""
}

// PageContext is what a script would read from its host page: the
// anti-forgery token and the values of hidden inputs keyed by element id.
type PageContext struct {
	CSRF   CSRFToken
	Fields map[string]string
}

// Field returns the value of the hidden input with the given id.
func (p *PageContext) Field(id string) string {
	if p == nil || p.Fields == nil {
		return ""
	}
	return p.Fields[id]
}
