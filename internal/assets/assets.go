package assets

// Names of the bundled stylesheets, in the order they are applied.
const (
	BaseStyleName      = "github-markdown"
	AdditionsStyleName = "github-markdown-additions"
)

// DefaultStyleNames lists the stylesheets added unless defaults are suppressed.
func DefaultStyleNames() []string {
	return []string{BaseStyleName, AdditionsStyleName}
}
