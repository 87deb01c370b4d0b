// Package navigation describes where an admin page sits: its section in the
// menu and the breadcrumb trail leading to it.
package navigation

// Sections of the admin menu.
const (
	SectionDashboard = "dashboard"
	SectionContent   = "content"
	SectionSettings  = "settings"
)

// HomeURL is the target of the first breadcrumb of every admin page.
const HomeURL = "/dashboard"

// BreadcrumbItem represents a single breadcrumb link.
// An empty URL renders as plain text.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context without breadcrumbs.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// Admin creates the context of an admin page, its trail starts at Home.
func Admin(pageTitle, activeSection, activePage string) *Context {
	return NewContext(pageTitle, activeSection, activePage).AddBreadcrumb("Home", HomeURL, false)
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// Current returns the title of the active breadcrumb, or the page title if none is active.
func (c *Context) Current() string {
	for i := len(c.Breadcrumbs) - 1; i >= 0; i-- {
		if c.Breadcrumbs[i].Active {
			return c.Breadcrumbs[i].Title
		}
	}

	return c.PageTitle
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
