package handler

const (
	// BaseLayout is the layout of the admin area.
	BaseLayout = "layouts/base"

	// SiteLayout is the layout of the public pages.
	SiteLayout = "layouts/site"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root of a route group.
	RouterRootPath = ""

	// AdminPath prefixes every page of the admin area.
	AdminPath = RootPath + "admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or deps are nil.
	ErrNilACDFatalLogMsg = "app, cfg or deps are nil"
)
