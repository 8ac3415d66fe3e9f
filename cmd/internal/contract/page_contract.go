package contract

import "bizindustry/cmd/internal/utils/apierror"

// ViewState is the lifecycle of a page: it starts loading and settles
// exactly once, either ready or error.
type ViewState string

const (
	StateLoading ViewState = "loading"
	StateReady   ViewState = "ready"
	StateError   ViewState = "error"
)

const SiteTitle = "Businesses of the Industry"

// Page carries what every template needs to draw the layout.
type Page struct {
	Title string
	Nav   string
	State ViewState
	Error *apierror.ViewError
}

func NewPage(title, nav string) Page {
	return Page{Title: title, Nav: nav, State: StateLoading}
}

// Ready settles a loading page. Settled pages are left untouched.
func (p *Page) Ready() {
	if p.State == StateLoading {
		p.State = StateReady
	}
}

// Fail settles a loading page into the error state.
func (p *Page) Fail(err *apierror.ViewError) {
	if p.State == StateLoading {
		p.State = StateError
		p.Error = err
	}
}

func (p *Page) Failed() bool {
	return p.State == StateError
}

func (p *Page) FullTitle() string {
	if p.Title == "" {
		return SiteTitle
	}
	return p.Title + " | " + SiteTitle
}

// ErrorPage is rendered when a page has nothing but its error to show.
type ErrorPage struct {
	Page
}

func NewErrorPage(title string, err *apierror.ViewError) *ErrorPage {
	page := &ErrorPage{Page: NewPage(title, "")}
	page.Fail(err)
	return page
}
