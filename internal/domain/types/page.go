package types

// Page names one screen of the single-document UI. Pages exist only as
// runtime navigation state and are never persisted.
type Page string

const (
	PageHome          Page = "home"
	PageServiceList   Page = "services"
	PageServiceDetail Page = "detail"
	PageAddService    Page = "add-service"
)

// String returns the string form of the page identifier.
func (p Page) String() string { return string(p) }

// Valid reports whether p is one of the known screens.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageServiceList, PageServiceDetail, PageAddService:
		return true
	}
	return false
}
