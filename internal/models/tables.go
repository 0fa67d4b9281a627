package models

// Table identifies one of the specialized campus relations. The faqs
// relation is not listed here because it has its own scored lookup path.
type Table string

const (
	TableSchedules  Table = "schedules"
	TableDining     Table = "dining"
	TableLibrary    Table = "library"
	TableFacilities Table = "facilities"
)

// SearchColumns returns the columns of the table that are eligible for
// substring matching.
func (t Table) SearchColumns() []string {
	switch t {
	case TableSchedules:
		return []string{"department", "course", "details"}
	case TableDining:
		return []string{"name", "menu", "notes"}
	case TableLibrary:
		return []string{"section", "services", "notes"}
	case TableFacilities:
		return []string{"name", "description", "location"}
	default:
		return nil
	}
}
