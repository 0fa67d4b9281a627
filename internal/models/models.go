package models

// FAQ is a categorized question/answer pair from the faqs relation.
type FAQ struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ClassSchedule is one course timetable entry.
type ClassSchedule struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
	Course     string `json:"course"`
	Details    string `json:"details"`
}

// DiningVenue is one canteen or mess with its menu.
type DiningVenue struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Menu  string `json:"menu"`
	Notes string `json:"notes"`
}

// Facility is one campus facility such as the gym or a parking lot.
type Facility struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// LibrarySection is one library section and the services it offers.
type LibrarySection struct {
	ID       int64  `json:"id"`
	Section  string `json:"section"`
	Services string `json:"services"`
	Notes    string `json:"notes"`
}

// FAQMatch is an FAQ with its relevance score: the number of (token, field)
// substring hits across the question and answer fields. A match is only
// produced with Score > 0.
type FAQMatch struct {
	FAQ   FAQ `json:"faq"`
	Score int `json:"score"`
}

// Field is one named value of a record, in the relation's column order.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is a row from one of the specialized campus relations. Fields
// returns every column, name and value, in a stable order so replies can
// render rows losslessly.
type Record interface {
	RecordID() int64
	Fields() []Field
}

func (s ClassSchedule) RecordID() int64 { return s.ID }

func (s ClassSchedule) Fields() []Field {
	return []Field{
		{"department", s.Department},
		{"course", s.Course},
		{"details", s.Details},
	}
}

func (d DiningVenue) RecordID() int64 { return d.ID }

func (d DiningVenue) Fields() []Field {
	return []Field{
		{"name", d.Name},
		{"menu", d.Menu},
		{"notes", d.Notes},
	}
}

func (f Facility) RecordID() int64 { return f.ID }

func (f Facility) Fields() []Field {
	return []Field{
		{"name", f.Name},
		{"description", f.Description},
		{"location", f.Location},
	}
}

func (l LibrarySection) RecordID() int64 { return l.ID }

func (l LibrarySection) Fields() []Field {
	return []Field{
		{"section", l.Section},
		{"services", l.Services},
		{"notes", l.Notes},
	}
}
