package storage

import "github.com/xaenox/campus-chatbot/internal/models"

// Sample dataset loaded by Reset. IDs are assigned by the store on insert.

var seedFAQs = []models.FAQ{
	{Category: "Admissions", Question: "How do I apply for admission?", Answer: "Visit the admissions portal on the college website, fill the form, and submit required documents."},
	{Category: "Exams", Question: "What is the exam application deadline?", Answer: "Exam application deadlines are posted on the academic calendar. Typically 2-3 weeks before exams."},
	{Category: "Leave", Question: "How do I apply for leave?", Answer: "Submit a leave application through the student portal or at the registrar office with supporting documents."},
}

var seedSchedules = []models.ClassSchedule{
	{Department: "Computer Science", Course: "B.Tech CS - 3rd Year", Details: "Mon/Wed/Fri 10:00-11:30, Room CS-201"},
	{Department: "Mechanical", Course: "B.Tech ME - 2nd Year", Details: "Tue/Thu 09:00-10:30, Room ME-103"},
}

var seedDining = []models.DiningVenue{
	{Name: "Main Canteen", Menu: "Breakfast: 7-9 AM; Lunch: 12-2 PM; Dinner: 7-9 PM", Notes: "Accepts cash and card. Veg & non-veg options."},
	{Name: "North Mess", Menu: "Daily thali, specials on weekends", Notes: "Open to hostel residents."},
}

var seedFacilities = []models.Facility{
	{Name: "Gym", Description: "Open 6 AM - 10 PM, equipment for cardio and weights", Location: "Building A, Ground Floor"},
	{Name: "Parking", Description: "Student parking available in Lot C", Location: "Entrance near Gate 2"},
}

var seedLibrary = []models.LibrarySection{
	{Section: "Reference", Services: "In-library reference books, cannot be borrowed", Notes: "Open 8 AM - 8 PM"},
	{Section: "Borrowing", Services: "Students can borrow up to 5 books for 15 days", Notes: "Renewal possible twice online"},
}
