package reports

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// BookingRow is one line of a bookings report, flattened from an Event.
type BookingRow struct {
	DateKey   string
	Title     string
	Type      string
	GuestName string
	Phone     string
	Pax       int
	Venue     string
	WithFood  bool
	Meal      string
	MealTitle string
	MealItems []string
	MealType  string
	Start     string
	End       string
}
