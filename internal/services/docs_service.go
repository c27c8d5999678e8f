package services

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"sleeperbooking/internal/domain"
	"sleeperbooking/internal/domain/models"
	"sleeperbooking/internal/repositories"
	"sleeperbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// DocsService renders the per-booking e-ticket PDF. Constructed per
// request with the request id, like the other document flows; Loader is
// an injection seam for tests.
type DocsService struct {
	Reservations *ReservationService
	Catalog      *repositories.Catalog
	RequestID    string
	Loader       func(bookingID string) (ticketData, error)
}

type ticketData struct {
	BookingID     string
	Boarding      string
	Dropping      string
	Seats         []string
	PassengerName string
	Phone         string
	Meals         []string
	TotalPrice    float64
	BookingTime   string
	Status        models.Status
}

// GenerateETicket builds the ticket PDF for a confirmed booking.
// Cancelled bookings are refused; unknown ids surface as not found.
func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	if data.Status == models.StatusCancelled {
		return nil, "", domain.ValidationError{Field: "booking", Msg: "booking is cancelled"}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%s", data.BookingID))
	return buildETicketPDF(data)
}

func (s DocsService) loadTicketData(bookingID string) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	b, err := s.Reservations.Get(bookingID)
	if err != nil {
		return ticketData{}, err
	}

	name, phone := "N/A", "N/A"
	if len(b.Passengers) > 0 {
		name = b.Passengers[0].Name
		phone = b.Passengers[0].Phone
	}

	var mealNames []string
	for _, id := range b.Meals {
		if m, ok := s.Catalog.MealByID(id); ok {
			mealNames = append(mealNames, m.Name)
		}
	}

	return ticketData{
		BookingID:     b.BookingID,
		Boarding:      s.Catalog.StationName(b.BoardingPoint),
		Dropping:      s.Catalog.StationName(b.DroppingPoint),
		Seats:         b.Seats,
		PassengerName: name,
		Phone:         phone,
		Meals:         mealNames,
		TotalPrice:    b.TotalPrice,
		BookingTime:   utils.FormatDateTime(b.BookingTime),
		Status:        b.Status,
	}, nil
}

func buildETicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SLEEPER E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", d.BookingID),
		fmt.Sprintf("Passenger    : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Phone        : %s", safe(d.Phone, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(d.Boarding, "-"), safe(d.Dropping, "-")),
		fmt.Sprintf("Seats        : %s", safe(strings.Join(d.Seats, ", "), "-")),
		fmt.Sprintf("Meals        : %s", safe(strings.Join(d.Meals, ", "), "-")),
		fmt.Sprintf("Booked At    : %s", safe(d.BookingTime, "-")),
		fmt.Sprintf("Total        : %s", utils.FormatRupee(d.TotalPrice)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if err := embedQR(pdf, d.BookingID); err != nil {
		return nil, "", err
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: this e-ticket covers all listed seats. Show it with a photo ID at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

// embedQR draws a QR code carrying the booking id so conductors can pull
// the record up by scan.
func embedQR(pdf *gofpdf.Fpdf, bookingID string) error {
	qr, err := qrcode.New(bookingID, qrcode.Medium)
	if err != nil {
		return err
	}
	var img bytes.Buffer
	if err := png.Encode(&img, qr.Image(256)); err != nil {
		return err
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("booking-qr", opts, &img)
	pdf.ImageOptions("booking-qr", 150, 20, 40, 40, false, opts, 0, "")
	return pdf.Error()
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
