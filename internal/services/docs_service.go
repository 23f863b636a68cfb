package services

import (
	"bytes"
	"fmt"
	"time"

	"frotalog/internal/domain"
	"frotalog/internal/repositories"
	"frotalog/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the trip receipt and monthly fleet report PDFs.
type DocsService struct {
	TripRepo    repositories.TripRepository
	VehicleRepo repositories.VehicleRepository
	DriverRepo  repositories.DriverRepository
	ShipperRepo repositories.ShipperRepository
	ProfileRepo repositories.ProfileRepository

	RequestID string
	// ReceiptLoader overrides data loading in tests.
	ReceiptLoader func(userID, tripID string) (tripReceiptData, error)
}

type tripReceiptData struct {
	Trip         domain.Trip
	VehiclePlate string
	DriverName   string
	ShipperName  string
	Finance      domain.FinancialResults
}

func (s DocsService) GenerateTripReceipt(userID, tripID string) ([]byte, string, error) {
	data, err := s.loadReceiptData(userID, tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("trip_id=%s", tripID))
	return buildTripReceiptPDF(data)
}

func (s DocsService) loadReceiptData(userID, tripID string) (tripReceiptData, error) {
	if s.ReceiptLoader != nil {
		return s.ReceiptLoader(userID, tripID)
	}

	var out tripReceiptData
	trip, err := s.TripRepo.GetByID(userID, tripID)
	if err != nil {
		return out, err
	}
	cfg, err := s.ProfileRepo.GetConfig(userID)
	if err != nil {
		return out, err
	}

	vehicles, err := s.VehicleRepo.MapByID(userID)
	if err != nil {
		return out, err
	}
	drivers, err := s.DriverRepo.MapByID(userID)
	if err != nil {
		return out, err
	}
	shippers, err := s.ShipperRepo.MapByID(userID)
	if err != nil {
		return out, err
	}

	vref := domain.ResolveVehicle(vehicles, trip.VehicleID)
	dref := domain.ResolveDriver(drivers, trip.DriverID)
	sref := domain.ResolveShipper(shippers, trip.ShipperID)

	out = tripReceiptData{
		Trip:         trip,
		VehiclePlate: vref.Vehicle.Plate,
		DriverName:   dref.Driver.Name,
		ShipperName:  sref.Shipper.Name,
		Finance:      domain.CalculateTripFinance(trip, vref.Vehicle, dref.Driver, cfg),
	}
	return out, nil
}

func buildTripReceiptPDF(d tripReceiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Recibo de Viagem", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECIBO DE VIAGEM")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Rota           : %s -> %s", orDash(d.Trip.Origin), orDash(d.Trip.Destination)),
		fmt.Sprintf("Saida          : %s", orDash(d.Trip.DepartureDate)),
		fmt.Sprintf("Retorno        : %s", orDash(d.Trip.ReturnDate)),
		fmt.Sprintf("Motorista      : %s", orDash(d.DriverName)),
		fmt.Sprintf("Veiculo        : %s", orDash(d.VehiclePlate)),
		fmt.Sprintf("Embarcador     : %s", orDash(d.ShipperName)),
		fmt.Sprintf("Km total       : %.0f", d.Trip.TotalKm),
		fmt.Sprintf("Status         : %s", d.Trip.Status),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Financeiro")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 12)
	finLines := []string{
		fmt.Sprintf("Frete seco     : %s", utils.FormatBRL(d.Trip.FreteSeco)),
		fmt.Sprintf("Diarias        : %s", utils.FormatBRL(d.Trip.Diarias)),
		fmt.Sprintf("Total bruto    : %s", utils.FormatBRL(d.Finance.TotalBruto)),
		fmt.Sprintf("Comissao       : %s", utils.FormatBRL(d.Finance.ComissaoMotorista)),
		fmt.Sprintf("Adiantamento   : %s", utils.FormatBRL(d.Trip.Adiantamento)),
		fmt.Sprintf("Saldo a receber: %s", utils.FormatBRL(d.Finance.SaldoAReceber)),
		fmt.Sprintf("Lucro liquido  : %s", utils.FormatBRL(d.Finance.LucroLiquidoReal)),
	}
	for _, l := range finLines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Documento gerado pelo FrotaLog. Valores sem arredondamento interno; formatação apenas para exibição.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECIBO_%s.pdf", utils.SafeFilenamePart(d.Trip.ID))
	return buf.Bytes(), filename, nil
}

// BuildFleetReportPDF renders the aggregated dashboard view as a PDF. It is
// a pure rendering step: the caller supplies the already-computed view.
func (s DocsService) BuildFleetReportPDF(view DashboardView, generatedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Relatório da Frota", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RELATORIO DA FROTA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Gerado em: "+generatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Totais")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	totals := []string{
		fmt.Sprintf("Viagens       : %d", view.TripCount),
		fmt.Sprintf("Faturamento   : %s", utils.FormatBRL(view.TotalBruto)),
		fmt.Sprintf("Lucro liquido : %s", utils.FormatBRL(view.TotalLucro)),
		fmt.Sprintf("Comissoes     : %s", utils.FormatBRL(view.TotalComissao)),
		fmt.Sprintf("Margem        : %s%%", view.Margin),
		fmt.Sprintf("Km rodados    : %.0f", view.TotalKm),
	}
	for _, l := range totals {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Top motoristas (lucro)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, e := range view.TopDriversByLucro {
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s - %s em %d viagens", i+1, orDash(e.Name), utils.FormatBRL(e.Lucro), e.Trips))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Faturamento mensal")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, m := range view.Monthly {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %s (lucro %s)", m.Key, utils.FormatBRL(m.Bruto), utils.FormatBRL(m.Lucro)))
		pdf.Ln(6)
	}

	if len(view.LossTrips) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Viagens com prejuizo (%d)", len(view.LossTrips)))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range view.LossTrips {
			pdf.Cell(0, 6, fmt.Sprintf("%s -> %s: %s", orDash(r.Trip.Origin), orDash(r.Trip.Destination), utils.FormatBRL(r.Finance.LucroLiquidoReal)))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("FROTA_%s.pdf", generatedAt.Format("2006-01"))
	return buf.Bytes(), filename, nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
