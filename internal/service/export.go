package service

import (
	"bytes"
	"fmt"
	"strings"

	"shiptrack/internal/models"
)

var csvHeader = []string{
	"Tracking Number", "Status", "Sender Name", "Sender Email", "Sender Phone",
	"Sender Address", "Receiver Name", "Receiver Email", "Receiver Phone",
	"Receiver Address", "Service ID", "Weight", "Dimensions", "Declared Value",
	"Estimated Cost", "Final Cost", "Currency", "Payment Status", "Created At",
}

// ExportCSV renders every shipment matching the filter, unpaginated.
// Every field is double-quoted; addresses are flattened to one string.
func (s *Service) ExportCSV(f models.ShipmentFilter) ([]byte, error) {
	f.Page = 0
	f.Limit = 0

	shipments, _, err := s.repo.Shipments.List(f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeCSVRow(&buf, csvHeader)
	for i := range shipments {
		writeCSVRow(&buf, csvRow(&shipments[i]))
	}
	return buf.Bytes(), nil
}

func csvRow(sh *models.Shipment) []string {
	finalCost := ""
	if sh.FinalCost != nil {
		finalCost = fmt.Sprintf("%.2f", *sh.FinalCost)
	}

	return []string{
		sh.TrackingNumber,
		sh.Status,
		sh.SenderName,
		sh.SenderEmail,
		sh.SenderPhone,
		flattenAddress(sh.SenderAddress),
		sh.ReceiverName,
		sh.ReceiverEmail,
		sh.ReceiverPhone,
		flattenAddress(sh.ReceiverAddress),
		sh.ServiceID,
		fmt.Sprintf("%g", sh.Weight),
		fmt.Sprintf("%gx%gx%g %s", sh.Dimensions.Length, sh.Dimensions.Width, sh.Dimensions.Height, sh.Dimensions.Unit),
		fmt.Sprintf("%.2f", sh.DeclaredValue),
		fmt.Sprintf("%.2f", sh.EstimatedCost),
		finalCost,
		sh.Currency,
		sh.PaymentStatus,
		sh.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// flattenAddress joins an address into "street, city, state postal, country".
func flattenAddress(a models.Address) string {
	region := strings.TrimSpace(a.State + " " + a.PostalCode)
	return fmt.Sprintf("%s, %s, %s, %s", a.Street, a.City, region, a.Country)
}

// writeCSVRow quotes every field unconditionally, doubling embedded
// quotes. encoding/csv quotes only when it has to, which is not what
// downstream spreadsheet imports expect here.
func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
