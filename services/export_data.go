package services

// ExportRow is a single line item priced for export.
type ExportRow struct {
	Code          string
	Description   string
	Model         string
	BaseHours     float64
	AdjustedHours float64
	Cost          float64
}

// ExportData holds everything a quote export needs, in every format.
type ExportData struct {
	CustomerName    string
	ContactPerson   string
	Phone           string
	EquipmentSerial string
	QuoteDate       string // YYYY-MM-DD

	LaborRate float64
	Rows      []ExportRow

	BaseHours     float64
	Multiplier    float64
	AdjustedHours float64
	TotalCost     float64
}

// BuildExportData prices each line item and assembles the export payload.
// The multiplier and labor rate apply uniformly to every row.
func BuildExportData(q *Quote, laborRate float64, customerName, contactPerson, phone, equipmentSerial, quoteDate string) (ExportData, error) {
	summary, err := q.Summary(laborRate)
	if err != nil {
		return ExportData{}, err
	}

	rows := make([]ExportRow, 0, len(q.Items))
	for _, item := range q.Items {
		calc := CalcLine(item.Hours, summary.Multiplier, laborRate)
		rows = append(rows, ExportRow{
			Code:          item.Code,
			Description:   item.Description,
			Model:         item.Model,
			BaseHours:     calc.BaseHours,
			AdjustedHours: calc.AdjustedHours,
			Cost:          calc.Cost,
		})
	}

	return ExportData{
		CustomerName:    customerName,
		ContactPerson:   contactPerson,
		Phone:           phone,
		EquipmentSerial: equipmentSerial,
		QuoteDate:       quoteDate,
		LaborRate:       laborRate,
		Rows:            rows,
		BaseHours:       summary.BaseHours,
		Multiplier:      summary.Multiplier,
		AdjustedHours:   summary.AdjustedHours,
		TotalCost:       summary.TotalCost,
	}, nil
}
