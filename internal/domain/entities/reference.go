package entities

// RatePreset is a named rate offered as a shortcut in the quoting form.
type RatePreset struct {
	Label string
	Rate  float64
}

// IPIPresets are the excise rates of the product families NB Tech resells.
var IPIPresets = []RatePreset{
	{Label: "Nobreak", Rate: 0.0975},
	{Label: "Bateria", Rate: 0.15},
	{Label: "Placas", Rate: 0.05},
	{Label: "Isento", Rate: 0.00},
}

// MVAPresets are the ICMS-ST presumed margins of the product families.
var MVAPresets = []RatePreset{
	{Label: "Nobreak", Rate: 0.46},
	{Label: "Placas", Rate: 0.58},
	{Label: "Bateria (S/ ST)", Rate: 0.00},
}

// PriceListRow is one line of an official price list. Prices are kept as
// display strings because the list is published verbatim.
type PriceListRow struct {
	Item    string
	Columns map[string]string
}

// PriceList is a published table of fixed service prices.
type PriceList struct {
	Key     string
	Title   string
	Headers []string
	Rows    []PriceListRow
}

// OfficialPriceListsVersion labels the tables below.
const OfficialPriceListsVersion = "Jan/2026"

// OfficialPriceLists returns the laboratory and on-site price lists.
//
// A fresh copy is returned on every call so callers cannot alter the published values.
func OfficialPriceLists() []PriceList {
	lab := PriceList{
		Key:     "laboratorio",
		Title:   "Manutenção em Laboratório",
		Headers: []string{"Produto", "Troca Bateria", "Com Reparo"},
		Rows: []PriceListRow{
			labRow("Shortbreak até 1kVA", "R$ 75,00", "R$ 90,00"),
			labRow("Shortbreak > 1kVA", "R$ 90,00", "R$ 250,00"),
			labRow("Shortbreak até 1kVA (Senoidal)", "R$ 90,00", "R$ 150,00"),
			labRow("Shortbreak > 1kVA (Senoidal)", "R$ 120,00", "R$ 360,00"),
			labRow("Dupla Conv. até 3kVA", "R$ 150,00", "R$ 750,00"),
			labRow("Dupla Conv. 5-10kVA", "R$ 350,00", "R$ 1.600,00"),
			labRow("Dupla Conv. > 10kVA", "R$ 550,00", "R$ 2.200,00"),
			labRow("Estabilizador até 3kVA", "-", "R$ 90,00"),
		},
	}

	onsite := PriceList{
		Key:     "on_site",
		Title:   "Atendimento On-Site (Comercial)",
		Headers: []string{"Nobreak", "Preventiva", "Corretiva"},
		Rows: []PriceListRow{
			onsiteRow("Até 3kVA", "R$ 220,00", "R$ 280,00"),
			onsiteRow("3.1 a 6kVA (Mono)", "R$ 380,00", "R$ 460,00"),
			onsiteRow("6.1 a 10kVA (Mono)", "R$ 450,00", "R$ 540,00"),
			onsiteRow("10.1 a 20kVA (Mono)", "R$ 600,00", "R$ 720,00"),
			onsiteRow("Trifásico até 10kVA", "R$ 550,00", "R$ 660,00"),
			onsiteRow("Trifásico 10-20kVA", "R$ 650,00", "R$ 780,00"),
			onsiteRow("Trifásico 20-40kVA", "R$ 900,00", "R$ 1.100,00"),
			onsiteRow("Trifásico 40-80kVA", "R$ 1.400,00", "R$ 1.680,00"),
		},
	}

	return []PriceList{lab, onsite}
}

func labRow(product, battery, repair string) PriceListRow {
	return PriceListRow{Item: product, Columns: map[string]string{"Troca Bateria": battery, "Com Reparo": repair}}
}

func onsiteRow(ups, preventive, corrective string) PriceListRow {
	return PriceListRow{Item: ups, Columns: map[string]string{"Preventiva": preventive, "Corretiva": corrective}}
}

// TaxPresets groups the rate shortcuts of the quoting form.
type TaxPresets struct {
	IPI []RatePreset
	MVA []RatePreset
}
