package bloodtests

// Group agrupa parámetros en la vista del panel.
type Group string

const (
	GroupHematology   Group = "hematology"
	GroupChemistry    Group = "chemistry"
	GroupElectrolytes Group = "electrolytes"
	GroupInflammation Group = "inflammation"
)

// Range es el intervalo de referencia clínicamente normal [Min, Max] de un parámetro.
type Range struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Unit  string  `json:"unit"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Group Group   `json:"group"`
}

// referenceTable: rangos equinos adultos. Tabla fija, no editable por el usuario.
var referenceTable = []Range{
	{"WBC", "White blood cells", "x10³/µL", 5.0, 12.0, GroupHematology},
	{"RBC", "Red blood cells", "x10⁶/µL", 6.5, 12.5, GroupHematology},
	{"HGB", "Hemoglobin", "g/dL", 11.0, 19.0, GroupHematology},
	{"HCT", "Hematocrit", "%", 32.0, 53.0, GroupHematology},
	{"MCV", "Mean corpuscular volume", "fL", 37.0, 55.0, GroupHematology},
	{"MCH", "Mean corpuscular hemoglobin", "pg", 12.3, 19.7, GroupHematology},
	{"MCHC", "Mean corpuscular Hb concentration", "g/dL", 31.0, 39.0, GroupHematology},
	{"PLT", "Platelets", "x10³/µL", 100.0, 350.0, GroupHematology},
	{"NEU", "Neutrophils", "x10³/µL", 2.7, 6.7, GroupHematology},
	{"LYM", "Lymphocytes", "x10³/µL", 1.5, 5.5, GroupHematology},
	{"MON", "Monocytes", "x10³/µL", 0.0, 0.8, GroupHematology},
	{"EOS", "Eosinophils", "x10³/µL", 0.0, 0.9, GroupHematology},
	{"BAS", "Basophils", "x10³/µL", 0.0, 0.3, GroupHematology},

	{"GLU", "Glucose", "mg/dL", 75.0, 115.0, GroupChemistry},
	{"BUN", "Blood urea nitrogen", "mg/dL", 10.0, 24.0, GroupChemistry},
	{"CREA", "Creatinine", "mg/dL", 0.9, 2.0, GroupChemistry},
	{"TP", "Total protein", "g/dL", 5.6, 7.6, GroupChemistry},
	{"ALB", "Albumin", "g/dL", 2.6, 3.7, GroupChemistry},
	{"GLOB", "Globulin", "g/dL", 2.6, 4.0, GroupChemistry},
	{"TBIL", "Total bilirubin", "mg/dL", 0.5, 2.3, GroupChemistry},
	{"AST", "Aspartate aminotransferase", "U/L", 175.0, 340.0, GroupChemistry},
	{"GGT", "Gamma-glutamyl transferase", "U/L", 5.0, 24.0, GroupChemistry},
	{"ALP", "Alkaline phosphatase", "U/L", 140.0, 400.0, GroupChemistry},
	{"CK", "Creatine kinase", "U/L", 120.0, 470.0, GroupChemistry},
	{"LDH", "Lactate dehydrogenase", "U/L", 160.0, 500.0, GroupChemistry},
	{"TRIG", "Triglycerides", "mg/dL", 4.0, 44.0, GroupChemistry},
	{"CHOL", "Cholesterol", "mg/dL", 75.0, 150.0, GroupChemistry},
	{"BA", "Bile acids", "µmol/L", 0.0, 20.0, GroupChemistry},
	{"LAC", "Lactate", "mmol/L", 0.5, 2.0, GroupChemistry},

	{"CA", "Calcium", "mg/dL", 11.2, 13.6, GroupElectrolytes},
	{"PHOS", "Phosphorus", "mg/dL", 3.1, 5.6, GroupElectrolytes},
	{"MG", "Magnesium", "mg/dL", 1.8, 2.5, GroupElectrolytes},
	{"NA", "Sodium", "mEq/L", 132.0, 146.0, GroupElectrolytes},
	{"K", "Potassium", "mEq/L", 2.4, 4.7, GroupElectrolytes},
	{"CL", "Chloride", "mEq/L", 97.0, 105.0, GroupElectrolytes},
	{"TCO2", "Total CO2", "mEq/L", 24.0, 34.0, GroupElectrolytes},

	{"FIB", "Fibrinogen", "mg/dL", 100.0, 400.0, GroupInflammation},
	{"SAA", "Serum amyloid A", "µg/mL", 0.0, 20.0, GroupInflammation},
}

var referenceByKey = func() map[string]Range {
	m := make(map[string]Range, len(referenceTable))
	for _, r := range referenceTable {
		m[r.Key] = r
	}
	return m
}()

// Reference devuelve el rango de un parámetro.
func Reference(key string) (Range, bool) {
	r, ok := referenceByKey[key]
	return r, ok
}

// References devuelve una copia de la tabla en orden de presentación.
func References() []Range {
	out := make([]Range, len(referenceTable))
	copy(out, referenceTable)
	return out
}

// ParameterKeys devuelve las keys en orden de presentación.
func ParameterKeys() []string {
	out := make([]string, 0, len(referenceTable))
	for _, r := range referenceTable {
		out = append(out, r.Key)
	}
	return out
}
