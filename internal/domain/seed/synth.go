package seed

import (
	"fmt"
	"math"
	"time"

	"horse-medical-records/internal/domain/bloodtests"
	"horse-medical-records/internal/domain/care"
	"horse-medical-records/internal/domain/records"
	"horse-medical-records/internal/domain/visits"
	"horse-medical-records/internal/domain/weights"
)

// Todo lo que sigue es aritmética fija sobre la posición del caballo en el roster (i)
// y el índice del registro (k). Mismo i + mismo ref => mismos datos.

var (
	doctors   = []string{"Dra. Paz", "Dr. Ruiz", "Dra. Ibarra", "Dr. Costa"}
	devices   = []string{"IDEXX ProCyte Dx", "Abaxis VetScan HM5", "IDEXX Catalyst One"}
	farriers  = []string{"J. Medina", "R. Sosa"}
	weightTip = []string{"", "post-training", "pre-feed", "after turnout", ""}
	reasons   = []string{"Annual check", "Pre-purchase exam", "Follow-up", "Lameness evaluation", "Pre-competition"}

	vaccines   = []string{"EHV-1/4", "Influenza", "Tetanus toxoid", "West Nile", "Rabies"}
	vaxBrands  = []string{"Prodigy", "Fluvac Innovator", "Equiloid", "West Nile-Innovator", "Imrab"}
	dewormers  = []string{"Ivermectin", "Moxidectin", "Fenbendazole", "Pyrantel pamoate"}
	medNames   = []string{"Phenylbutazone", "Flunixin meglumine", "Omeprazole", "Trimethoprim-sulfa"}
	allergens  = []string{"Penicillin", "Culicoides bites", "Alfalfa dust"}
	injuries   = []string{"Pasture laceration", "Hoof abscess", "Kick wound", "Rope burn"}
	surgeries  = []string{"Arthroscopy", "Castration", "Laceration repair"}
	dentalWork = []string{"Routine float", "Wolf tooth extraction", "Incisor reduction"}
	imagingOn  = []string{"LF fetlock", "RH hock", "Thorax", "Navicular"}
)

func pick(list []string, n int) string {
	if n < 0 {
		n = -n
	}
	return list[n%len(list)]
}

func daysAgo(ref time.Time, days int) time.Time {
	return ref.AddDate(0, 0, -days)
}

func meta(horseID string, d records.Domain, k int, at time.Time) records.Meta {
	return records.Meta{ID: fmt.Sprintf("seed-%s-%s-%d", horseID, d, k), CreatedAt: at}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func intp(v int) *int             { return &v }
func floatp(v float64) *float64   { return &v }
func timep(t time.Time) *time.Time { return &t }

func synthWeights(i int, horseID string, ref time.Time) []weights.Record {
	count := 4 + i%3
	base := 420.0 + float64((i*37)%160)
	out := make([]weights.Record, 0, count)
	for k := 0; k < count; k++ {
		at := daysAgo(ref, k*30+i%7).Add(8 * time.Hour)
		method := weights.MethodManual
		if (i+k)%2 == 0 {
			method = weights.MethodScale
		}
		by := weights.RecordedByStaff
		if k%3 == 0 {
			by = weights.RecordedByDoctor
		}
		out = append(out, weights.Record{
			Meta:       meta(horseID, records.DomainWeights, k, at),
			WeightKg:   round(base+float64((k*7+i)%11-5)*1.5, 1),
			DateTime:   at,
			Method:     method,
			RecordedBy: by,
			Notes:      pick(weightTip, i+k),
		})
	}
	return out
}

func synthVisits(i int, horseID string, ref time.Time) []visits.Record {
	count := 1 + i%3
	out := make([]visits.Record, 0, count)
	for k := 0; k < count; k++ {
		date := daysAgo(ref, k*60+10+i%5)

		attitude := visits.AttitudeBAR
		if (i+k)%7 == 6 {
			attitude = visits.AttitudeQAR
		}

		limbs := visits.Limbs{
			LF: visits.Limb{Tags: []string{}},
			RF: visits.Limb{Tags: []string{}},
			LH: visits.Limb{Tags: []string{}},
			RH: visits.Limb{Tags: []string{}},
		}
		assessment := "Healthy, no abnormalities detected."
		if i%4 == 1 && k == 0 {
			limbs.LF = visits.Limb{Tags: []string{"digital pulse", "heat"}, LamenessGrade: 1 + i%3, Notes: "Positive hoof testers, toe."}
			assessment = "Suspect sole bruise LF."
		}

		out = append(out, visits.Record{
			Meta:   meta(horseID, records.DomainVisits, k, date),
			Date:   date,
			Doctor: pick(doctors, i+k),
			Reason: pick(reasons, i*2+k),
			Vitals: visits.Vitals{
				TemperatureC:       floatp(round(37.5+float64((i+k)%8)*0.1, 1)),
				HeartRate:          intp(32 + (i*3+k)%12),
				RespiratoryRate:    intp(10 + (i+k)%8),
				CapillaryRefillSec: floatp(1.5),
				MucousMembranes:    "pink, moist",
				Hydration:          "normal",
				GutSounds:          "present x4",
			},
			Attitude:   attitude,
			Appetite:   visits.AppetiteNormal,
			Limbs:      limbs,
			Assessment: assessment,
			Plan:       "Routine monitoring.",
		})
	}
	return out
}

func synthBloodTests(i int, horseID string, ref time.Time) []bloodtests.Record {
	count := 1 + i%2
	refs := bloodtests.References()
	out := make([]bloodtests.Record, 0, count)
	for k := 0; k < count; k++ {
		date := daysAgo(ref, k*90+20+i%9)
		values := make(map[string]float64, len(refs))
		for p, r := range refs {
			mid := (r.Min + r.Max) / 2
			half := (r.Max - r.Min) / 2
			// f en [-1.25, 1.25]: |f| > 1 cae fuera de rango (~2 de cada 11)
			f := float64((i*13+k*7+p*5)%11-5) / 4.0
			v := round(mid+half*f, 2)
			if v < 0 {
				v = 0
			}
			values[r.Key] = v
		}
		out = append(out, bloodtests.Record{
			Meta:      meta(horseID, records.DomainBloodTests, k, date),
			Date:      date,
			Doctor:    pick(doctors, i+k+1),
			Device:    pick(devices, i+k),
			SampleID:  fmt.Sprintf("S-%03d-%d", i+1, k+1),
			PatientID: horseID,
			Values:    values,
			QC:        bloodtests.QC{Hemolysis: (i+k)%6 == 5},
		})
	}
	return out
}

func synthCare(i int, horseID string, ref time.Time) care.Book {
	var b care.Book
	n := 0
	base := func(days int, name string) care.Base {
		date := daysAgo(ref, days)
		m := meta(horseID, records.DomainCare, n, date)
		n++
		return care.Base{Meta: m, Date: date, Name: name}
	}

	for k := 0; k < 2; k++ {
		b.Vaccinations = append(b.Vaccinations, care.Vaccination{
			Base:           base(k*180+15+i%10, pick(vaccines, i+k)),
			Brand:          pick(vaxBrands, i+k),
			LotNumber:      fmt.Sprintf("L%04d", 1000+i*17+k),
			AdministeredBy: pick(doctors, i),
			NextDue:        timep(daysAgo(ref, k*180+15+i%10).AddDate(1, 0, 0)),
		})
	}
	for k := 0; k < 1+i%2; k++ {
		b.Deworming = append(b.Deworming, care.Deworming{
			Base:    base(k*120+30+i%6, pick(dewormers, i+k)),
			Brand:   pick(dewormers, i+k),
			Dosage:  "1 syringe per 600 kg",
			NextDue: timep(daysAgo(ref, k*120+30+i%6).AddDate(0, 4, 0)),
		})
	}
	if i%3 == 0 {
		start := daysAgo(ref, 45+i)
		b.Medications = append(b.Medications, care.Medication{
			Base:         base(45+i, pick(medNames, i)),
			Dosage:       "2 g",
			Frequency:    "q12h",
			Route:        "PO",
			EndDate:      timep(start.AddDate(0, 0, 5)),
			PrescribedBy: pick(doctors, i),
		})
	}
	if i%5 == 2 {
		b.Allergies = append(b.Allergies, care.Allergy{
			Base:     base(400+i, pick(allergens, i)),
			Reaction: "Urticaria",
			Severity: care.SeverityModerate,
		})
	}
	if i%4 == 3 {
		b.Injuries = append(b.Injuries, care.Injury{
			Base:      base(70+i, pick(injuries, i)),
			Location:  "Left hind cannon",
			Severity:  care.SeverityMild,
			Treatment: "Cleaned, bandaged, 5 days antibiotics",
			Outcome:   "Healed",
		})
	}
	if i%6 == 5 {
		b.Surgeries = append(b.Surgeries, care.Surgery{
			Base:       base(300+i*3, pick(surgeries, i)),
			Procedure:  pick(surgeries, i),
			Surgeon:    pick(doctors, i+2),
			Anesthesia: "General",
			Outcome:    "Uneventful recovery",
		})
	}
	b.Dental = append(b.Dental, care.Dental{
		Base:         base(160+i*2, pick(dentalWork, i)),
		Procedure:    pick(dentalWork, i),
		Findings:     "Sharp enamel points",
		Practitioner: pick(doctors, i+3),
	})
	for k := 0; k < 2+i%2; k++ {
		b.Farrier = append(b.Farrier, care.Farrier{
			Base:      base(k*42+5+i%4, "Reset"),
			Procedure: "Trim and reset",
			Farrier:   pick(farriers, i+k),
			ShoeType:  "Steel keg shoes",
		})
	}
	if i%3 == 1 {
		b.Imaging = append(b.Imaging, care.Imaging{
			Base:     base(90+i, "Radiographs"),
			Modality: "radiography",
			Region:   pick(imagingOn, i),
			Findings: "No significant findings",
		})
	}
	return b
}
