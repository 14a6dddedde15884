package records

// Domain es una de las cuatro colecciones por caballo.
type Domain string

const (
	DomainWeights    Domain = "weights"
	DomainVisits     Domain = "visits"
	DomainBloodTests Domain = "bloodtests"
	DomainCare       Domain = "care"
)

// Domains en orden estable (reset, seeder, CLI).
var Domains = []Domain{DomainWeights, DomainVisits, DomainBloodTests, DomainCare}

const keyPrefix = "horse_medical_"

// Key arma la key del substrate: horse_medical_{horseID}_{domain}.
func Key(horseID string, d Domain) string {
	return keyPrefix + horseID + "_" + string(d)
}

// HorsePrefix es el prefijo común de todas las keys de un caballo.
func HorsePrefix(horseID string) string {
	return keyPrefix + horseID + "_"
}
