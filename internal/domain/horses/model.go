package horses

// Sex del caballo.
// @Enum mare, stallion, gelding
type Sex string

const (
	SexMare     Sex = "mare"
	SexStallion Sex = "stallion"
	SexGelding  Sex = "gelding"
)

// Horse es el perfil que expone el roster externo. Aquí es solo lectura.
type Horse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Breed      string `json:"breed"`
	Sex        Sex    `json:"sex"`
	BirthYear  int    `json:"birthYear"`
	Color      string `json:"color"`
	Discipline string `json:"discipline"`
}
