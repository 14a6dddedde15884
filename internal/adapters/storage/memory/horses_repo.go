package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"horse-medical-records/internal/domain/horses"
)

var (
	ErrNotFound = errors.New("not found")
)

// horseRoster es un roster en memoria que preserva el orden de carga.
type horseRoster struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]horses.Horse
}

// NewHorseRoster crea un roster con los caballos dados (en ese orden).
// Ids vacíos o repetidos se ignoran.
func NewHorseRoster(items []horses.Horse) horses.Roster {
	r := &horseRoster{byID: make(map[string]horses.Horse)}
	for _, h := range items {
		id := strings.TrimSpace(h.ID)
		if id == "" {
			continue
		}
		if _, exists := r.byID[id]; exists {
			continue
		}
		h.ID = id
		r.byID[id] = h
		r.order = append(r.order, id)
	}
	return r
}

// NewDemoRoster devuelve el establo demo (20 caballos).
func NewDemoRoster() horses.Roster {
	return NewHorseRoster(DemoStable())
}

func (r *horseRoster) List(ctx context.Context) ([]horses.Horse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]horses.Horse, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *horseRoster) GetByID(ctx context.Context, id string) (horses.Horse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return horses.Horse{}, ErrNotFound
	}
	return h, nil
}

// DemoStable es el roster por defecto cuando no hay ROSTER_URL.
func DemoStable() []horses.Horse {
	return []horses.Horse{
		{ID: "h01", Name: "Tormenta", Breed: "Criollo", Sex: horses.SexMare, BirthYear: 2014, Color: "bay", Discipline: "endurance"},
		{ID: "h02", Name: "Relámpago", Breed: "Thoroughbred", Sex: horses.SexGelding, BirthYear: 2016, Color: "chestnut", Discipline: "racing"},
		{ID: "h03", Name: "Luna", Breed: "Andalusian", Sex: horses.SexMare, BirthYear: 2012, Color: "grey", Discipline: "dressage"},
		{ID: "h04", Name: "Atlas", Breed: "Warmblood", Sex: horses.SexGelding, BirthYear: 2011, Color: "dark bay", Discipline: "show jumping"},
		{ID: "h05", Name: "Canela", Breed: "Quarter Horse", Sex: horses.SexMare, BirthYear: 2017, Color: "sorrel", Discipline: "reining"},
		{ID: "h06", Name: "Pampero", Breed: "Criollo", Sex: horses.SexStallion, BirthYear: 2013, Color: "dun", Discipline: "breeding"},
		{ID: "h07", Name: "Bruma", Breed: "Arabian", Sex: horses.SexMare, BirthYear: 2015, Color: "grey", Discipline: "endurance"},
		{ID: "h08", Name: "Trueno", Breed: "Friesian", Sex: horses.SexStallion, BirthYear: 2010, Color: "black", Discipline: "driving"},
		{ID: "h09", Name: "Gitana", Breed: "Paso Fino", Sex: horses.SexMare, BirthYear: 2018, Color: "palomino", Discipline: "pleasure"},
		{ID: "h10", Name: "Halcón", Breed: "Thoroughbred", Sex: horses.SexGelding, BirthYear: 2019, Color: "bay", Discipline: "eventing"},
		{ID: "h11", Name: "Estrella", Breed: "Appaloosa", Sex: horses.SexMare, BirthYear: 2009, Color: "leopard", Discipline: "trail"},
		{ID: "h12", Name: "Zafiro", Breed: "Lusitano", Sex: horses.SexStallion, BirthYear: 2014, Color: "grey", Discipline: "dressage"},
		{ID: "h13", Name: "Morena", Breed: "Polo Argentino", Sex: horses.SexMare, BirthYear: 2016, Color: "brown", Discipline: "polo"},
		{ID: "h14", Name: "Duque", Breed: "Hanoverian", Sex: horses.SexGelding, BirthYear: 2012, Color: "chestnut", Discipline: "show jumping"},
		{ID: "h15", Name: "Nieve", Breed: "Connemara", Sex: horses.SexMare, BirthYear: 2020, Color: "white", Discipline: "pony club"},
		{ID: "h16", Name: "Centella", Breed: "Criollo", Sex: horses.SexMare, BirthYear: 2015, Color: "roan", Discipline: "ranch"},
		{ID: "h17", Name: "Bandido", Breed: "Mustang", Sex: horses.SexGelding, BirthYear: 2011, Color: "pinto", Discipline: "trail"},
		{ID: "h18", Name: "Perla", Breed: "Haflinger", Sex: horses.SexMare, BirthYear: 2017, Color: "chestnut", Discipline: "therapy"},
		{ID: "h19", Name: "Sultán", Breed: "Arabian", Sex: horses.SexStallion, BirthYear: 2013, Color: "bay", Discipline: "halter"},
		{ID: "h20", Name: "Chispa", Breed: "Shetland", Sex: horses.SexMare, BirthYear: 2021, Color: "black", Discipline: "companion"},
	}
}
