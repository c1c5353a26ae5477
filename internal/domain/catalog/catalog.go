// Package catalog contiene las tablas de conocimiento de fármacos usadas por la
// reconciliación y el analizador: alias comerciales, sustancias de venta libre,
// clases farmacológicas y pares que interactúan.
//
// Las tablas son incompletas a propósito: sirven de apoyo a la revisión humana,
// no son una base clínica de interacciones.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"med-reconciliation/internal/domain/medications"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog = errors.New("drug catalog empty")
)

// InteractionRule: A y B pueden ser ingredientes ("warfarin") o clases ("nsaid").
type InteractionRule struct {
	A           string `yaml:"a" json:"a"`
	B           string `yaml:"b" json:"b"`
	Description string `yaml:"description" json:"description"`
}

type Catalog struct {
	Aliases      map[string]string `yaml:"aliases" json:"aliases"`
	OTC          []string          `yaml:"otc" json:"otc"`
	OTCKeywords  []string          `yaml:"otc_keywords" json:"otc_keywords"`
	Classes      map[string]string `yaml:"classes" json:"classes"`
	Interactions []InteractionRule `yaml:"interactions" json:"interactions"`

	otc   map[string]struct{}
	known map[string]struct{} // genéricos conocidos: destinos de alias, clases y OTC
}

// Load lee un catálogo YAML. Sin path devuelve Default().
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Aliases) == 0 && len(c.OTC) == 0 && len(c.Interactions) == 0 {
		return nil, ErrEmptyCatalog
	}
	c.index()
	return &c, nil
}

func (c *Catalog) index() {
	aliases := make(map[string]string, len(c.Aliases))
	for k, v := range c.Aliases {
		aliases[NormalizeName(k)] = NormalizeName(v)
	}
	c.Aliases = aliases

	classes := make(map[string]string, len(c.Classes))
	for k, v := range c.Classes {
		classes[NormalizeName(k)] = NormalizeName(v)
	}
	c.Classes = classes

	c.otc = make(map[string]struct{}, len(c.OTC))
	for _, s := range c.OTC {
		c.otc[NormalizeName(s)] = struct{}{}
	}
	c.known = make(map[string]struct{}, len(c.Aliases)+len(c.Classes)+len(c.otc))
	for _, g := range c.Aliases {
		c.known[g] = struct{}{}
	}
	for g := range c.Classes {
		c.known[g] = struct{}{}
	}
	for g := range c.otc {
		c.known[g] = struct{}{}
	}
	for i, k := range c.OTCKeywords {
		c.OTCKeywords[i] = NormalizeName(k)
	}
	for i, r := range c.Interactions {
		c.Interactions[i].A = NormalizeName(r.A)
		c.Interactions[i].B = NormalizeName(r.B)
	}
}

var (
	nonWord    = regexp.MustCompile(`[^a-z0-9 ]+`)
	multiSpace = regexp.MustCompile(`\s+`)
	strength   = regexp.MustCompile(`\b\d+\s*(mg|mcg|g|ml|iu|units?|meq)\b`)
)

// modifiers: sales y sufijos de liberación que no cambian el principio activo.
// Solo se quitan después de la primera palabra ("Calcium Carbonate" queda igual).
var modifiers = map[string]struct{}{
	"er": {}, "xr": {}, "dr": {}, "sr": {}, "xl": {}, "cr": {}, "la": {}, "ec": {}, "odt": {},
	"calcium": {}, "sodium": {}, "potassium": {}, "magnesium": {},
	"hcl": {}, "hydrochloride": {}, "besylate": {}, "maleate": {}, "mesylate": {},
	"succinate": {}, "tartrate": {}, "citrate": {}, "sulfate": {}, "fumarate": {},
}

// NormalizeName: minúsculas, sin puntuación, espacios colapsados.
// "  Vitamin-D3 " => "vitamin d3"
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// coreName quita concentraciones, sales y sufijos de liberación.
// "metformin er 500 mg" => "metformin"; "atorvastatin calcium" => "atorvastatin"
func coreName(n string) string {
	words := strings.Fields(strength.ReplaceAllString(n, " "))
	out := make([]string, 0, len(words))
	for i, w := range words {
		if _, ok := modifiers[w]; ok && i > 0 {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// Ingredient devuelve la identidad de principio activo de un nombre.
// Prueba el nombre completo, el nombre sin concentración ni sufijos y por
// último la primera palabra ("Tylenol Extra Strength").
func (c *Catalog) Ingredient(name string) string {
	g, _ := c.resolve(name)
	return g
}

// resolve indica además si el ingrediente es un genérico conocido.
func (c *Catalog) resolve(name string) (string, bool) {
	n := NormalizeName(name)
	if n == "" {
		return "", false
	}
	core := coreName(n)
	first, _, _ := strings.Cut(core, " ")
	for _, cand := range []string{n, core, first} {
		if cand == "" {
			continue
		}
		if g, ok := c.Aliases[cand]; ok {
			return g, true
		}
		if _, ok := c.known[cand]; ok {
			return cand, true
		}
	}
	if core == "" {
		return n, false
	}
	return core, false
}

// Classify es determinístico: el mismo nombre siempre da la misma categoría.
// Un genérico conocido se clasifica solo por la lista OTC; las palabras clave
// aplican a nombres desconocidos.
func (c *Catalog) Classify(name string) medications.Category {
	ing, known := c.resolve(name)
	if ing == "" {
		return medications.CategoryRx
	}
	if _, ok := c.otc[ing]; ok {
		return medications.CategoryOTC
	}
	if known {
		return medications.CategoryRx
	}
	n := NormalizeName(name)
	for _, kw := range c.OTCKeywords {
		if kw == "" {
			continue
		}
		if containsWord(n, kw) || containsWord(ing, kw) {
			return medications.CategoryOTC
		}
	}
	return medications.CategoryRx
}

// ClassOf devuelve la clase farmacológica o "".
func (c *Catalog) ClassOf(ingredient string) string {
	return c.Classes[NormalizeName(ingredient)]
}

// Matches indica si un ingrediente cae bajo term (ingrediente o clase).
func (c *Catalog) Matches(ingredient, term string) bool {
	if ingredient == "" || term == "" {
		return false
	}
	return ingredient == term || c.ClassOf(ingredient) == term
}

func containsWord(s, word string) bool {
	if s == word {
		return true
	}
	return strings.HasPrefix(s, word+" ") ||
		strings.HasSuffix(s, " "+word) ||
		strings.Contains(s, " "+word+" ")
}
